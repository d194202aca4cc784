package types

// ---- Comparator configuration (published on the "config/comp" bus topic) ----

// ComparatorSetup configures the COMP block. A unit may appear either in
// Comparators or in the Window, not both.
type ComparatorSetup struct {
	Comparators []ComparatorParams `json:"comparators,omitempty"`
	Window      *WindowParams      `json:"window,omitempty"`
}

// Electrical holds the per-unit behaviour shared by both shapes.
type Electrical struct {
	Hysteresis string `json:"hysteresis,omitempty"` // "none","low","medium","high"
	Power      string `json:"power,omitempty"`      // "high_speed","medium_speed"
	Invert     bool   `json:"invert,omitempty"`
	XOR        bool   `json:"xor,omitempty"` // ignored for windows
}

// ComparatorParams configures one unit on its own.
type ComparatorParams struct {
	Unit     string `json:"unit"`     // "comp1" | "comp2"
	Positive string `json:"positive"` // e.g. "PA1", "open", "comp2_inp"
	Negative string `json:"negative"` // e.g. "PB1", "vrefint_3_4", "dac1_ch1"
	Electrical
	Enable bool `json:"enable,omitempty"`
}

// WindowParams pairs both units into a window comparator.
type WindowParams struct {
	Upper          string `json:"upper"` // unit on the upper threshold
	Input          string `json:"input"` // positive pin of the upper unit
	LowerThreshold string `json:"lower_threshold"`
	UpperThreshold string `json:"upper_threshold"`
	Electrical
	Enable bool `json:"enable,omitempty"`
}

// ---- Comparator read-out ("comp/state", "comp/value") ----

// ComparatorState is the service status, retained on "comp/state".
type ComparatorState struct {
	Level  string `json:"level"`  // "idle","ready","error","stopped"
	Status string `json:"status"` // e.g. "awaiting_config","configured"
	Error  string `json:"error,omitempty"`
	TS     int64  `json:"ts_ms"`
}

type ComparatorValue struct {
	Enabled bool `json:"enabled"`
	Output  bool `json:"output"`
}

type WindowValue struct {
	Inside     bool `json:"inside"`
	AboveLower bool `json:"above_lower"`
}

// ComparatorSnapshot is one consistent read of both units.
type ComparatorSnapshot struct {
	Comp1  ComparatorValue `json:"comp1"`
	Comp2  ComparatorValue `json:"comp2"`
	Window *WindowValue    `json:"window,omitempty"`
	TS     int64           `json:"ts_ms"`
}
