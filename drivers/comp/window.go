package comp

// window composes an upper and a lower comparator sharing one input pin.
// See RM0444 Rev 5, Figure 69.
type window struct {
	upper, lower *unit
}

const errNoPair = "comp: window has no Upper or Lower comparator"

func (w window) inside() bool     { return w.upper.Output() }
func (w window) aboveLower() bool { return w.lower.Output() }

func (w window) enable() {
	w.upper.Enable()
	w.lower.Enable()
}

func (w window) disable() {
	w.upper.Disable()
	w.lower.Disable()
}

// upperConfig and lowerConfig override whatever XOR setting the caller
// passed.
func upperConfig(cfg Config) Config { return cfg.withXOR(true) }
func lowerConfig(cfg Config) Config { return cfg.withXOR(false) }

// Window12 is a window comparator with COMP1 on the upper threshold and COMP2
// on the lower one. The input is wired to COMP1's positive pin.
//
// Upper and Lower are the handles every method goes through; use them
// directly to run only one of the pair.
type Window12 struct {
	Upper *Comparator1
	Lower *Comparator2
}

// NewWindow12 pairs upper and lower.
func NewWindow12(upper *Comparator1, lower *Comparator2) *Window12 {
	return &Window12{Upper: upper, Lower: lower}
}

func (w *Window12) pair() window {
	if w == nil || w.Upper == nil || w.Lower == nil {
		panic(errNoPair)
	}
	return window{upper: &w.Upper.unit, lower: &w.Lower.unit}
}

// Init configures both comparators. cfg's XOR setting is ignored: the upper
// comparator always XORs and the lower never does.
func (w *Window12) Init(input Comp1Positive, lower Comp2Negative, upper Comp1Negative, cfg Config) {
	w.pair()
	w.Upper.Init(input, upper, upperConfig(cfg))
	w.Lower.Init(Comp1InP{}, lower, lowerConfig(cfg))
}

// Output reports whether the input lies between the two thresholds. It is
// the upper comparator's output, which is XORed with the lower one.
func (w *Window12) Output() bool { return w.pair().inside() }

// AboveLower reports whether the input is above the lower threshold.
func (w *Window12) AboveLower() bool { return w.pair().aboveLower() }

// Enable enables both comparators.
func (w *Window12) Enable() { w.pair().enable() }

// Disable disables both comparators.
func (w *Window12) Disable() { w.pair().disable() }

// Window21 is a window comparator with COMP2 on the upper threshold and COMP1
// on the lower one. The input is wired to COMP2's positive pin.
type Window21 struct {
	Upper *Comparator2
	Lower *Comparator1
}

// NewWindow21 pairs upper and lower.
func NewWindow21(upper *Comparator2, lower *Comparator1) *Window21 {
	return &Window21{Upper: upper, Lower: lower}
}

func (w *Window21) pair() window {
	if w == nil || w.Upper == nil || w.Lower == nil {
		panic(errNoPair)
	}
	return window{upper: &w.Upper.unit, lower: &w.Lower.unit}
}

// Init configures both comparators. cfg's XOR setting is ignored: the upper
// comparator always XORs and the lower never does.
func (w *Window21) Init(input Comp2Positive, lower Comp1Negative, upper Comp2Negative, cfg Config) {
	w.pair()
	w.Upper.Init(input, upper, upperConfig(cfg))
	w.Lower.Init(Comp2InP{}, lower, lowerConfig(cfg))
}

func (w *Window21) Output() bool     { return w.pair().inside() }
func (w *Window21) AboveLower() bool { return w.pair().aboveLower() }
func (w *Window21) Enable()          { w.pair().enable() }
func (w *Window21) Disable()         { w.pair().disable() }
