package comp

import "devicecode-comp/x/bitfield"

// Hysteresis selects the input hysteresis level.
type Hysteresis uint8

const (
	HysteresisNone   Hysteresis = 0b00
	HysteresisLow    Hysteresis = 0b01
	HysteresisMedium Hysteresis = 0b10
	HysteresisHigh   Hysteresis = 0b11
)

func (h Hysteresis) String() string {
	switch h {
	case HysteresisNone:
		return "none"
	case HysteresisLow:
		return "low"
	case HysteresisMedium:
		return "medium"
	case HysteresisHigh:
		return "high"
	default:
		return "invalid"
	}
}

// PowerMode trades speed for supply current.
type PowerMode uint8

const (
	HighSpeed   PowerMode = 0b00
	MediumSpeed PowerMode = 0b01
)

func (p PowerMode) String() string {
	switch p {
	case HighSpeed:
		return "high_speed"
	case MediumSpeed:
		return "medium_speed"
	default:
		return "invalid"
	}
}

// Config describes a comparator's electrical behaviour. It is a value; the
// With methods return modified copies. The zero value equals DefaultConfig.
type Config struct {
	hysteresis Hysteresis
	powerMode  PowerMode
	inverted   bool
	outputXOR  bool
}

// DefaultConfig is no hysteresis, high speed, non-inverted, no XOR.
func DefaultConfig() Config { return Config{} }

func (c Config) WithHysteresis(h Hysteresis) Config {
	c.hysteresis = h & 0b11
	return c
}

func (c Config) WithPowerMode(p PowerMode) Config {
	c.powerMode = p & 0b01
	return c
}

// WithOutputInverted inverts the output polarity.
func (c Config) WithOutputInverted() Config { return c.WithOutputPolarity(true) }

// WithOutputPolarity sets the output polarity; true inverts.
func (c Config) WithOutputPolarity(inverted bool) Config {
	c.inverted = inverted
	return c
}

// WithOutputXOR makes the output COMP1 XOR COMP2. Window comparators set this
// themselves.
func (c Config) WithOutputXOR() Config { return c.withXOR(true) }

func (c Config) withXOR(on bool) Config {
	c.outputXOR = on
	return c
}

func (c Config) Hysteresis() Hysteresis { return c.hysteresis }
func (c Config) PowerMode() PowerMode   { return c.powerMode }
func (c Config) Inverted() bool         { return c.inverted }
func (c Config) OutputXOR() bool        { return c.outputXOR }

// update returns the single CSR change that applies c.
func (c Config) update() bitfield.Update[uint32] {
	return bitfield.Update[uint32]{}.
		With(csrHYST, uint32(c.hysteresis)).
		Flag(csrPOLARITY, c.inverted).
		With(csrPWRMODE, uint32(c.powerMode)).
		Flag(csrWINOUT, c.outputXOR)
}
