package comparator

import (
	"devicecode-comp/drivers/comp"
	"devicecode-comp/errcode"
	"devicecode-comp/types"
)

// sourceNames lists every source the COMP block knows, whichever unit it
// belongs to. It only separates "unknown" from "wrong unit" in errors.
var sourceNames = [...]string{
	"PC5", "PB2", "PA1", "PB4", "PB6", "PA3",
	"open", "comp1_inp", "comp2_inp",
	"PB1", "PC4", "PA0", "PB3", "PB7", "PA2",
	"vrefint_1_4", "vrefint_1_2", "vrefint_3_4", "vrefint",
	"dac1_ch1", "dac1_ch2",
}

// bothNegative is satisfied by sources either unit can take on INM.
type bothNegative interface {
	comp.Comp1Negative
	comp.Comp2Negative
}

func notRoutable(op, name string) error {
	for _, n := range sourceNames {
		if n == name {
			return errcode.Wrap(errcode.SourceNotRoutable, op, name)
		}
	}
	return errcode.Wrap(errcode.UnknownSource, op, name)
}

// noDAC answers DAC threshold names on parts that have no DAC.
func noDAC(op, name string) (bothNegative, bool, error) {
	switch name {
	case "dac1_ch1", "dac1_ch2":
		return nil, true, errcode.Wrap(errcode.Unsupported, op, name+" (no DAC on this part)")
	}
	return nil, false, nil
}

func refint(name string) (comp.Refint, bool) {
	switch name {
	case "vrefint_1_4":
		return comp.VRefint14, true
	case "vrefint_1_2":
		return comp.VRefint12, true
	case "vrefint_3_4":
		return comp.VRefint34, true
	case "vrefint":
		return comp.VRefint, true
	}
	return 0, false
}

func comp1Positive(op, name string) (comp.Comp1Positive, error) {
	switch name {
	case "PC5":
		return comp.PC5{}, nil
	case "PB2":
		return comp.PB2{}, nil
	case "PA1":
		return comp.PA1{}, nil
	case "open":
		return comp.Open{}, nil
	case "comp2_inp":
		return comp.Comp2InP{}, nil
	}
	return nil, notRoutable(op, name)
}

func comp2Positive(op, name string) (comp.Comp2Positive, error) {
	switch name {
	case "PB4":
		return comp.PB4{}, nil
	case "PB6":
		return comp.PB6{}, nil
	case "PA3":
		return comp.PA3{}, nil
	case "open":
		return comp.Open{}, nil
	case "comp1_inp":
		return comp.Comp1InP{}, nil
	}
	return nil, notRoutable(op, name)
}

func (s *Service) shared(op, name string) (bothNegative, error) {
	if r, ok := refint(name); ok {
		return r, nil
	}
	if src, ok, err := s.dac.negative(op, name); ok {
		return src, err
	}
	return nil, notRoutable(op, name)
}

func (s *Service) comp1Negative(op, name string) (comp.Comp1Negative, error) {
	switch name {
	case "PB1":
		return comp.PB1{}, nil
	case "PC4":
		return comp.PC4{}, nil
	case "PA0":
		return comp.PA0{}, nil
	}
	src, err := s.shared(op, name)
	if err != nil {
		return nil, err
	}
	return src, nil
}

func (s *Service) comp2Negative(op, name string) (comp.Comp2Negative, error) {
	switch name {
	case "PB3":
		return comp.PB3{}, nil
	case "PB7":
		return comp.PB7{}, nil
	case "PA2":
		return comp.PA2{}, nil
	}
	src, err := s.shared(op, name)
	if err != nil {
		return nil, err
	}
	return src, nil
}

func electrical(op string, e types.Electrical) (comp.Config, error) {
	cfg := comp.DefaultConfig()
	switch e.Hysteresis {
	case "", "none":
	case "low":
		cfg = cfg.WithHysteresis(comp.HysteresisLow)
	case "medium":
		cfg = cfg.WithHysteresis(comp.HysteresisMedium)
	case "high":
		cfg = cfg.WithHysteresis(comp.HysteresisHigh)
	default:
		return cfg, errcode.Wrap(errcode.InvalidParams, op, "hysteresis "+e.Hysteresis)
	}
	switch e.Power {
	case "", "high_speed":
	case "medium_speed":
		cfg = cfg.WithPowerMode(comp.MediumSpeed)
	default:
		return cfg, errcode.Wrap(errcode.InvalidParams, op, "power "+e.Power)
	}
	cfg = cfg.WithOutputPolarity(e.Invert)
	if e.XOR {
		cfg = cfg.WithOutputXOR()
	}
	return cfg, nil
}

// Plan is a setup whose every name has been resolved to a typed source. It
// cannot fail when applied.
type Plan struct {
	comp1 *plan1
	comp2 *plan2
	win12 *planWindow12
	win21 *planWindow21
}

type plan1 struct {
	pos    comp.Comp1Positive
	neg    comp.Comp1Negative
	cfg    comp.Config
	enable bool
}

type plan2 struct {
	pos    comp.Comp2Positive
	neg    comp.Comp2Negative
	cfg    comp.Config
	enable bool
}

type planWindow12 struct {
	input  comp.Comp1Positive
	lower  comp.Comp2Negative
	upper  comp.Comp1Negative
	cfg    comp.Config
	enable bool
}

type planWindow21 struct {
	input  comp.Comp2Positive
	lower  comp.Comp1Negative
	upper  comp.Comp2Negative
	cfg    comp.Config
	enable bool
}

// Resolve checks setup against the input catalog and returns the typed plan.
// All validation happens here.
func (s *Service) Resolve(setup types.ComparatorSetup) (*Plan, error) {
	p := &Plan{}
	var claimed [2]bool
	claim := func(op string, i int) error {
		if claimed[i] {
			return errcode.Wrap(errcode.UnitInUse, op, "")
		}
		claimed[i] = true
		return nil
	}

	if w := setup.Window; w != nil {
		if err := s.resolveWindow(p, w); err != nil {
			return nil, err
		}
		claimed[0], claimed[1] = true, true
	}

	for _, c := range setup.Comparators {
		op := c.Unit
		cfg, err := electrical(op, c.Electrical)
		if err != nil {
			return nil, err
		}
		switch c.Unit {
		case "comp1":
			if err := claim(op, 0); err != nil {
				return nil, err
			}
			u := &plan1{cfg: cfg, enable: c.Enable}
			if u.pos, err = comp1Positive(op+".positive", c.Positive); err != nil {
				return nil, err
			}
			if u.neg, err = s.comp1Negative(op+".negative", c.Negative); err != nil {
				return nil, err
			}
			p.comp1 = u
		case "comp2":
			if err := claim(op, 1); err != nil {
				return nil, err
			}
			u := &plan2{cfg: cfg, enable: c.Enable}
			if u.pos, err = comp2Positive(op+".positive", c.Positive); err != nil {
				return nil, err
			}
			if u.neg, err = s.comp2Negative(op+".negative", c.Negative); err != nil {
				return nil, err
			}
			p.comp2 = u
		default:
			return nil, errcode.Wrap(errcode.UnknownUnit, "comparators", c.Unit)
		}
	}
	return p, nil
}

// windowInput rejects sources that are not a physical pin.
func windowInput(op, name string) error {
	switch name {
	case "open", "comp1_inp", "comp2_inp":
		return errcode.Wrap(errcode.InvalidParams, op, "window input must be a pin: "+name)
	}
	return nil
}

func (s *Service) resolveWindow(p *Plan, w *types.WindowParams) error {
	const op = "window"
	cfg, err := electrical(op, w.Electrical)
	if err != nil {
		return err
	}
	if err := windowInput(op+".input", w.Input); err != nil {
		return err
	}
	switch w.Upper {
	case "comp1":
		pw := &planWindow12{cfg: cfg, enable: w.Enable}
		if pw.input, err = comp1Positive(op+".input", w.Input); err != nil {
			return err
		}
		if pw.lower, err = s.comp2Negative(op+".lower_threshold", w.LowerThreshold); err != nil {
			return err
		}
		if pw.upper, err = s.comp1Negative(op+".upper_threshold", w.UpperThreshold); err != nil {
			return err
		}
		p.win12 = pw
	case "comp2":
		pw := &planWindow21{cfg: cfg, enable: w.Enable}
		if pw.input, err = comp2Positive(op+".input", w.Input); err != nil {
			return err
		}
		if pw.lower, err = s.comp1Negative(op+".lower_threshold", w.LowerThreshold); err != nil {
			return err
		}
		if pw.upper, err = s.comp2Negative(op+".upper_threshold", w.UpperThreshold); err != nil {
			return err
		}
		p.win21 = pw
	default:
		return errcode.Wrap(errcode.UnknownUnit, op+".upper", w.Upper)
	}
	return nil
}
