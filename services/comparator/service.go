// Package comparator applies name-based comparator setups to the COMP block
// and reads both units back as one snapshot.
package comparator

import (
	"time"

	"tinygo.org/x/drivers"

	"devicecode-comp/drivers/comp"
	"devicecode-comp/types"
	"devicecode-comp/x/logx"
)

type windowReader interface {
	Output() bool
	AboveLower() bool
}

// Service owns both comparator handles.
type Service struct {
	c1  *comp.Comparator1
	c2  *comp.Comparator2
	win windowReader
	dac dacChannels

	log  logx.Logger
	now  func() time.Time
	last types.ComparatorSnapshot
}

type Option func(*Service)

// WithClock overrides the snapshot timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

var _ drivers.Sensor = (*Service)(nil)

func New(c1 *comp.Comparator1, c2 *comp.Comparator2, opts ...Option) *Service {
	s := &Service{
		c1:  c1,
		c2:  c2,
		log: logx.New("comp"),
		now: time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Configure resolves and applies setup. On error nothing is written.
func (s *Service) Configure(setup types.ComparatorSetup) error {
	p, err := s.Resolve(setup)
	if err != nil {
		s.log.Warn("setup rejected", "err", err.Error())
		return err
	}
	s.Apply(p)
	return nil
}

// Apply writes p to the hardware. Both units are first returned to their
// reset state, so a unit p does not mention ends up disabled and out of any
// earlier window.
func (s *Service) Apply(p *Plan) {
	s.win = nil
	s.c1.Reset()
	s.c2.Reset()

	if w := p.win12; w != nil {
		win := comp.NewWindow12(s.c1, s.c2)
		win.Init(w.input, w.lower, w.upper, w.cfg)
		setEnabled(win, w.enable)
		s.win = win
		s.log.Info("window", "upper", "comp1", "enable", logx.Bool(w.enable))
	}
	if w := p.win21; w != nil {
		win := comp.NewWindow21(s.c2, s.c1)
		win.Init(w.input, w.lower, w.upper, w.cfg)
		setEnabled(win, w.enable)
		s.win = win
		s.log.Info("window", "upper", "comp2", "enable", logx.Bool(w.enable))
	}
	if u := p.comp1; u != nil {
		s.c1.Init(u.pos, u.neg, u.cfg)
		setEnabled(s.c1, u.enable)
		s.log.Info("comparator", "unit", "comp1", "enable", logx.Bool(u.enable))
	}
	if u := p.comp2; u != nil {
		s.c2.Init(u.pos, u.neg, u.cfg)
		setEnabled(s.c2, u.enable)
		s.log.Info("comparator", "unit", "comp2", "enable", logx.Bool(u.enable))
	}
}

type switchable interface {
	Enable()
	Disable()
}

func setEnabled(d switchable, on bool) {
	if on {
		d.Enable()
	} else {
		d.Disable()
	}
}

// Update reads both units when which includes drivers.Voltage.
func (s *Service) Update(which drivers.Measurement) error {
	if which&drivers.Voltage == 0 {
		return nil
	}
	snap := types.ComparatorSnapshot{
		Comp1: types.ComparatorValue{Enabled: s.c1.Enabled(), Output: s.c1.Output()},
		Comp2: types.ComparatorValue{Enabled: s.c2.Enabled(), Output: s.c2.Output()},
		TS:    s.now().UnixMilli(),
	}
	if s.win != nil {
		snap.Window = &types.WindowValue{Inside: s.win.Output(), AboveLower: s.win.AboveLower()}
	}
	if changed(s.last, snap) {
		s.log.Debug("output changed",
			"comp1", logx.Bool(snap.Comp1.Output),
			"comp2", logx.Bool(snap.Comp2.Output))
	}
	s.last = snap
	return nil
}

// Snapshot returns the values read by the last Update.
func (s *Service) Snapshot() types.ComparatorSnapshot { return s.last }

func changed(a, b types.ComparatorSnapshot) bool {
	if a.Comp1 != b.Comp1 || a.Comp2 != b.Comp2 {
		return true
	}
	if (a.Window == nil) != (b.Window == nil) {
		return true
	}
	return a.Window != nil && *a.Window != *b.Window
}
