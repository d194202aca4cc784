//go:build !(tinygo && stm32g0)

package comp

import "devicecode-comp/drivers/internal/seal"

// VRefintMillivolts is the simulated internal reference voltage.
const VRefintMillivolts = 1212

// Sim models the COMP block and its SYSCFG clock/reset on host builds. VALUE
// is computed on every CSR read from the levels set with Drive.
type Sim struct {
	csr    [seal.NumUnits]simCSR
	levels [seal.NumSources]int32
	clock  bool
	trace  []string
}

type simCSR struct {
	sim  *Sim
	unit unitID
	v    uint32
}

var sim = newSim()

func newSim() *Sim {
	s := &Sim{}
	s.clear()
	return s
}

func (s *Sim) clear() {
	*s = Sim{}
	for i := range s.csr {
		s.csr[i] = simCSR{sim: s, unit: unitID(i)}
	}
}

// Simulator returns the host model behind Take and DefaultClockControl.
func Simulator() *Sim { return sim }

// DefaultClockControl returns the simulator's RCC.
func DefaultClockControl() ClockControl { return sim }

func csrRegister(u unitID) register { return &sim.csr[u] }

// PowerCycle returns the block to its power-on state and re-arms Take.
func (s *Sim) PowerCycle() {
	s.clear()
	taken.Store(false)
}

// Drive sets the level of src in millivolts. Reference taps are fixed by
// VRefintMillivolts and ignore Drive.
func (s *Sim) Drive(src Source, millivolts int32) {
	s.levels[src.Tag(seal.Token{})] = millivolts
}

// Trace returns the RCC operations seen so far.
func (s *Sim) Trace() []string { return append([]string(nil), s.trace...) }

func (s *Sim) EnableClock() {
	s.clock = true
	s.trace = append(s.trace, "clock_enable")
}

func (s *Sim) SetReset(asserted bool) {
	if asserted {
		s.trace = append(s.trace, "reset_assert")
		for i := range s.csr {
			s.csr[i].v = 0
		}
		return
	}
	s.trace = append(s.trace, "reset_release")
}

func (r *simCSR) Get() uint32 {
	v := r.v
	if r.sim.output(r.unit) {
		v |= csrVALUE.Mask()
	}
	return v
}

// Set drops writes while the block is unclocked. VALUE is read-only.
func (r *simCSR) Set(v uint32) {
	if !r.sim.clock {
		return
	}
	r.v = v &^ csrVALUE.Mask()
}

func (s *Sim) source(u unitID, sel selector, bits uint32) seal.Source {
	for _, b := range bindings {
		if b.unit == u && b.sel == sel && b.bits == bits {
			return b.src
		}
	}
	return seal.None
}

func (s *Sim) level(src seal.Source) int32 {
	switch src {
	case seal.None, seal.Open:
		return 0
	case seal.VRefint14:
		return VRefintMillivolts / 4
	case seal.VRefint12:
		return VRefintMillivolts / 2
	case seal.VRefint34:
		return VRefintMillivolts * 3 / 4
	case seal.VRefint:
		return VRefintMillivolts
	}
	return s.levels[src]
}

func (s *Sim) plus(u unitID) int32 {
	reg := s.csr[u].v
	if csrWINMODE.Has(reg) {
		u = u.Other()
		reg = s.csr[u].v
	}
	return s.level(s.source(u, selINPSEL, csrINPSEL.Get(reg)))
}

func (s *Sim) minus(u unitID) int32 {
	return s.level(s.source(u, selINMSEL, csrINMSEL.Get(s.csr[u].v)))
}

// raw is the polarity-adjusted comparison, before WINOUT. A disabled
// comparator reads low.
func (s *Sim) raw(u unitID) bool {
	reg := s.csr[u].v
	if !csrEN.Has(reg) {
		return false
	}
	out := s.plus(u) > s.minus(u)
	if csrPOLARITY.Has(reg) {
		out = !out
	}
	return out
}

func (s *Sim) output(u unitID) bool {
	out := s.raw(u)
	if csrWINOUT.Has(s.csr[u].v) {
		out = out != s.raw(u.Other())
	}
	return out
}
