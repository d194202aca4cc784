package comp

import (
	"sync/atomic"

	"devicecode-comp/drivers/internal/seal"
)

// ClockControl is the slice of RCC the COMP block needs. COMP is clocked and
// reset through SYSCFG on the G0.
type ClockControl interface {
	// EnableClock sets RCC_APBENR2.SYSCFGEN.
	EnableClock()
	// SetReset drives RCC_APBRSTR2.SYSCFGRST.
	SetReset(asserted bool)
}

// Peripheral is the whole COMP register block. Split consumes it.
type Peripheral struct {
	consumed atomic.Bool
}

var taken atomic.Bool

// Take returns the COMP block the first time it is called and (nil, false)
// afterwards.
func Take() (*Peripheral, bool) {
	if !taken.CompareAndSwap(false, true) {
		return nil, false
	}
	return &Peripheral{}, true
}

// Split enables and resets the block through rcc and returns the two
// comparator handles. It is the only way to obtain them. Splitting the same
// Peripheral twice panics.
func Split(p *Peripheral, rcc ClockControl) (*Comparator1, *Comparator2) {
	if p == nil || !p.consumed.CompareAndSwap(false, true) {
		panic("comp: peripheral already split")
	}

	rcc.EnableClock()
	rcc.SetReset(true)
	rcc.SetReset(false)

	c1 := &Comparator1{unit{csr: &csr{unit: seal.Comp1, reg: csrRegister(seal.Comp1)}}}
	c2 := &Comparator2{unit{csr: &csr{unit: seal.Comp2, reg: csrRegister(seal.Comp2)}}}
	return c1, c2
}

// Split is the method form of the package Split.
func (p *Peripheral) Split(rcc ClockControl) (*Comparator1, *Comparator2) {
	return Split(p, rcc)
}
