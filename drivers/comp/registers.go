// Package comp drives the two analog comparators (COMP1, COMP2) of the
// STM32G0 family.
//
// Bring the block up once with Take and Split, configure each unit with Init,
// then Enable it and poll Output:
//
//	p, _ := comp.Take()
//	c1, c2 := p.Split(comp.DefaultClockControl())
//	c1.Init(comp.PA1{}, comp.VRefint34, comp.DefaultConfig())
//	c1.Enable()
//	above := c1.Output()
//
// Which sources a unit accepts is fixed by the Comp1Positive, Comp1Negative,
// Comp2Positive and Comp2Negative interfaces; a source wired to the wrong unit
// does not compile. Pins must already be in analog mode.
package comp

import "devicecode-comp/x/bitfield"

// COMP_CSR layout (RM0444, COMP1_CSR/COMP2_CSR).
var (
	csrEN       = bitfield.Bit[uint32](0)
	csrINMSEL   = bitfield.Field[uint32]{Shift: 4, Width: 4}
	csrINPSEL   = bitfield.Field[uint32]{Shift: 8, Width: 2}
	csrWINMODE  = bitfield.Bit[uint32](11)
	csrWINOUT   = bitfield.Bit[uint32](14)
	csrPOLARITY = bitfield.Bit[uint32](15)
	csrHYST     = bitfield.Field[uint32]{Shift: 16, Width: 2}
	csrPWRMODE  = bitfield.Field[uint32]{Shift: 18, Width: 2}
	csrVALUE    = bitfield.Bit[uint32](30)
)

// register is the slice of runtime/volatile.Register32 the driver needs.
type register interface {
	Get() uint32
	Set(value uint32)
}

// csr is the exclusive handle to one unit's control/status register.
type csr struct {
	unit unitID
	reg  register
}

func (c *csr) read() uint32 {
	if c == nil || c.reg == nil {
		panic("comp: comparator handle not obtained from Split")
	}
	return c.reg.Get()
}

func (c *csr) modify(u bitfield.Update[uint32]) {
	v := c.read()
	c.reg.Set(u.Apply(v))
}

func (c *csr) write(v uint32) {
	c.read()
	c.reg.Set(v)
}
