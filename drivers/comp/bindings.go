package comp

import (
	"devicecode-comp/drivers/internal/seal"
	"devicecode-comp/x/bitfield"
)

// selector names the CSR field a binding writes.
type selector uint8

const (
	selNone selector = iota
	selINPSEL
	selINMSEL
	selWINMODE
)

type binding struct {
	src  seal.Source
	unit unitID
	sel  selector
	bits uint32
}

// bindings is the hardware routing table (RM0444 COMP_CSR INPSEL/INMSEL).
// The input interfaces decide which rows a caller can reach; this table only
// supplies the encoding.
var bindings = [...]binding{
	{seal.PC5, seal.Comp1, selINPSEL, 0b00},
	{seal.PB2, seal.Comp1, selINPSEL, 0b01},
	{seal.PA1, seal.Comp1, selINPSEL, 0b10},
	{seal.Open, seal.Comp1, selINPSEL, 0b11},
	{seal.Comp2InP, seal.Comp1, selWINMODE, 1},

	{seal.PB4, seal.Comp2, selINPSEL, 0b00},
	{seal.PB6, seal.Comp2, selINPSEL, 0b01},
	{seal.PA3, seal.Comp2, selINPSEL, 0b10},
	{seal.Open, seal.Comp2, selINPSEL, 0b11},
	{seal.Comp1InP, seal.Comp2, selWINMODE, 1},

	{seal.VRefint14, seal.Comp1, selINMSEL, 0b0000},
	{seal.VRefint12, seal.Comp1, selINMSEL, 0b0001},
	{seal.VRefint34, seal.Comp1, selINMSEL, 0b0010},
	{seal.VRefint, seal.Comp1, selINMSEL, 0b0011},
	{seal.DAC1Ch1, seal.Comp1, selINMSEL, 0b0100},
	{seal.DAC1Ch2, seal.Comp1, selINMSEL, 0b0101},
	{seal.PB1, seal.Comp1, selINMSEL, 0b0110},
	{seal.PC4, seal.Comp1, selINMSEL, 0b0111},
	{seal.PA0, seal.Comp1, selINMSEL, 0b1000},

	{seal.VRefint14, seal.Comp2, selINMSEL, 0b0000},
	{seal.VRefint12, seal.Comp2, selINMSEL, 0b0001},
	{seal.VRefint34, seal.Comp2, selINMSEL, 0b0010},
	{seal.VRefint, seal.Comp2, selINMSEL, 0b0011},
	{seal.DAC1Ch1, seal.Comp2, selINMSEL, 0b0100},
	{seal.DAC1Ch2, seal.Comp2, selINMSEL, 0b0101},
	{seal.PB3, seal.Comp2, selINMSEL, 0b0110},
	{seal.PB7, seal.Comp2, selINMSEL, 0b0111},
	{seal.PA2, seal.Comp2, selINMSEL, 0b1000},
}

// routes indexes bindings by (unit, source).
var routes = func() (r [seal.NumUnits][seal.NumSources]binding) {
	for _, b := range bindings {
		if r[b.unit][b.src].sel != selNone {
			panic("comp: duplicate binding for " + b.src.String() + " on " + b.unit.String())
		}
		r[b.unit][b.src] = b
	}
	return r
}()

func route(u unitID, s seal.Source) binding {
	if s >= seal.NumSources {
		return binding{}
	}
	return routes[u][s]
}

// update returns the CSR change for b. A pin or open positive input also
// leaves window mode, otherwise INPSEL would be ignored.
func (b binding) update() bitfield.Update[uint32] {
	var u bitfield.Update[uint32]
	switch b.sel {
	case selINPSEL:
		return u.With(csrINPSEL, b.bits).Flag(csrWINMODE, false)
	case selINMSEL:
		return u.With(csrINMSEL, b.bits)
	case selWINMODE:
		return u.Flag(csrWINMODE, true)
	}
	// Unreachable through the sealed input interfaces.
	panic("comp: no route")
}

// bind writes the routing for s into c.
func (c *csr) bind(s seal.Source) {
	if c == nil {
		panic("comp: comparator handle not obtained from Split")
	}
	c.modify(route(c.unit, s).update())
}
