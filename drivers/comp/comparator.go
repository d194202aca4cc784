package comp

import (
	"devicecode-comp/drivers/internal/seal"
	"devicecode-comp/x/bitfield"
)

// unit holds the operations common to both comparators. All state lives in
// the CSR; nothing is mirrored here.
type unit struct {
	csr *csr
}

func (u *unit) init(pos, neg seal.Source, cfg Config) {
	u.csr.bind(pos)
	u.csr.bind(neg)
	u.csr.modify(cfg.update())
}

// Enable sets EN. Enabling an enabled comparator is a no-op.
func (u *unit) Enable() { u.csr.modify(bitfield.Update[uint32]{}.Flag(csrEN, true)) }

// Disable clears EN. Disabling a disabled comparator is a no-op.
func (u *unit) Disable() { u.csr.modify(bitfield.Update[uint32]{}.Flag(csrEN, false)) }

// Reset returns the CSR to its reset value: disabled, default routing, window
// mode and output XOR off.
func (u *unit) Reset() { u.csr.write(0) }

// Enabled reports the EN bit.
func (u *unit) Enabled() bool { return csrEN.Has(u.csr.read()) }

// Output returns the instantaneous VALUE bit, after polarity and XOR. It does
// not wait for the analog input to settle.
func (u *unit) Output() bool { return csrVALUE.Has(u.csr.read()) }

// Comparator1 is the exclusive handle to COMP1, obtained from Split.
type Comparator1 struct {
	unit
}

// Init routes pos and neg and applies cfg. Call it before Enable; an enabled
// but unconfigured comparator compares its reset-default inputs.
func (c *Comparator1) Init(pos Comp1Positive, neg Comp1Negative, cfg Config) {
	c.init(pos.Comp1Positive(seal.Token{}), neg.Comp1Negative(seal.Token{}), cfg)
}

// Comparator2 is the exclusive handle to COMP2, obtained from Split.
type Comparator2 struct {
	unit
}

// Init routes pos and neg and applies cfg. Call it before Enable; an enabled
// but unconfigured comparator compares its reset-default inputs.
func (c *Comparator2) Init(pos Comp2Positive, neg Comp2Negative, cfg Config) {
	c.init(pos.Comp2Positive(seal.Token{}), neg.Comp2Negative(seal.Token{}), cfg)
}
