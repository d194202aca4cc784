package comp

import "devicecode-comp/drivers/internal/seal"

type unitID = seal.Unit

// Source is implemented by every member of the comparator input catalog. Tag
// names the source; it plays no part in routing.
type Source interface {
	Tag(seal.Token) seal.Source
}

// The input interfaces below are sealed: their single method takes a
// seal.Token, which only this module can name. The method returns the catalog
// entry the unit is routed to, so membership and encoding always come from
// the same method.

// Comp1Positive is a source COMP1's positive input can be routed to.
type Comp1Positive interface {
	Comp1Positive(seal.Token) seal.Source
}

// Comp1Negative is a source COMP1's negative input can be routed to.
type Comp1Negative interface {
	Comp1Negative(seal.Token) seal.Source
}

// Comp2Positive is a source COMP2's positive input can be routed to.
type Comp2Positive interface {
	Comp2Positive(seal.Token) seal.Source
}

// Comp2Negative is a source COMP2's negative input can be routed to.
type Comp2Negative interface {
	Comp2Negative(seal.Token) seal.Source
}

// Analog pins. Each value names a pin that the caller has already put into
// analog mode.
type (
	PC5 struct{} // COMP1_INP
	PB2 struct{} // COMP1_INP
	PA1 struct{} // COMP1_INP
	PB4 struct{} // COMP2_INP
	PB6 struct{} // COMP2_INP
	PA3 struct{} // COMP2_INP

	PB1 struct{} // COMP1_INM
	PC4 struct{} // COMP1_INM
	PA0 struct{} // COMP1_INM
	PB3 struct{} // COMP2_INM
	PB7 struct{} // COMP2_INM
	PA2 struct{} // COMP2_INM
)

func (PC5) Tag(seal.Token) seal.Source { return seal.PC5 }
func (PB2) Tag(seal.Token) seal.Source { return seal.PB2 }
func (PA1) Tag(seal.Token) seal.Source { return seal.PA1 }
func (PB4) Tag(seal.Token) seal.Source { return seal.PB4 }
func (PB6) Tag(seal.Token) seal.Source { return seal.PB6 }
func (PA3) Tag(seal.Token) seal.Source { return seal.PA3 }
func (PB1) Tag(seal.Token) seal.Source { return seal.PB1 }
func (PC4) Tag(seal.Token) seal.Source { return seal.PC4 }
func (PA0) Tag(seal.Token) seal.Source { return seal.PA0 }
func (PB3) Tag(seal.Token) seal.Source { return seal.PB3 }
func (PB7) Tag(seal.Token) seal.Source { return seal.PB7 }
func (PA2) Tag(seal.Token) seal.Source { return seal.PA2 }

func (PC5) Comp1Positive(seal.Token) seal.Source { return seal.PC5 }
func (PB2) Comp1Positive(seal.Token) seal.Source { return seal.PB2 }
func (PA1) Comp1Positive(seal.Token) seal.Source { return seal.PA1 }
func (PB4) Comp2Positive(seal.Token) seal.Source { return seal.PB4 }
func (PB6) Comp2Positive(seal.Token) seal.Source { return seal.PB6 }
func (PA3) Comp2Positive(seal.Token) seal.Source { return seal.PA3 }
func (PB1) Comp1Negative(seal.Token) seal.Source { return seal.PB1 }
func (PC4) Comp1Negative(seal.Token) seal.Source { return seal.PC4 }
func (PA0) Comp1Negative(seal.Token) seal.Source { return seal.PA0 }
func (PB3) Comp2Negative(seal.Token) seal.Source { return seal.PB3 }
func (PB7) Comp2Negative(seal.Token) seal.Source { return seal.PB7 }
func (PA2) Comp2Negative(seal.Token) seal.Source { return seal.PA2 }

// Open leaves the positive input unconnected.
type Open struct{}

func (Open) Tag(seal.Token) seal.Source           { return seal.Open }
func (Open) Comp1Positive(seal.Token) seal.Source { return seal.Open }
func (Open) Comp2Positive(seal.Token) seal.Source { return seal.Open }

// Comp1InP routes COMP1's positive input to COMP2 (window mode).
type Comp1InP struct{}

func (Comp1InP) Tag(seal.Token) seal.Source           { return seal.Comp1InP }
func (Comp1InP) Comp2Positive(seal.Token) seal.Source { return seal.Comp1InP }

// Comp2InP routes COMP2's positive input to COMP1 (window mode).
type Comp2InP struct{}

func (Comp2InP) Tag(seal.Token) seal.Source           { return seal.Comp2InP }
func (Comp2InP) Comp1Positive(seal.Token) seal.Source { return seal.Comp2InP }

// Refint is a tap of the internal reference voltage divider. The zero value is
// VRefint14.
type Refint uint8

const (
	VRefint14 Refint = iota // VREFINT * 1/4
	VRefint12               // VREFINT * 1/2
	VRefint34               // VREFINT * 3/4
	VRefint                 // VREFINT
)

// Refint(n) for n > 3 wraps onto the four taps.
func (r Refint) Tag(seal.Token) seal.Source           { return seal.VRefint14 + seal.Source(r&3) }
func (r Refint) Comp1Negative(seal.Token) seal.Source { return r.Tag(seal.Token{}) }
func (r Refint) Comp2Negative(seal.Token) seal.Source { return r.Tag(seal.Token{}) }

func (r Refint) String() string { return r.Tag(seal.Token{}).String() }
