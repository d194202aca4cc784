// Package seal holds the closed catalog of comparator input sources shared by
// the comp and dac drivers. Token cannot be named outside this module, so the
// input interfaces built on it cannot gain members from other modules.
package seal

// Token is passed to the sealed methods of the comparator input interfaces.
type Token struct{}

// Unit identifies one comparator of the COMP block.
type Unit uint8

const (
	Comp1 Unit = iota
	Comp2

	NumUnits = 2
)

func (u Unit) String() string {
	switch u {
	case Comp1:
		return "comp1"
	case Comp2:
		return "comp2"
	default:
		return "comp?"
	}
}

// Other returns the partner unit.
func (u Unit) Other() Unit { return u ^ 1 }

// Source tags every member of the input catalog.
type Source uint8

const (
	None Source = iota

	// Comp1 positive pins.
	PC5
	PB2
	PA1
	// Comp2 positive pins.
	PB4
	PB6
	PA3

	Open
	Comp1InP
	Comp2InP

	// Comp1 negative pins.
	PB1
	PC4
	PA0
	// Comp2 negative pins.
	PB3
	PB7
	PA2

	VRefint14
	VRefint12
	VRefint34
	VRefint

	DAC1Ch1
	DAC1Ch2

	NumSources
)

var sourceNames = [NumSources]string{
	None:      "none",
	PC5:       "PC5",
	PB2:       "PB2",
	PA1:       "PA1",
	PB4:       "PB4",
	PB6:       "PB6",
	PA3:       "PA3",
	Open:      "open",
	Comp1InP:  "comp1_inp",
	Comp2InP:  "comp2_inp",
	PB1:       "PB1",
	PC4:       "PC4",
	PA0:       "PA0",
	PB3:       "PB3",
	PB7:       "PB7",
	PA2:       "PA2",
	VRefint14: "vrefint_1_4",
	VRefint12: "vrefint_1_2",
	VRefint34: "vrefint_3_4",
	VRefint:   "vrefint",
	DAC1Ch1:   "dac1_ch1",
	DAC1Ch2:   "dac1_ch2",
}

func (s Source) String() string {
	if s < NumSources {
		return sourceNames[s]
	}
	return "invalid"
}
