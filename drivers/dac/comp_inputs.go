//go:build stm32g071 || stm32g081 || !tinygo

package dac

import "devicecode-comp/drivers/internal/seal"

// On parts with a DAC, an enabled channel can drive either comparator's
// negative input. Only Enable hands out an enabled channel; a zero value
// panics when routed.

func input(r register, s seal.Source) seal.Source {
	if r == nil {
		panic("dac: channel not obtained from Take")
	}
	return s
}

func (e Enabled1) Tag(seal.Token) seal.Source           { return input(e.cr, seal.DAC1Ch1) }
func (e Enabled1) Comp1Negative(seal.Token) seal.Source { return input(e.cr, seal.DAC1Ch1) }
func (e Enabled1) Comp2Negative(seal.Token) seal.Source { return input(e.cr, seal.DAC1Ch1) }

func (e Enabled2) Tag(seal.Token) seal.Source           { return input(e.cr, seal.DAC1Ch2) }
func (e Enabled2) Comp1Negative(seal.Token) seal.Source { return input(e.cr, seal.DAC1Ch2) }
func (e Enabled2) Comp2Negative(seal.Token) seal.Source { return input(e.cr, seal.DAC1Ch2) }
