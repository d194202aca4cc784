//go:build stm32g071 || stm32g081 || !tinygo

// Package dac exposes the enabled/disabled state of the two DAC1 output
// channels as types, so only an enabled channel can be handed to a
// comparator. Conversion itself is out of scope.
package dac

import "sync/atomic"

// DAC_CR enable bits.
const (
	crEN1 = 1 << 0
	crEN2 = 1 << 16
)

type register interface {
	Get() uint32
	Set(value uint32)
}

// Channel1 is DAC1 channel 1 while disabled.
type Channel1 struct{ cr register }

// Channel2 is DAC1 channel 2 while disabled.
type Channel2 struct{ cr register }

// Enabled1 is DAC1 channel 1 while enabled.
type Enabled1 struct{ cr register }

// Enabled2 is DAC1 channel 2 while enabled.
type Enabled2 struct{ cr register }

var taken atomic.Bool

// Take returns both channels, disabled, the first time it is called and
// ok=false afterwards. The DAC clock must already be running.
func Take() (ch1 Channel1, ch2 Channel2, ok bool) {
	if !taken.CompareAndSwap(false, true) {
		return Channel1{}, Channel2{}, false
	}
	cr := crRegister()
	return Channel1{cr}, Channel2{cr}, true
}

func setBits(r register, mask uint32, on bool) {
	if r == nil {
		panic("dac: channel not obtained from Take")
	}
	v := r.Get()
	if on {
		v |= mask
	} else {
		v &^= mask
	}
	r.Set(v)
}

// Enable turns the channel on.
func (c Channel1) Enable() Enabled1 {
	setBits(c.cr, crEN1, true)
	return Enabled1(c)
}

// Enable turns the channel on.
func (c Channel2) Enable() Enabled2 {
	setBits(c.cr, crEN2, true)
	return Enabled2(c)
}

// Disable turns the channel off.
func (e Enabled1) Disable() Channel1 {
	setBits(e.cr, crEN1, false)
	return Channel1(e)
}

// Disable turns the channel off.
func (e Enabled2) Disable() Channel2 {
	setBits(e.cr, crEN2, false)
	return Channel2(e)
}
