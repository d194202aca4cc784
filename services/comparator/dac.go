//go:build stm32g071 || stm32g081 || !tinygo

package comparator

import (
	"devicecode-comp/drivers/dac"
	"devicecode-comp/errcode"
)

// dacChannels holds the DAC channels the caller has enabled. Only those can
// be named as thresholds.
type dacChannels struct {
	ch1 *dac.Enabled1
	ch2 *dac.Enabled2
}

// WithDAC1 offers an enabled DAC1 channel 1 as "dac1_ch1".
func WithDAC1(ch dac.Enabled1) Option {
	return func(s *Service) { s.dac.ch1 = &ch }
}

// WithDAC2 offers an enabled DAC1 channel 2 as "dac1_ch2".
func WithDAC2(ch dac.Enabled2) Option {
	return func(s *Service) { s.dac.ch2 = &ch }
}

// negative reports ok=false for names that are not DAC channels.
func (d dacChannels) negative(op, name string) (src bothNegative, ok bool, err error) {
	switch name {
	case "dac1_ch1":
		if d.ch1 == nil {
			return nil, true, errcode.Wrap(errcode.DACDisabled, op, name)
		}
		return *d.ch1, true, nil
	case "dac1_ch2":
		if d.ch2 == nil {
			return nil, true, errcode.Wrap(errcode.DACDisabled, op, name)
		}
		return *d.ch2, true, nil
	}
	return nil, false, nil
}
