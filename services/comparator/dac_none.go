//go:build tinygo && !(stm32g071 || stm32g081)

package comparator

// Parts without a DAC never resolve a DAC threshold.
type dacChannels struct{}

func (dacChannels) negative(op, name string) (bothNegative, bool, error) {
	return noDAC(op, name)
}
