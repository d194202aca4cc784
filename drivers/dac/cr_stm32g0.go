//go:build tinygo && (stm32g071 || stm32g081)

package dac

import "device/stm32"

func crRegister() register { return &stm32.DAC.CR }
