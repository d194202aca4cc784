//go:build tinygo && stm32g0

package comp

import (
	"device/stm32"

	"devicecode-comp/drivers/internal/seal"
)

func csrRegister(u unitID) register {
	if u == seal.Comp1 {
		return &stm32.COMP.COMP1_CSR
	}
	return &stm32.COMP.COMP2_CSR
}

type rcc struct{}

// DefaultClockControl drives the SYSCFG clock and reset bits in RCC.
func DefaultClockControl() ClockControl { return rcc{} }

func (rcc) EnableClock() {
	stm32.RCC.APBENR2.SetBits(stm32.RCC_APBENR2_SYSCFGEN)
	// Read back so the enable lands before the first COMP access.
	_ = stm32.RCC.APBENR2.Get()
}

func (rcc) SetReset(asserted bool) {
	if asserted {
		stm32.RCC.APBRSTR2.SetBits(stm32.RCC_APBRSTR2_SYSCFGRST)
	} else {
		stm32.RCC.APBRSTR2.ClearBits(stm32.RCC_APBRSTR2_SYSCFGRST)
	}
}
