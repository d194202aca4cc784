//go:build !tinygo

package dac

// HostCR stands in for DAC_CR on host builds.
type HostCR struct{ v uint32 }

func (r *HostCR) Get() uint32  { return r.v }
func (r *HostCR) Set(v uint32) { r.v = v }

var hostCR HostCR

func crRegister() register { return &hostCR }

// PowerCycle clears the host DAC_CR, re-arms Take and returns the register.
func PowerCycle() *HostCR {
	taken.Store(false)
	hostCR = HostCR{}
	return &hostCR
}
