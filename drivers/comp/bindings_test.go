package comp

import (
	"testing"

	"devicecode-comp/drivers/dac"
	"devicecode-comp/drivers/internal/seal"
)

// Catalog membership is enforced by the compiler.
var (
	_ Comp1Positive = PC5{}
	_ Comp1Positive = PB2{}
	_ Comp1Positive = PA1{}
	_ Comp1Positive = Open{}
	_ Comp1Positive = Comp2InP{}
	_ Comp2Positive = PB4{}
	_ Comp2Positive = PB6{}
	_ Comp2Positive = PA3{}
	_ Comp2Positive = Open{}
	_ Comp2Positive = Comp1InP{}

	_ Comp1Negative = PB1{}
	_ Comp1Negative = PC4{}
	_ Comp1Negative = PA0{}
	_ Comp1Negative = VRefint34
	_ Comp1Negative = dac.Enabled1{}
	_ Comp1Negative = dac.Enabled2{}
	_ Comp2Negative = PB3{}
	_ Comp2Negative = PB7{}
	_ Comp2Negative = PA2{}
	_ Comp2Negative = VRefint
	_ Comp2Negative = dac.Enabled1{}
	_ Comp2Negative = dac.Enabled2{}
)

type fakeReg struct{ v uint32 }

func (r *fakeReg) Get() uint32  { return r.v }
func (r *fakeReg) Set(v uint32) { r.v = v }

// positive and negative return the catalog entry s routes to on u, through
// the same sealed method Init uses.
func positive(u unitID, s any) seal.Source {
	if u == seal.Comp1 {
		return s.(Comp1Positive).Comp1Positive(seal.Token{})
	}
	return s.(Comp2Positive).Comp2Positive(seal.Token{})
}

func negative(u unitID, s any) seal.Source {
	if u == seal.Comp1 {
		return s.(Comp1Negative).Comp1Negative(seal.Token{})
	}
	return s.(Comp2Negative).Comp2Negative(seal.Token{})
}

func TestPositiveEncodings(t *testing.T) {
	cases := []struct {
		name string
		unit unitID
		src  any
		bits uint32
	}{
		{"comp1 PC5", seal.Comp1, PC5{}, 0b00},
		{"comp1 PB2", seal.Comp1, PB2{}, 0b01},
		{"comp1 PA1", seal.Comp1, PA1{}, 0b10},
		{"comp1 open", seal.Comp1, Open{}, 0b11},
		{"comp2 PB4", seal.Comp2, PB4{}, 0b00},
		{"comp2 PB6", seal.Comp2, PB6{}, 0b01},
		{"comp2 PA3", seal.Comp2, PA3{}, 0b10},
		{"comp2 open", seal.Comp2, Open{}, 0b11},
	}
	for _, c := range cases {
		reg := &fakeReg{v: 0xFFFF_FFFF}
		(&csr{unit: c.unit, reg: reg}).bind(positive(c.unit, c.src))
		if got := (reg.v >> 8) & 0b11; got != c.bits {
			t.Fatalf("%s: INPSEL=%#b want %#b", c.name, got, c.bits)
		}
		if reg.v&(1<<11) != 0 {
			t.Fatalf("%s: WINMODE left set", c.name)
		}
		if reg.v|0x300|1<<11 != 0xFFFF_FFFF {
			t.Fatalf("%s: bits outside INPSEL/WINMODE changed: %#x", c.name, reg.v)
		}
	}
}

func TestNegativeEncodings(t *testing.T) {
	dac.PowerCycle()
	ch1, ch2, ok := dac.Take()
	if !ok {
		t.Fatal("dac.Take failed")
	}
	e1, e2 := ch1.Enable(), ch2.Enable()

	cases := []struct {
		name string
		unit unitID
		src  any
		bits uint32
	}{
		{"comp1 vrefint/4", seal.Comp1, VRefint14, 0b0000},
		{"comp1 vrefint/2", seal.Comp1, VRefint12, 0b0001},
		{"comp1 vrefint*3/4", seal.Comp1, VRefint34, 0b0010},
		{"comp1 vrefint", seal.Comp1, VRefint, 0b0011},
		{"comp1 dac ch1", seal.Comp1, e1, 0b0100},
		{"comp1 dac ch2", seal.Comp1, e2, 0b0101},
		{"comp1 PB1", seal.Comp1, PB1{}, 0b0110},
		{"comp1 PC4", seal.Comp1, PC4{}, 0b0111},
		{"comp1 PA0", seal.Comp1, PA0{}, 0b1000},
		{"comp2 vrefint/4", seal.Comp2, VRefint14, 0b0000},
		{"comp2 vrefint/2", seal.Comp2, VRefint12, 0b0001},
		{"comp2 vrefint*3/4", seal.Comp2, VRefint34, 0b0010},
		{"comp2 vrefint", seal.Comp2, VRefint, 0b0011},
		{"comp2 dac ch1", seal.Comp2, e1, 0b0100},
		{"comp2 dac ch2", seal.Comp2, e2, 0b0101},
		{"comp2 PB3", seal.Comp2, PB3{}, 0b0110},
		{"comp2 PB7", seal.Comp2, PB7{}, 0b0111},
		{"comp2 PA2", seal.Comp2, PA2{}, 0b1000},
	}
	for _, c := range cases {
		reg := &fakeReg{v: 0xFFFF_FFFF}
		(&csr{unit: c.unit, reg: reg}).bind(negative(c.unit, c.src))
		if got := (reg.v >> 4) & 0xF; got != c.bits {
			t.Fatalf("%s: INMSEL=%#04b want %#04b", c.name, got, c.bits)
		}
		if reg.v|0xF0 != 0xFFFF_FFFF {
			t.Fatalf("%s: bits outside INMSEL changed: %#x", c.name, reg.v)
		}
	}
}

func TestZeroDACChannelPanicsOnInit(t *testing.T) {
	for _, c := range []struct {
		name string
		neg  Comp1Negative
	}{
		{"ch1", dac.Enabled1{}},
		{"ch2", dac.Enabled2{}},
	} {
		reg := &fakeReg{}
		c1 := &Comparator1{unit{csr: &csr{unit: seal.Comp1, reg: reg}}}
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("%s: zero dac handle accepted", c.name)
				}
			}()
			c1.Init(PA1{}, c.neg, DefaultConfig())
		}()
		if reg.v&0xF0 != 0 {
			t.Fatalf("%s: INMSEL written: %#x", c.name, reg.v)
		}
	}
}

func TestCrossLinkSetsOnlyWinMode(t *testing.T) {
	for _, c := range []struct {
		unit unitID
		src  any
	}{
		{seal.Comp1, Comp2InP{}},
		{seal.Comp2, Comp1InP{}},
	} {
		reg := &fakeReg{v: 0b01 << 8}
		(&csr{unit: c.unit, reg: reg}).bind(positive(c.unit, c.src))
		if reg.v != 0b01<<8|1<<11 {
			t.Fatalf("%s: CSR=%#x want INPSEL kept and WINMODE set", c.unit, reg.v)
		}
	}
}

func TestCatalogIsUnitSpecific(t *testing.T) {
	comp1Only := []Source{PC5{}, PB2{}, PA1{}, Comp2InP{}}
	comp2Only := []Source{PB4{}, PB6{}, PA3{}, Comp1InP{}}
	for _, s := range comp1Only {
		if _, ok := s.(Comp2Positive); ok {
			t.Fatalf("%v accepted as COMP2 positive input", s.Tag(seal.Token{}))
		}
	}
	for _, s := range comp2Only {
		if _, ok := s.(Comp1Positive); ok {
			t.Fatalf("%v accepted as COMP1 positive input", s.Tag(seal.Token{}))
		}
	}
	for _, s := range []Source{PB1{}, PC4{}, PA0{}} {
		if _, ok := s.(Comp2Negative); ok {
			t.Fatalf("%v accepted as COMP2 negative input", s.Tag(seal.Token{}))
		}
	}
	for _, s := range []Source{PB3{}, PB7{}, PA2{}} {
		if _, ok := s.(Comp1Negative); ok {
			t.Fatalf("%v accepted as COMP1 negative input", s.Tag(seal.Token{}))
		}
	}
	for _, s := range []Source{Open{}, Comp1InP{}, Comp2InP{}} {
		_, n1 := s.(Comp1Negative)
		_, n2 := s.(Comp2Negative)
		if n1 || n2 {
			t.Fatalf("%v accepted as a negative input", s.Tag(seal.Token{}))
		}
	}
}

func TestRoutesCoverTable(t *testing.T) {
	n := 0
	for u := range routes {
		for _, b := range routes[u] {
			if b.sel != selNone {
				n++
			}
		}
	}
	if n != len(bindings) {
		t.Fatalf("routes has %d entries, table has %d", n, len(bindings))
	}
}

func TestRefintZeroValueIsQuarterTap(t *testing.T) {
	var r Refint
	if r != VRefint14 || r.String() != "vrefint_1_4" {
		t.Fatalf("zero Refint = %v", r)
	}
}

func TestRefintTapsAreConstantAndInRange(t *testing.T) {
	const full = VRefint
	if full.String() != "vrefint" {
		t.Fatalf("VRefint = %v", full)
	}
	// Conversions from arbitrary integers still land on a tap.
	for n := 0; n < 256; n++ {
		tag := Refint(n).Comp1Negative(seal.Token{})
		if tag < seal.VRefint14 || tag > seal.VRefint {
			t.Fatalf("Refint(%d) routes to %v", n, tag)
		}
		if b := route(seal.Comp2, Refint(n).Comp2Negative(seal.Token{})); b.sel != selINMSEL || b.bits != uint32(n&3) {
			t.Fatalf("Refint(%d) binding = %+v", n, b)
		}
	}
}

// Embedding several catalog members cannot split membership from encoding:
// the sealed method that admits a value also supplies its route.
type innerPin struct{ PC5 }
type mixedPins struct {
	innerPin
	PB4
}

func TestEmbeddedSourcesRouteByAdmittingMethod(t *testing.T) {
	var src Comp1Positive = mixedPins{}
	reg := &fakeReg{v: 0b11 << 8}
	c1 := &Comparator1{unit{csr: &csr{unit: seal.Comp1, reg: reg}}}
	c1.Init(src, VRefint, DefaultConfig())
	if got := (reg.v >> 8) & 0b11; got != 0b00 {
		t.Fatalf("INPSEL=%#b want PC5 (0b00)", got)
	}
	if _, ok := any(mixedPins{}).(Comp2Positive); !ok {
		t.Fatal("PB4 promotion lost")
	}
	var src2 Comp2Positive = mixedPins{}
	if got := positive(seal.Comp2, src2); got != seal.PB4 {
		t.Fatalf("COMP2 route = %v want PB4", got)
	}
}

func TestRouteOutOfCatalogIsEmpty(t *testing.T) {
	if b := route(seal.Comp1, seal.NumSources); b.sel != selNone {
		t.Fatalf("route = %+v", b)
	}
}
