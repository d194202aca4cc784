package bitfield

import "testing"

func TestFieldMaskGetPut(t *testing.T) {
	cases := []struct {
		f    Field[uint32]
		mask uint32
	}{
		{Bit[uint32](0), 0x1},
		{Field[uint32]{Shift: 4, Width: 4}, 0xF0},
		{Field[uint32]{Shift: 8, Width: 2}, 0x300},
		{Bit[uint32](31), 0x8000_0000},
	}
	for _, c := range cases {
		if got := c.f.Mask(); got != c.mask {
			t.Fatalf("mask shift=%d width=%d: got %#x want %#x", c.f.Shift, c.f.Width, got, c.mask)
		}
	}

	f := Field[uint32]{Shift: 4, Width: 4}
	reg := f.Put(0xFFFF_FFFF, 0b0010)
	if reg != 0xFFFF_FF2F {
		t.Fatalf("put: got %#x", reg)
	}
	if got := f.Get(reg); got != 0b0010 {
		t.Fatalf("get: got %#b", got)
	}
	// Oversized values are truncated to the field.
	if got := f.Put(0, 0x1F); got != 0xF0 {
		t.Fatalf("truncate: got %#x", got)
	}
}

func TestFieldHas(t *testing.T) {
	f := Field[uint8]{Shift: 2, Width: 2}
	if f.Has(0b0000_0011) {
		t.Fatal("bits outside field reported set")
	}
	if !f.Has(0b0000_1000) {
		t.Fatal("bit inside field not reported")
	}
}

func TestUpdateAppliesAllFieldsOnce(t *testing.T) {
	hyst := Field[uint32]{Shift: 16, Width: 2}
	pol := Bit[uint32](15)
	en := Bit[uint32](0)

	u := Update[uint32]{}.With(hyst, 0b10).Flag(pol, true).Flag(en, false)
	if u.Mask() != hyst.Mask()|pol.Mask()|en.Mask() {
		t.Fatalf("mask: got %#x", u.Mask())
	}

	got := u.Apply(0x0003_0001 | 0x40)
	want := uint32(0x0002_8000 | 0x40)
	if got != want {
		t.Fatalf("apply: got %#x want %#x", got, want)
	}
}
