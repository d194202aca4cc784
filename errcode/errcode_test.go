package errcode

import (
	"errors"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"ok":                  OK,
		"invalid_params":      InvalidParams,
		"unsupported":         Unsupported,
		"unknown_unit":        UnknownUnit,
		"unknown_source":      UnknownSource,
		"source_not_routable": SourceNotRoutable,
		"dac_disabled":        DACDisabled,
		"unit_in_use":         UnitInUse,
		"error":               Error,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestWrapKeepsCode(t *testing.T) {
	err := Wrap(SourceNotRoutable, "comp1.positive", "PA3")
	if err.Error() != "comp1.positive: source_not_routable: PA3" {
		t.Fatalf("message: %q", err.Error())
	}
	if Of(err) != SourceNotRoutable {
		t.Fatalf("Of = %q", Of(err))
	}
	if !errors.Is(err, SourceNotRoutable) {
		t.Fatal("errors.Is did not match the bare code")
	}
	if errors.Is(err, UnknownSource) {
		t.Fatal("errors.Is matched a different code")
	}
}

func TestOf(t *testing.T) {
	if Of(nil) != OK {
		t.Fatal("nil should map to OK")
	}
	if Of(UnitInUse) != UnitInUse {
		t.Fatal("bare code not returned")
	}
	if Of(errors.New("boom")) != Error {
		t.Fatal("foreign error should map to Error")
	}
}
