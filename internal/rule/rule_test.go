package rule

import "testing"

func TestLifeMasks(t *testing.T) {
	r := Life()
	if r.BirthFlags != 1<<3 {
		t.Errorf("Life().BirthFlags = %b, want B3", r.BirthFlags)
	}
	if r.SurviveFlags != (1<<2)|(1<<3) {
		t.Errorf("Life().SurviveFlags = %b, want S23", r.SurviveFlags)
	}
}

func TestMaskTruncatesToNineBits(t *testing.T) {
	r := Mask(0xFFFF, 0xFFFF)
	if r.BirthFlags != 0x1FF || r.SurviveFlags != 0x1FF {
		t.Errorf("Mask(0xFFFF, 0xFFFF) = (%x, %x), want (0x1FF, 0x1FF)", r.BirthFlags, r.SurviveFlags)
	}
}

func TestRegistryPreloadsBuiltins(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"life", "highlife", "seeds", "daynight"} {
		if _, err := reg.Lookup(name); err != nil {
			t.Errorf("Lookup(%q) failed on a fresh registry: %v", name, err)
		}
	}
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	reg := NewRegistry()
	custom := Mask(1<<4, 1<<2)
	custom.Name = "custom"

	if err := reg.Register(custom); err != nil {
		t.Fatalf("Register: %v", err)
	}
	got, err := reg.Lookup("custom")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != custom {
		t.Errorf("Lookup(custom) = %+v, want %+v", got, custom)
	}
}

func TestRegistryRejectsEmptyName(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(Mask(1, 1)); err == nil {
		t.Error("Register with an empty rule name should error")
	}
}

func TestRegistryLookupMissing(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Lookup("does-not-exist"); err == nil {
		t.Error("Lookup of an unregistered name should error")
	}
}

func TestRegistryNames(t *testing.T) {
	reg := NewRegistry()
	names := reg.Names()
	if len(names) != 4 {
		t.Errorf("Names() length = %d, want 4 built-in presets", len(names))
	}
}
