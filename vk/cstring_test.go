package vk

import (
	"slices"
	"testing"
)

func TestCstr(t *testing.T) {
	b := cstr("VK_KHR_surface")
	if b[len(b)-1] != 0 {
		t.Error("cstr result not NUL-terminated")
	}
	if got := string(b[:len(b)-1]); got != "VK_KHR_surface" {
		t.Errorf("cstr content = %q", got)
	}
}

func TestGostringRoundTrip(t *testing.T) {
	b := cstr("validation message")
	if got := gostring(&b[0]); got != "validation message" {
		t.Errorf("gostring() = %q", got)
	}
	if got := gostring(nil); got != "" {
		t.Errorf("gostring(nil) = %q, want empty", got)
	}
}

func TestGostringBytes(t *testing.T) {
	var name [maxLayerNameSize]byte
	copy(name[:], ValidationLayerName)
	if got := gostringBytes(name[:]); got != ValidationLayerName {
		t.Errorf("gostringBytes() = %q, want %q", got, ValidationLayerName)
	}

	full := []byte{'a', 'b', 'c'}
	if got := gostringBytes(full); got != "abc" {
		t.Errorf("gostringBytes without NUL = %q, want %q", got, "abc")
	}
}

func TestCstrArray(t *testing.T) {
	names := []string{"VK_KHR_surface", ExtDebugUtilsName}
	a := newCStrArray(names)

	if a.ptr() == nil {
		t.Fatal("ptr() = nil for non-empty list")
	}
	var got []string
	for _, p := range a.ptrs {
		got = append(got, gostring(p))
	}
	if !slices.Equal(got, names) {
		t.Errorf("round-tripped names = %v, want %v", got, names)
	}
}

func TestCstrArrayEmpty(t *testing.T) {
	a := newCStrArray(nil)
	if a.ptr() != nil {
		t.Error("ptr() != nil for empty list")
	}
}
