package vk

import (
	"testing"
	"unsafe"
)

// The structs in types.go are hand-mirrored from vulkan_core.h; these checks
// pin the offsets the driver actually dereferences on 64-bit targets.
func TestABILayout(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("layout assertions target 64-bit platforms")
	}

	var app ApplicationInfo
	if off := unsafe.Offsetof(app.PApplicationName); off != 16 {
		t.Errorf("ApplicationInfo.PApplicationName offset = %d, want 16", off)
	}
	if off := unsafe.Offsetof(app.APIVersion); off != 44 {
		t.Errorf("ApplicationInfo.APIVersion offset = %d, want 44", off)
	}
	if size := unsafe.Sizeof(app); size != 48 {
		t.Errorf("sizeof ApplicationInfo = %d, want 48", size)
	}

	var info InstanceCreateInfo
	if off := unsafe.Offsetof(info.PApplicationInfo); off != 24 {
		t.Errorf("InstanceCreateInfo.PApplicationInfo offset = %d, want 24", off)
	}
	if off := unsafe.Offsetof(info.PpEnabledExtensionNames); off != 56 {
		t.Errorf("InstanceCreateInfo.PpEnabledExtensionNames offset = %d, want 56", off)
	}
	if size := unsafe.Sizeof(info); size != 64 {
		t.Errorf("sizeof InstanceCreateInfo = %d, want 64", size)
	}

	var layer LayerProperties
	if off := unsafe.Offsetof(layer.SpecVersion); off != 256 {
		t.Errorf("LayerProperties.SpecVersion offset = %d, want 256", off)
	}
	if size := unsafe.Sizeof(layer); size != 520 {
		t.Errorf("sizeof LayerProperties = %d, want 520", size)
	}

	var m DebugUtilsMessengerCreateInfoEXT
	if off := unsafe.Offsetof(m.PfnUserCallback); off != 32 {
		t.Errorf("DebugUtilsMessengerCreateInfoEXT.PfnUserCallback offset = %d, want 32", off)
	}
	if size := unsafe.Sizeof(m); size != 48 {
		t.Errorf("sizeof DebugUtilsMessengerCreateInfoEXT = %d, want 48", size)
	}

	var data DebugUtilsMessengerCallbackDataEXT
	if off := unsafe.Offsetof(data.PMessage); off != 40 {
		t.Errorf("DebugUtilsMessengerCallbackDataEXT.PMessage offset = %d, want 40", off)
	}
	if size := unsafe.Sizeof(data); size != 96 {
		t.Errorf("sizeof DebugUtilsMessengerCallbackDataEXT = %d, want 96", size)
	}
}

func TestSeverityOrdering(t *testing.T) {
	ordered := []DebugUtilsMessageSeverityFlagsEXT{
		DebugUtilsMessageSeverityVerboseBit,
		DebugUtilsMessageSeverityInfoBit,
		DebugUtilsMessageSeverityWarningBit,
		DebugUtilsMessageSeverityErrorBit,
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("severity bits out of order at %d: %v >= %v", i, ordered[i-1], ordered[i])
		}
	}
}

func TestFlagStrings(t *testing.T) {
	if got := DebugUtilsMessageTypeValidationBit.String(); got != "Validation" {
		t.Errorf("type String() = %q, want %q", got, "Validation")
	}
	if got := DebugUtilsMessageTypeAll.String(); got != "General|Validation|Performance" {
		t.Errorf("type String() = %q", got)
	}
	if got := DebugUtilsMessageSeverityErrorBit.String(); got != "Error" {
		t.Errorf("severity String() = %q, want %q", got, "Error")
	}
	if got := DebugUtilsMessageSeverityFlagsEXT(0).String(); got != "None" {
		t.Errorf("severity String() = %q, want %q", got, "None")
	}
}
