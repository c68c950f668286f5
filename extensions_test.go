package vkcontext

import (
	"slices"
	"testing"

	"github.com/gogpu/vkcontext/vk"
)

func TestNegotiateExtensionsBase(t *testing.T) {
	required := []string{"VK_KHR_surface", "VK_KHR_wayland_surface"}

	extensions, flags := negotiateExtensions(required, false, false)

	if !slices.Equal(extensions, required) {
		t.Errorf("extensions = %v, want %v", extensions, required)
	}
	if flags != 0 {
		t.Errorf("flags = %#x, want 0", flags)
	}
}

func TestNegotiateExtensionsDiagnostics(t *testing.T) {
	extensions, _ := negotiateExtensions([]string{"VK_KHR_surface"}, true, false)

	want := []string{"VK_KHR_surface", vk.ExtDebugUtilsName}
	if !slices.Equal(extensions, want) {
		t.Errorf("extensions = %v, want %v", extensions, want)
	}
}

func TestNegotiateExtensionsPortability(t *testing.T) {
	extensions, flags := negotiateExtensions([]string{"VK_KHR_surface"}, false, true)

	want := []string{
		"VK_KHR_surface",
		vk.KhrGetPhysicalDeviceProperties2Name,
		vk.KhrPortabilityEnumerationName,
	}
	if !slices.Equal(extensions, want) {
		t.Errorf("extensions = %v, want %v", extensions, want)
	}
	if flags&vk.InstanceCreateEnumeratePortabilityBit == 0 {
		t.Errorf("flags = %#x, missing portability bit", flags)
	}
}

func TestNegotiateExtensionsNoDedup(t *testing.T) {
	// Negotiation never removes or merges names; a duplicate from the window
	// collaborator passes through untouched.
	extensions, _ := negotiateExtensions([]string{vk.ExtDebugUtilsName}, true, false)

	want := []string{vk.ExtDebugUtilsName, vk.ExtDebugUtilsName}
	if !slices.Equal(extensions, want) {
		t.Errorf("extensions = %v, want %v", extensions, want)
	}
}

func TestPortabilityRequired(t *testing.T) {
	tests := []struct {
		name     string
		platform bool
		loader   vk.Version
		want     bool
	}{
		{"off-platform new loader", false, vk.MakeVersion(1, 3, 290), false},
		{"on-platform old loader", true, vk.MakeVersion(1, 2, 0), false},
		{"on-platform at threshold", true, PortabilityMinVersion, true},
		{"on-platform new loader", true, vk.MakeVersion(1, 3, 290), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := portabilityRequired(tt.platform, tt.loader); got != tt.want {
				t.Errorf("portabilityRequired(%v, %v) = %v, want %v", tt.platform, tt.loader, got, tt.want)
			}
		})
	}
}
