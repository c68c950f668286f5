//go:build darwin

package vk

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// The LunarG SDK installs libvulkan; MoltenVK alone is enough for the
// instance-level surface this package needs.
var libraryNames = []string{"libvulkan.1.dylib", "libvulkan.dylib", "libMoltenVK.dylib"}

func openLibrary() (uintptr, error) {
	var lastErr error
	for _, name := range libraryNames {
		lib, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_LOCAL)
		if err == nil {
			return lib, nil
		}
		lastErr = err
	}
	return 0, fmt.Errorf("vk: no vulkan loader found (tried %v): %w", libraryNames, lastErr)
}

func lookupSymbol(lib uintptr, name string) (uintptr, error) {
	return purego.Dlsym(lib, name)
}
