//go:build linux

package vk

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// The loader's SONAME first; plain .so covers development installs.
var libraryNames = []string{"libvulkan.so.1", "libvulkan.so"}

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
