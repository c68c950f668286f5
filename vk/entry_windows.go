//go:build windows

package vk

import (
	"fmt"

	"golang.org/x/sys/windows"
)

const libraryName = "vulkan-1.dll"

func openLibrary() (uintptr, error) {
	lib, err := windows.LoadLibrary(libraryName)
	if err != nil {
		return 0, fmt.Errorf("vk: loading %s: %w", libraryName, err)
	}
	return uintptr(lib), nil
}

func lookupSymbol(lib uintptr, name string) (uintptr, error) {
	addr, err := windows.GetProcAddress(windows.Handle(lib), name)
	if err != nil {
		return 0, fmt.Errorf("vk: %s: %w", name, err)
	}
	return addr, nil
}
