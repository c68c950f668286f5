package vkcontext

import (
	"fmt"
	"slices"

	"github.com/gogpu/vkcontext/vk"
)

// negotiateLayers decides which instance layers to enable. With diagnostics
// off the list is unconditionally empty. With diagnostics on the Khronos
// validation layer must be installed on the host; if it is not, the error is
// returned here, before any instance creation is attempted.
func negotiateLayers(diagnostics bool, entry Entry) ([]string, error) {
	if !diagnostics {
		return nil, nil
	}

	available, err := entry.AvailableLayers()
	if err != nil {
		return nil, fmt.Errorf("vkcontext: enumerating instance layers: %w", err)
	}
	if !slices.Contains(available, vk.ValidationLayerName) {
		return nil, &UnsupportedLayerError{Layer: vk.ValidationLayerName}
	}

	return []string{vk.ValidationLayerName}, nil
}
