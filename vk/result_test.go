package vk

import (
	"errors"
	"fmt"
	"testing"
)

func TestResultString(t *testing.T) {
	tests := []struct {
		r    Result
		want string
	}{
		{Success, "VK_SUCCESS"},
		{ErrorIncompatibleDriver, "VK_ERROR_INCOMPATIBLE_DRIVER"},
		{ErrorLayerNotPresent, "VK_ERROR_LAYER_NOT_PRESENT"},
		{Result(-1000), "VkResult(-1000)"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("Result(%d).String() = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestResultAsError(t *testing.T) {
	err := fmt.Errorf("creating instance: %w", ErrorOutOfHostMemory)

	if !errors.Is(err, ErrorOutOfHostMemory) {
		t.Error("errors.Is failed to match wrapped Result")
	}
	var r Result
	if !errors.As(err, &r) || r != ErrorOutOfHostMemory {
		t.Errorf("errors.As gave %v, want %v", r, ErrorOutOfHostMemory)
	}
}
