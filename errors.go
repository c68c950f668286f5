package vkcontext

import (
	"github.com/gogpu/vkcontext/vk"
)

// LoaderError reports that the Vulkan runtime could not be loaded: the
// shared library was not found or a required entry point is missing.
type LoaderError struct {
	Err error
}

func (e *LoaderError) Error() string {
	return "vkcontext: loading vulkan runtime: " + e.Err.Error()
}

func (e *LoaderError) Unwrap() error { return e.Err }

// UnsupportedLayerError reports that diagnostics were requested but the
// validation layer is not installed on this system. It is returned before
// any instance creation is attempted.
type UnsupportedLayerError struct {
	Layer string
}

func (e *UnsupportedLayerError) Error() string {
	return "vkcontext: layer " + e.Layer + " requested but not present on this system"
}

// InstanceCreationError reports that the driver rejected the instance
// creation descriptor. Result carries the driver's rejection code.
type InstanceCreationError struct {
	Result vk.Result
	Err    error
}

func (e *InstanceCreationError) Error() string {
	return "vkcontext: creating instance: " + e.Err.Error()
}

func (e *InstanceCreationError) Unwrap() error { return e.Err }

// DiagnosticsInstallError reports that attaching the debug-utils messenger
// failed after the instance itself was created successfully.
type DiagnosticsInstallError struct {
	Result vk.Result
	Err    error
}

func (e *DiagnosticsInstallError) Error() string {
	return "vkcontext: installing diagnostics messenger: " + e.Err.Error()
}

func (e *DiagnosticsInstallError) Unwrap() error { return e.Err }
