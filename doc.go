// Package vkcontext bootstraps a Vulkan rendering context.
//
// # Overview
//
// vkcontext is a Pure Go (cgo-free) bootstrap for the instance-level half of
// Vulkan initialization: it loads the platform's Vulkan loader, negotiates
// the instance extensions and validation layers to request, creates the
// VkInstance, and optionally installs a debug-utils messenger for
// development builds. It is designed as the first stage of a GoGPU-style
// renderer; device selection, swapchains, and pipelines belong to the
// packages that consume the created instance.
//
// # Quick Start
//
//	import "github.com/gogpu/vkcontext"
//
//	// The windowing system supplies the surface extensions it needs.
//	ctx, err := vkcontext.New(win, vkcontext.WithDiagnostics(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctx.Destroy()
//
//	// ctx.Instance() is ready for device enumeration.
//
// # Initialization sequence
//
// New runs strictly in order: load the entry points, negotiate extensions
// (window requirements, debug-utils when diagnostics are on, the portability
// pair on macOS), verify the Khronos validation layer when diagnostics are
// on, create the instance, then attach the messenger. Each step consumes the
// previous step's output; the first failure surfaces immediately and no
// partially-acquired resource is cleaned up, on the expectation that a
// failed bootstrap terminates the process.
//
// # Diagnostics
//
// With WithDiagnostics(true) the VK_LAYER_KHRONOS_validation layer and the
// VK_EXT_debug_utils extension are enabled and every diagnostic event is
// routed by severity: warnings and informational events go to the package
// logger (see SetLogger), while error-severity events abort the process.
// Aborting on validation errors is a deliberate fail-loud development
// policy; override it with WithFailFast.
package vkcontext
