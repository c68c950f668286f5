// Package vk is a minimal, cgo-free binding to the Vulkan entry points
// needed to bootstrap an instance: loader resolution, layer enumeration,
// instance creation, and the debug-utils messenger.
//
// The package mirrors just the C ABI surface those calls touch. It is not a
// general Vulkan binding; device-level commands belong to the packages that
// consume the created instance.
//
// All calls are synchronous. Name strings handed to the driver are copied
// into NUL-terminated storage that is kept alive for exactly the duration of
// the call that reads them.
package vk
