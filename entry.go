package vkcontext

import "github.com/gogpu/vkcontext/vk"

// Entry abstracts the loaded Vulkan entry points New drives. vk.Entry is the
// production implementation; tests and embedders can substitute their own
// via WithEntry.
type Entry interface {
	// Version reports the instance-level API version the loader supports.
	Version() vk.Version

	// AvailableLayers lists the instance layers installed on this system.
	AvailableLayers() ([]string, error)

	// CreateInstance invokes instance creation with the negotiated options.
	CreateInstance(opts vk.InstanceCreateOptions) (vk.Instance, error)

	// DestroyInstance destroys a created instance.
	DestroyInstance(inst vk.Instance)

	// CreateDebugMessenger attaches cb to inst for all severities and types.
	CreateDebugMessenger(inst vk.Instance, cb vk.DebugCallback) (vk.DebugUtilsMessengerEXT, error)

	// DestroyDebugMessenger removes an installed messenger; must precede
	// DestroyInstance for the owning instance.
	DestroyDebugMessenger(inst vk.Instance, messenger vk.DebugUtilsMessengerEXT)
}

var _ Entry = (*vk.Entry)(nil)
