package vkcontext

import "github.com/gogpu/vkcontext/vk"

// PortabilityMinVersion is the first loader version that hides
// non-conformant (portability subset) implementations unless the
// portability-enumeration extension is requested.
var PortabilityMinVersion = vk.MakeVersion(1, 3, 126)

// portabilityRequired reports whether the portability extension pair must be
// requested: only on platforms where the rule applies (macOS) and only once
// the loader is recent enough to enforce it.
func portabilityRequired(platform bool, loader vk.Version) bool {
	return platform && loader >= PortabilityMinVersion
}

// negotiateExtensions computes the ordered extension list and creation flags
// to request: the window's requirements first, then debug-utils when
// diagnostics are on, then the portability pair when the platform demands
// it. Nothing is removed and nothing is deduplicated; the window
// collaborator is trusted not to request duplicates.
func negotiateExtensions(required []string, diagnostics, portability bool) ([]string, vk.InstanceCreateFlags) {
	extensions := make([]string, 0, len(required)+3)
	extensions = append(extensions, required...)

	if diagnostics {
		extensions = append(extensions, vk.ExtDebugUtilsName)
	}

	var flags vk.InstanceCreateFlags
	if portability {
		Logger().Info("enabling portability enumeration extensions")
		extensions = append(extensions,
			vk.KhrGetPhysicalDeviceProperties2Name,
			vk.KhrPortabilityEnumerationName,
		)
		flags |= vk.InstanceCreateEnumeratePortabilityBit
	}

	return extensions, flags
}
