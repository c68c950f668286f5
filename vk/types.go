package vk

import (
	"strings"
	"unsafe"
)

// Instance is a dispatchable handle to a created VkInstance.
type Instance uintptr

// NullInstance is the zero instance handle.
const NullInstance Instance = 0

// DebugUtilsMessengerEXT is a non-dispatchable handle to an installed
// debug-utils messenger. Non-dispatchable handles are 64-bit on every
// platform.
type DebugUtilsMessengerEXT uint64

// NullMessenger is the zero messenger handle.
const NullMessenger DebugUtilsMessengerEXT = 0

// Bool32 is the Vulkan 32-bit boolean.
type Bool32 uint32

const (
	False Bool32 = 0
	True  Bool32 = 1
)

// StructureType identifies the concrete type of a Vulkan structure chain
// element (VkStructureType).
type StructureType uint32

const (
	StructureTypeApplicationInfo                    StructureType = 0
	StructureTypeInstanceCreateInfo                 StructureType = 1
	StructureTypeDebugUtilsMessengerCallbackDataEXT StructureType = 1000128003
	StructureTypeDebugUtilsMessengerCreateInfoEXT   StructureType = 1000128004
)

// InstanceCreateFlags is the VkInstanceCreateFlags bitmask.
type InstanceCreateFlags uint32

// InstanceCreateEnumeratePortabilityBit requests enumeration of
// non-conformant (portability subset) implementations, required on loaders
// that hide them by default.
const InstanceCreateEnumeratePortabilityBit InstanceCreateFlags = 0x00000001

// Instance extension and layer names the bootstrap negotiates.
const (
	ExtDebugUtilsName                   = "VK_EXT_debug_utils"
	KhrGetPhysicalDeviceProperties2Name = "VK_KHR_get_physical_device_properties2"
	KhrPortabilityEnumerationName       = "VK_KHR_portability_enumeration"
	ValidationLayerName                 = "VK_LAYER_KHRONOS_validation"
)

// DebugUtilsMessageSeverityFlagsEXT classifies how serious a diagnostic
// event is. The bit values are ordered: verbose < info < warning < error,
// so numeric comparison between single bits is meaningful.
type DebugUtilsMessageSeverityFlagsEXT uint32

const (
	DebugUtilsMessageSeverityVerboseBit DebugUtilsMessageSeverityFlagsEXT = 0x00000001
	DebugUtilsMessageSeverityInfoBit    DebugUtilsMessageSeverityFlagsEXT = 0x00000010
	DebugUtilsMessageSeverityWarningBit DebugUtilsMessageSeverityFlagsEXT = 0x00000100
	DebugUtilsMessageSeverityErrorBit   DebugUtilsMessageSeverityFlagsEXT = 0x00001000

	// DebugUtilsMessageSeverityAll selects every severity bit.
	DebugUtilsMessageSeverityAll = DebugUtilsMessageSeverityVerboseBit |
		DebugUtilsMessageSeverityInfoBit |
		DebugUtilsMessageSeverityWarningBit |
		DebugUtilsMessageSeverityErrorBit
)

// String names the highest-known severity bits present, pipe-separated.
func (s DebugUtilsMessageSeverityFlagsEXT) String() string {
	var parts []string
	if s&DebugUtilsMessageSeverityVerboseBit != 0 {
		parts = append(parts, "Verbose")
	}
	if s&DebugUtilsMessageSeverityInfoBit != 0 {
		parts = append(parts, "Info")
	}
	if s&DebugUtilsMessageSeverityWarningBit != 0 {
		parts = append(parts, "Warning")
	}
	if s&DebugUtilsMessageSeverityErrorBit != 0 {
		parts = append(parts, "Error")
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "|")
}

// DebugUtilsMessageTypeFlagsEXT classifies what a diagnostic event is about.
type DebugUtilsMessageTypeFlagsEXT uint32

const (
	DebugUtilsMessageTypeGeneralBit     DebugUtilsMessageTypeFlagsEXT = 0x00000001
	DebugUtilsMessageTypeValidationBit  DebugUtilsMessageTypeFlagsEXT = 0x00000002
	DebugUtilsMessageTypePerformanceBit DebugUtilsMessageTypeFlagsEXT = 0x00000004

	// DebugUtilsMessageTypeAll selects every message classification.
	DebugUtilsMessageTypeAll = DebugUtilsMessageTypeGeneralBit |
		DebugUtilsMessageTypeValidationBit |
		DebugUtilsMessageTypePerformanceBit
)

func (t DebugUtilsMessageTypeFlagsEXT) String() string {
	var parts []string
	if t&DebugUtilsMessageTypeGeneralBit != 0 {
		parts = append(parts, "General")
	}
	if t&DebugUtilsMessageTypeValidationBit != 0 {
		parts = append(parts, "Validation")
	}
	if t&DebugUtilsMessageTypePerformanceBit != 0 {
		parts = append(parts, "Performance")
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "|")
}

// C ABI mirrors. Field order and types follow vulkan_core.h; on 64-bit
// targets Go inserts the same padding C does for these layouts.

// ApplicationInfo mirrors VkApplicationInfo.
type ApplicationInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	PApplicationName   *byte
	ApplicationVersion uint32
	PEngineName        *byte
	EngineVersion      uint32
	APIVersion         uint32
}

// InstanceCreateInfo mirrors VkInstanceCreateInfo.
type InstanceCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   InstanceCreateFlags
	PApplicationInfo        *ApplicationInfo
	EnabledLayerCount       uint32
	PpEnabledLayerNames     **byte
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames **byte
}

// maxLayerNameSize and maxDescriptionSize are VK_MAX_EXTENSION_NAME_SIZE and
// VK_MAX_DESCRIPTION_SIZE.
const (
	maxLayerNameSize   = 256
	maxDescriptionSize = 256
)

// LayerProperties mirrors VkLayerProperties.
type LayerProperties struct {
	LayerName             [maxLayerNameSize]byte
	SpecVersion           uint32
	ImplementationVersion uint32
	Description           [maxDescriptionSize]byte
}

// DebugUtilsMessengerCreateInfoEXT mirrors VkDebugUtilsMessengerCreateInfoEXT.
// PUserData is declared uintptr rather than unsafe.Pointer because the
// bootstrap stores a callback-registry key there, not a Go pointer.
type DebugUtilsMessengerCreateInfoEXT struct {
	SType           StructureType
	PNext           unsafe.Pointer
	Flags           uint32
	MessageSeverity DebugUtilsMessageSeverityFlagsEXT
	MessageType     DebugUtilsMessageTypeFlagsEXT
	PfnUserCallback uintptr
	PUserData       uintptr
}

// DebugUtilsMessengerCallbackDataEXT mirrors
// VkDebugUtilsMessengerCallbackDataEXT. Only the message fields are read;
// the label and object arrays are carried for layout fidelity.
type DebugUtilsMessengerCallbackDataEXT struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Flags            uint32
	PMessageIDName   *byte
	MessageIDNumber  int32
	PMessage         *byte
	QueueLabelCount  uint32
	PQueueLabels     unsafe.Pointer
	CmdBufLabelCount uint32
	PCmdBufLabels    unsafe.Pointer
	ObjectCount      uint32
	PObjects         unsafe.Pointer
}
