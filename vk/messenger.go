package vk

import (
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// DebugCallback receives one diagnostic event from the driver. It may be
// invoked from a thread the driver controls, so implementations must be
// reentrant-safe. The return value is handed back to the driver; return
// False to let the triggering call proceed.
type DebugCallback func(severity DebugUtilsMessageSeverityFlagsEXT, kind DebugUtilsMessageTypeFlagsEXT, message string) Bool32

// callbackRegistry maps the opaque user-data key passed through the C ABI
// back to the registered Go callback. One process-wide trampoline serves
// every messenger; the key recovers the right callback.
type callbackRegistry struct {
	mu          sync.Mutex
	nextKey     uintptr
	byKey       map[uintptr]DebugCallback
	byMessenger map[DebugUtilsMessengerEXT]uintptr
}

var callbacks = callbackRegistry{
	byKey:       make(map[uintptr]DebugCallback),
	byMessenger: make(map[DebugUtilsMessengerEXT]uintptr),
}

func (r *callbackRegistry) register(cb DebugCallback) uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextKey++
	r.byKey[r.nextKey] = cb
	return r.nextKey
}

func (r *callbackRegistry) bind(m DebugUtilsMessengerEXT, key uintptr) {
	r.mu.Lock()
	r.byMessenger[m] = key
	r.mu.Unlock()
}

func (r *callbackRegistry) lookup(key uintptr) DebugCallback {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byKey[key]
}

func (r *callbackRegistry) release(key uintptr) {
	r.mu.Lock()
	delete(r.byKey, key)
	r.mu.Unlock()
}

func (r *callbackRegistry) releaseMessenger(m DebugUtilsMessengerEXT) {
	r.mu.Lock()
	if key, ok := r.byMessenger[m]; ok {
		delete(r.byMessenger, m)
		delete(r.byKey, key)
	}
	r.mu.Unlock()
}

// debugTrampoline is the single C-callable entry the driver invokes for
// every messenger. Created once; purego callbacks cannot be released.
var debugTrampoline = sync.OnceValue(func() uintptr {
	return purego.NewCallback(func(severity, kinds, data, userData uintptr) uintptr {
		cb := callbacks.lookup(userData)
		if cb == nil {
			return uintptr(False)
		}
		var message string
		if d := (*DebugUtilsMessengerCallbackDataEXT)(unsafe.Pointer(data)); d != nil {
			message = gostring(d.PMessage)
		}
		return uintptr(cb(
			DebugUtilsMessageSeverityFlagsEXT(severity),
			DebugUtilsMessageTypeFlagsEXT(kinds),
			message,
		))
	})
})

// CreateDebugMessenger installs cb as a debug-utils messenger on inst,
// selecting every severity and every message classification. The instance
// must have been created with the VK_EXT_debug_utils extension enabled.
func (e *Entry) CreateDebugMessenger(inst Instance, cb DebugCallback) (DebugUtilsMessengerEXT, error) {
	addr, err := e.instanceProcAddr(inst, "vkCreateDebugUtilsMessengerEXT")
	if err != nil {
		return NullMessenger, err
	}
	var create func(Instance, *DebugUtilsMessengerCreateInfoEXT, unsafe.Pointer, *DebugUtilsMessengerEXT) Result
	purego.RegisterFunc(&create, addr)

	key := callbacks.register(cb)
	info := DebugUtilsMessengerCreateInfoEXT{
		SType:           StructureTypeDebugUtilsMessengerCreateInfoEXT,
		MessageSeverity: DebugUtilsMessageSeverityAll,
		MessageType:     DebugUtilsMessageTypeAll,
		PfnUserCallback: debugTrampoline(),
		PUserData:       key,
	}

	var messenger DebugUtilsMessengerEXT
	r := create(inst, &info, nil, &messenger)
	runtime.KeepAlive(&info)
	if r != Success {
		callbacks.release(key)
		return NullMessenger, r
	}
	callbacks.bind(messenger, key)
	return messenger, nil
}

// DestroyDebugMessenger removes an installed messenger. It must be called
// before the owning instance is destroyed.
func (e *Entry) DestroyDebugMessenger(inst Instance, messenger DebugUtilsMessengerEXT) {
	addr, err := e.instanceProcAddr(inst, "vkDestroyDebugUtilsMessengerEXT")
	if err != nil {
		// Creation succeeded through the same lookup, so this is unreachable
		// short of driver unload; nothing sensible to do but drop the entry.
		callbacks.releaseMessenger(messenger)
		return
	}
	var destroy func(Instance, DebugUtilsMessengerEXT, unsafe.Pointer)
	purego.RegisterFunc(&destroy, addr)
	destroy(inst, messenger, nil)
	callbacks.releaseMessenger(messenger)
}
