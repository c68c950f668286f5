package vk

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Entry is the resolved base dispatch table: the handful of global commands
// the bootstrap needs, bound to the platform's Vulkan loader.
//
// Load is the only constructor. An Entry is safe to share once loaded; its
// function pointers never change afterwards.
type Entry struct {
	lib uintptr

	getInstanceProcAddr              func(Instance, *byte) uintptr
	enumerateInstanceVersion         func(*uint32) Result // nil on Vulkan 1.0 loaders
	enumerateInstanceLayerProperties func(*uint32, *LayerProperties) Result
	createInstance                   func(*InstanceCreateInfo, unsafe.Pointer, *Instance) Result
	destroyInstance                  func(Instance, unsafe.Pointer)
}

// Load opens the platform's Vulkan loader and resolves the global entry
// points. It fails if no loader library can be found or a required symbol is
// missing. The library handle is held for the life of the process; there is
// no Unload.
func Load() (*Entry, error) {
	lib, err := openLibrary()
	if err != nil {
		return nil, err
	}

	e := &Entry{lib: lib}
	for _, cmd := range []struct {
		fptr any
		name string
	}{
		{&e.getInstanceProcAddr, "vkGetInstanceProcAddr"},
		{&e.enumerateInstanceLayerProperties, "vkEnumerateInstanceLayerProperties"},
		{&e.createInstance, "vkCreateInstance"},
		{&e.destroyInstance, "vkDestroyInstance"},
	} {
		addr, err := lookupSymbol(lib, cmd.name)
		if err != nil {
			return nil, fmt.Errorf("vk: resolving %s: %w", cmd.name, err)
		}
		purego.RegisterFunc(cmd.fptr, addr)
	}

	// Optional: absent from 1.0-era loaders.
	if addr, err := lookupSymbol(lib, "vkEnumerateInstanceVersion"); err == nil {
		purego.RegisterFunc(&e.enumerateInstanceVersion, addr)
	}

	return e, nil
}

// Version reports the instance-level API version the loader supports.
// Loaders predating vkEnumerateInstanceVersion are Vulkan 1.0.
func (e *Entry) Version() Version {
	if e.enumerateInstanceVersion == nil {
		return APIVersion10
	}
	var raw uint32
	if r := e.enumerateInstanceVersion(&raw); r != Success {
		return APIVersion10
	}
	return Version(raw)
}

// AvailableLayers returns the names of the instance layers installed on the
// running system, using the usual count-then-fill enumeration.
func (e *Entry) AvailableLayers() ([]string, error) {
	var count uint32
	if r := e.enumerateInstanceLayerProperties(&count, nil); r != Success {
		return nil, fmt.Errorf("vk: counting instance layers: %w", r)
	}
	if count == 0 {
		return nil, nil
	}
	props := make([]LayerProperties, count)
	r := e.enumerateInstanceLayerProperties(&count, &props[0])
	if r != Success && r != Incomplete {
		return nil, fmt.Errorf("vk: enumerating instance layers: %w", r)
	}
	names := make([]string, 0, count)
	for i := range props[:count] {
		names = append(names, gostringBytes(props[i].LayerName[:]))
	}
	return names, nil
}

// InstanceCreateOptions collects everything vkCreateInstance consumes.
type InstanceCreateOptions struct {
	AppName       string
	AppVersion    Version
	EngineName    string
	EngineVersion Version
	APIVersion    Version

	Extensions []string
	Layers     []string
	Flags      InstanceCreateFlags
}

// CreateInstance invokes vkCreateInstance with the given options. The name
// strings are marshalled into owned NUL-terminated storage that brackets
// exactly this call. On rejection the returned error is the raw Result.
func (e *Entry) CreateInstance(opts InstanceCreateOptions) (Instance, error) {
	appName := cstr(opts.AppName)
	engineName := cstr(opts.EngineName)
	extensions := newCStrArray(opts.Extensions)
	layers := newCStrArray(opts.Layers)

	app := ApplicationInfo{
		SType:              StructureTypeApplicationInfo,
		PApplicationName:   &appName[0],
		ApplicationVersion: uint32(opts.AppVersion),
		PEngineName:        &engineName[0],
		EngineVersion:      uint32(opts.EngineVersion),
		APIVersion:         uint32(opts.APIVersion),
	}
	info := InstanceCreateInfo{
		SType:                   StructureTypeInstanceCreateInfo,
		Flags:                   opts.Flags,
		PApplicationInfo:        &app,
		EnabledLayerCount:       uint32(len(opts.Layers)),
		PpEnabledLayerNames:     layers.ptr(),
		EnabledExtensionCount:   uint32(len(opts.Extensions)),
		PpEnabledExtensionNames: extensions.ptr(),
	}

	var inst Instance
	r := e.createInstance(&info, nil, &inst)
	runtime.KeepAlive(appName)
	runtime.KeepAlive(engineName)
	runtime.KeepAlive(extensions)
	runtime.KeepAlive(layers)
	if r != Success {
		return NullInstance, r
	}
	return inst, nil
}

// DestroyInstance destroys a created instance. Handles attached to the
// instance (messengers included) must already be destroyed.
func (e *Entry) DestroyInstance(inst Instance) {
	e.destroyInstance(inst, nil)
}

// instanceProcAddr resolves an instance-level command, failing when the
// command's extension was not enabled at instance creation.
func (e *Entry) instanceProcAddr(inst Instance, name string) (uintptr, error) {
	b := cstr(name)
	addr := e.getInstanceProcAddr(inst, &b[0])
	runtime.KeepAlive(b)
	if addr == 0 {
		return 0, fmt.Errorf("vk: instance command %s not available", name)
	}
	return addr, nil
}
