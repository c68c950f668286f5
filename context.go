package vkcontext

import "github.com/gogpu/vkcontext/vk"

// Context owns a created Vulkan instance and, when diagnostics are enabled,
// the debug-utils messenger attached to it. The messenger handle is non-zero
// exactly when diagnostics were requested and layer negotiation succeeded.
//
// A Context is created once by New and torn down once by Destroy. The zero
// value is not usable.
type Context struct {
	entry     Entry
	instance  vk.Instance
	messenger vk.DebugUtilsMessengerEXT

	diagnostics bool
	apiVersion  vk.Version
	destroyed   bool
}

// New builds a Context against the given window. The steps run strictly in
// sequence, each consuming the previous step's output: entry loading,
// extension negotiation, layer negotiation, instance creation, and messenger
// install when diagnostics are on.
//
// The window is consulted once for its required instance extensions and not
// retained. The first failing step is returned as one of LoaderError,
// UnsupportedLayerError, InstanceCreationError, or DiagnosticsInstallError;
// New performs no cleanup of resources acquired before the failure, since a
// failed bootstrap is expected to end the process.
func New(win Window, opts ...Option) (*Context, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	entry := cfg.entry
	if entry == nil {
		loaded, err := vk.Load()
		if err != nil {
			return nil, &LoaderError{Err: err}
		}
		entry = loaded
	}

	loader := entry.Version()
	Logger().Info("vulkan loader ready", "version", loader.String())

	extensions, flags := negotiateExtensions(
		win.RequiredInstanceExtensions(),
		cfg.diagnostics,
		portabilityRequired(portabilityPlatform, loader),
	)

	layers, err := negotiateLayers(cfg.diagnostics, entry)
	if err != nil {
		return nil, err
	}

	instance, err := createInstance(entry, &cfg, extensions, layers, flags)
	if err != nil {
		return nil, err
	}
	Logger().Debug("instance created",
		"extensions", extensions,
		"layers", layers,
		"api", cfg.apiVersion.String(),
	)

	ctx := &Context{
		entry:       entry,
		instance:    instance,
		diagnostics: cfg.diagnostics,
		apiVersion:  cfg.apiVersion,
	}

	if cfg.diagnostics {
		router := &diagnosticsRouter{abort: cfg.failFast}
		messenger, err := installMessenger(entry, instance, router)
		if err != nil {
			return nil, err
		}
		ctx.messenger = messenger
	}

	return ctx, nil
}

// Instance returns the created instance handle for device enumeration and
// surface creation.
func (c *Context) Instance() vk.Instance { return c.instance }

// Messenger returns the installed debug-utils messenger handle, or
// vk.NullMessenger when diagnostics are disabled.
func (c *Context) Messenger() vk.DebugUtilsMessengerEXT { return c.messenger }

// Diagnostics reports whether the context was built with diagnostics.
func (c *Context) Diagnostics() bool { return c.diagnostics }

// APIVersion returns the API version the application targeted at creation.
func (c *Context) APIVersion() vk.Version { return c.apiVersion }

// Destroy tears the context down in the mandatory order: the messenger
// first, then the instance. Destroying the instance while its messenger is
// alive is undefined behavior in the driver.
//
// Destroy is idempotent as a hardening measure: repeat calls are no-ops.
// Using any other Context method after Destroy remains a caller contract
// violation.
func (c *Context) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true

	if c.messenger != vk.NullMessenger {
		c.entry.DestroyDebugMessenger(c.instance, c.messenger)
		c.messenger = vk.NullMessenger
	}
	c.entry.DestroyInstance(c.instance)
	c.instance = vk.NullInstance
}
