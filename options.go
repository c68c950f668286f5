package vkcontext

import "github.com/gogpu/vkcontext/vk"

// Option configures a Context during creation.
// Use functional options to customize New's behavior.
//
// Example:
//
//	// Release-style context, no validation.
//	ctx, err := vkcontext.New(win)
//
//	// Development context with the validation layer and messenger.
//	ctx, err := vkcontext.New(win, vkcontext.WithDiagnostics(true))
type Option func(*config)

// config holds optional configuration for Context creation.
type config struct {
	diagnostics bool

	appName       string
	appVersion    vk.Version
	engineName    string
	engineVersion vk.Version
	apiVersion    vk.Version

	entry    Entry
	failFast func(reason string)
}

// defaultConfig returns the default creation options: diagnostics off, the
// package's own application identity, and the baseline 1.0 API.
func defaultConfig() config {
	return config{
		appName:       "vkcontext application",
		appVersion:    vk.MakeVersion(1, 0, 0),
		engineName:    "vkcontext",
		engineVersion: vk.MakeVersion(1, 0, 0),
		apiVersion:    vk.APIVersion10,
		failFast:      abortProcess,
	}
}

// WithDiagnostics enables or disables the validation layer and the
// debug-utils messenger. Diagnostics are off by default; development builds
// typically pass true. This is an explicit runtime value, not a build tag,
// so the same binary can be exercised both ways.
func WithDiagnostics(enabled bool) Option {
	return func(c *config) {
		c.diagnostics = enabled
	}
}

// WithAppName sets the application name reported to the driver.
func WithAppName(name string) Option {
	return func(c *config) {
		c.appName = name
	}
}

// WithAppVersion sets the application version reported to the driver.
func WithAppVersion(major, minor, patch uint32) Option {
	return func(c *config) {
		c.appVersion = vk.MakeVersion(major, minor, patch)
	}
}

// WithEngineName sets the engine name reported to the driver.
func WithEngineName(name string) Option {
	return func(c *config) {
		c.engineName = name
	}
}

// WithEngineVersion sets the engine version reported to the driver.
func WithEngineVersion(major, minor, patch uint32) Option {
	return func(c *config) {
		c.engineVersion = vk.MakeVersion(major, minor, patch)
	}
}

// WithAPIVersion sets the Vulkan API version the application targets.
// The default is Vulkan 1.0.
func WithAPIVersion(v vk.Version) Option {
	return func(c *config) {
		c.apiVersion = v
	}
}

// WithEntry injects a pre-loaded entry table instead of loading the platform
// Vulkan loader. Use this for dependency injection of a custom loader, or to
// substitute a fake in tests.
//
// Example:
//
//	entry, err := vk.Load()
//	// inspect entry.Version(), then:
//	ctx, err := vkcontext.New(win, vkcontext.WithEntry(entry))
func WithEntry(e Entry) Option {
	return func(c *config) {
		c.entry = e
	}
}

// WithFailFast replaces the process-abort primitive invoked for
// error-severity diagnostic events. The default logs the reason and calls
// os.Exit(1). Replacing it is intended for tests and for embedders that
// need orderly shutdown; the handler must not return control to the driver
// expecting rendering to continue meaningfully.
func WithFailFast(f func(reason string)) Option {
	return func(c *config) {
		if f != nil {
			c.failFast = f
		}
	}
}
