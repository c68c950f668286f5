package vkcontext

import (
	"errors"

	"github.com/gogpu/vkcontext/vk"
)

// createInstance assembles the application descriptor and the creation
// descriptor from the negotiated extension list, layer list, and platform
// flags, and invokes instance creation. This is the single point where all
// negotiation results are consumed together; any failure here is fatal to
// context construction, with no retry and no partial-extension fallback.
func createInstance(entry Entry, cfg *config, extensions, layers []string, flags vk.InstanceCreateFlags) (vk.Instance, error) {
	inst, err := entry.CreateInstance(vk.InstanceCreateOptions{
		AppName:       cfg.appName,
		AppVersion:    cfg.appVersion,
		EngineName:    cfg.engineName,
		EngineVersion: cfg.engineVersion,
		APIVersion:    cfg.apiVersion,
		Extensions:    extensions,
		Layers:        layers,
		Flags:         flags,
	})
	if err != nil {
		var result vk.Result
		errors.As(err, &result)
		return vk.NullInstance, &InstanceCreationError{Result: result, Err: err}
	}
	return inst, nil
}
