//go:build darwin

package vkcontext

// MoltenVK is a portability-subset implementation, so recent loaders on
// macOS refuse to enumerate it without the portability pair.
const portabilityPlatform = true
