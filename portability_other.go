//go:build !darwin

package vkcontext

const portabilityPlatform = false
