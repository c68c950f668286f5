package vkcontext

import (
	"testing"

	"github.com/gogpu/vkcontext/vk"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.diagnostics {
		t.Error("diagnostics enabled by default")
	}
	if cfg.apiVersion != vk.APIVersion10 {
		t.Errorf("apiVersion = %v, want %v", cfg.apiVersion, vk.APIVersion10)
	}
	if cfg.entry != nil {
		t.Error("entry set by default")
	}
	if cfg.failFast == nil {
		t.Error("failFast not set by default")
	}
}

func TestWithDiagnostics(t *testing.T) {
	cfg := defaultConfig()
	WithDiagnostics(true)(&cfg)
	if !cfg.diagnostics {
		t.Error("WithDiagnostics(true) did not enable diagnostics")
	}
	WithDiagnostics(false)(&cfg)
	if cfg.diagnostics {
		t.Error("WithDiagnostics(false) did not disable diagnostics")
	}
}

func TestWithFailFastNilKeepsDefault(t *testing.T) {
	cfg := defaultConfig()
	WithFailFast(nil)(&cfg)
	if cfg.failFast == nil {
		t.Error("WithFailFast(nil) cleared the default abort")
	}
}

func TestWithEntry(t *testing.T) {
	cfg := defaultConfig()
	entry := newFakeEntry()
	WithEntry(entry)(&cfg)
	if cfg.entry != Entry(entry) {
		t.Error("WithEntry did not install the entry")
	}
}
