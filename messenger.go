package vkcontext

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gogpu/vkcontext/vk"
)

// abortProcess is the default fail-fast primitive for error-severity
// diagnostic events: log the reason, then terminate. Error-severity
// validation messages during development indicate API misuse that would be
// undefined behavior on a real driver, so the process stops rather than
// continuing half-broken.
func abortProcess(reason string) {
	Logger().Error("fatal vulkan diagnostic", "reason", reason)
	os.Exit(1)
}

// diagnosticsRouter turns driver diagnostic events into log entries, or into
// a process abort for error severity. The driver may deliver events on its
// own thread; routing only touches the atomically-loaded package logger and
// the immutable abort func, so it is reentrant-safe.
type diagnosticsRouter struct {
	abort func(reason string)
}

// route implements the severity policy: error aborts, warning logs at Warn,
// info logs at Debug, verbose logs at LevelTrace. Non-aborting branches
// return vk.False so the triggering call is never suppressed.
func (r *diagnosticsRouter) route(severity vk.DebugUtilsMessageSeverityFlagsEXT, kind vk.DebugUtilsMessageTypeFlagsEXT, message string) vk.Bool32 {
	switch {
	case severity >= vk.DebugUtilsMessageSeverityErrorBit:
		r.abort(fmt.Sprintf("(%s) %s", kind, message))
	case severity >= vk.DebugUtilsMessageSeverityWarningBit:
		Logger().Warn("vulkan diagnostic", "type", kind.String(), "message", message)
	case severity >= vk.DebugUtilsMessageSeverityInfoBit:
		Logger().Debug("vulkan diagnostic", "type", kind.String(), "message", message)
	default:
		Logger().Log(context.Background(), LevelTrace, "vulkan diagnostic", "type", kind.String(), "message", message)
	}
	return vk.False
}

// installMessenger attaches the router to the created instance. Layer
// negotiation has already verified the validation layer, so reaching this
// point with diagnostics enabled means the debug-utils extension was
// requested at creation.
func installMessenger(entry Entry, inst vk.Instance, router *diagnosticsRouter) (vk.DebugUtilsMessengerEXT, error) {
	messenger, err := entry.CreateDebugMessenger(inst, router.route)
	if err != nil {
		var result vk.Result
		errors.As(err, &result)
		return vk.NullMessenger, &DiagnosticsInstallError{Result: result, Err: err}
	}
	return messenger, nil
}
