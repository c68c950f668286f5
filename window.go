package vkcontext

// Window is the capability the windowing collaborator must expose: the
// instance extensions required to create a presentable surface on it.
// The window is consulted once during negotiation and never retained.
//
// With GLFW this is a one-method wrapper:
//
//	type glfwWindow struct{ *glfw.Window }
//
//	func (w glfwWindow) RequiredInstanceExtensions() []string {
//	    return w.Window.GetRequiredInstanceExtensions()
//	}
type Window interface {
	RequiredInstanceExtensions() []string
}
