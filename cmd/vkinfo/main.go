// Command vkinfo bootstraps a Vulkan context against a hidden GLFW window
// and reports what was negotiated. Useful for checking a machine's loader,
// layers, and portability behavior.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/vkcontext"
	"github.com/gogpu/vkcontext/vk"
)

// glfwWindow adapts a GLFW window to the windowing capability vkcontext
// consumes.
type glfwWindow struct {
	*glfw.Window
}

func (w glfwWindow) RequiredInstanceExtensions() []string {
	return w.Window.GetRequiredInstanceExtensions()
}

func main() {
	var (
		debug   = flag.Bool("debug", false, "enable the validation layer and diagnostics messenger")
		verbose = flag.Bool("v", false, "log at trace level")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = vkcontext.LevelTrace
	}
	vkcontext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	if err := glfw.Init(); err != nil {
		log.Fatalf("initializing glfw: %v", err)
	}
	defer glfw.Terminate()

	if !glfw.VulkanSupported() {
		log.Fatal("glfw reports no usable Vulkan loader")
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Visible, glfw.False)
	win, err := glfw.CreateWindow(64, 64, "vkinfo", nil, nil)
	if err != nil {
		log.Fatalf("creating window: %v", err)
	}
	defer win.Destroy()

	ctx, err := vkcontext.New(glfwWindow{win},
		vkcontext.WithDiagnostics(*debug),
		vkcontext.WithAppName("vkinfo"),
		vkcontext.WithAPIVersion(vk.APIVersion10),
	)
	if err != nil {
		log.Fatalf("bootstrapping vulkan: %v", err)
	}
	defer ctx.Destroy()

	log.Printf("instance created (diagnostics=%v, messenger=%#x)", ctx.Diagnostics(), ctx.Messenger())
}
