// Package desktop implements nui with glfw.
package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"dasa.cc/physsim/nui"
)

var keys = map[nui.Key]glfw.Key{
	nui.KeyEscape: glfw.KeyEscape,
}

// System is the glfw windowing subsystem.
type System struct{}

func (System) Init() error { return glfw.Init() }
func (System) PollEvents() { glfw.PollEvents() }
func (System) Terminate()  { glfw.Terminate() }

// CreateWindow creates a window with a forward compatible core profile context.
func (System) CreateWindow(opts nui.Options) (nui.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, opts.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	w, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	return window{w}, nil
}

type window struct{ *glfw.Window }

func (w window) Pressed(k nui.Key) bool {
	key, ok := keys[k]
	return ok && w.GetKey(key) == glfw.Press
}

func (w window) FramebufferSize() (width, height int) { return w.GetFramebufferSize() }

func (w window) SetFramebufferSizeCallback(fn func(width, height int)) {
	if fn == nil {
		w.Window.SetFramebufferSizeCallback(nil)
		return
	}
	w.Window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) { fn(width, height) })
}
