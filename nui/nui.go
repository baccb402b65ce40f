// Package nui aims to be unremarkable in aiding windowing.
//
// A System owns the windowing subsystem and the event queue; a Window owns
// one surface and its GL context. Implementations must only be used from
// the thread that called Init.
package nui

import "fmt"

// Key is a keyboard key queried with Window.Pressed.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	default:
		return fmt.Sprintf("Key(%d)", int(k))
	}
}

// Options describe the window and context to create.
type Options struct {
	Title         string
	Width, Height int

	// Major and Minor request a core profile context version.
	Major, Minor int
}

// System is the windowing subsystem.
type System interface {
	Init() error
	CreateWindow(opts Options) (Window, error)

	// PollEvents processes pending events, running any registered callbacks.
	PollEvents()

	// Terminate destroys remaining windows and releases the subsystem.
	Terminate()
}

// Window is a surface with an attached GL context.
type Window interface {
	MakeContextCurrent()

	ShouldClose() bool
	SetShouldClose(bool)

	// Pressed reports whether k was down as of the last PollEvents.
	Pressed(k Key) bool

	FramebufferSize() (width, height int)

	// SetFramebufferSizeCallback replaces the func called with the new
	// framebuffer size whenever the window is resized.
	SetFramebufferSizeCallback(fn func(width, height int))

	SwapBuffers()
}
