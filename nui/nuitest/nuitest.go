// Package nuitest provides a scripted nui.System for tests.
package nuitest

import "dasa.cc/physsim/nui"

// System is a fake nui.System that hands out a single Window.
type System struct {
	InitErr   error
	CreateErr error

	Window *Window
	Opts   nui.Options

	Inits, Creates, Polls, Terminates int

	// OnPoll runs at the end of each PollEvents with the number of polls so far.
	OnPoll func(polls int)

	// OnTerminate runs when Terminate is called.
	OnTerminate func()
}

// New returns a System whose window has a framebuffer of width by height.
func New(width, height int) *System {
	return &System{Window: &Window{Width: width, Height: height, Keys: make(map[nui.Key]bool)}}
}

func (s *System) Init() error {
	s.Inits++
	return s.InitErr
}

func (s *System) CreateWindow(opts nui.Options) (nui.Window, error) {
	s.Creates++
	s.Opts = opts
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}
	return s.Window, nil
}

func (s *System) PollEvents() {
	s.Polls++
	if s.OnPoll != nil {
		s.OnPoll(s.Polls)
	}
}

func (s *System) Terminate() {
	s.Terminates++
	if s.OnTerminate != nil {
		s.OnTerminate()
	}
}

// Window is a fake nui.Window.
type Window struct {
	Width, Height int
	Keys          map[nui.Key]bool

	Current bool
	Close   bool

	// Checks counts calls to ShouldClose; Swaps counts calls to SwapBuffers.
	Checks, Swaps int

	resize func(width, height int)
}

func (w *Window) MakeContextCurrent()       { w.Current = true }
func (w *Window) ShouldClose() bool         { w.Checks++; return w.Close }
func (w *Window) SetShouldClose(v bool)     { w.Close = v }
func (w *Window) Pressed(k nui.Key) bool    { return w.Keys[k] }
func (w *Window) SwapBuffers()              { w.Swaps++ }

func (w *Window) FramebufferSize() (width, height int) { return w.Width, w.Height }

func (w *Window) SetFramebufferSizeCallback(fn func(width, height int)) { w.resize = fn }

// Resize changes the framebuffer size and runs the registered callback.
func (w *Window) Resize(width, height int) {
	w.Width, w.Height = width, height
	if w.resize != nil {
		w.resize(width, height)
	}
}
