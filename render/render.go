// Package render opens a window, uploads one indexed shape and draws it
// every frame until the window is asked to close.
package render

import (
	"errors"
	"fmt"
	"io"
	"log"

	"golang.org/x/image/math/f32"

	"dasa.cc/physsim/glw"
	"dasa.cc/physsim/nui"
	"dasa.cc/physsim/shape"
)

// Setup failures. Errors returned by Run wrap one of these or are a
// *glw.CompileError, *glw.LinkError or shape validation error.
var (
	ErrInit         = errors.New("failed to initialize windowing")
	ErrCreateWindow = errors.New("failed to open window")
	ErrLoad         = errors.New("failed to load GL functions")
)

const vsrc = `#version 330 core
layout (location = 0) in vec3 aPos;
void main()
{
	gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

const fsrc = `#version 330 core
out vec4 FragColor;
void main()
{
	FragColor = vec4(1.0f, 0.5f, 0.2f, 1.0f);
}
`

// Config fixes everything Run draws. It is not read from flags or files.
type Config struct {
	Title         string
	Width, Height int
	Major, Minor  int

	Background f32.Vec4
	Vert       glw.VertSrc
	Frag       glw.FragSrc
	Shape      shape.Shape

	// Logger receives context information; nil discards it.
	Logger *log.Logger
}

// DefaultConfig returns the 800x600 OpenGL 3.3 window drawing Triforce(1).
func DefaultConfig() Config {
	return Config{
		Title:      "Physics_SIM",
		Width:      800,
		Height:     600,
		Major:      3,
		Minor:      3,
		Background: f32.Vec4{0.2, 0.3, 0.3, 1.0},
		Vert:       vsrc,
		Frag:       fsrc,
		Shape:      shape.Triforce(1),
	}
}

// Run performs setup, draws frames until the window should close, then
// releases every GL object and terminates sys. Any setup failure releases
// what was created so far and returns without entering the loop.
func Run(sys nui.System, load glw.Loader, cfg Config) error {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	if err := cfg.Shape.Validate(); err != nil {
		return err
	}

	if err := sys.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrInit, err)
	}
	defer sys.Terminate()

	window, err := sys.CreateWindow(nui.Options{
		Title: cfg.Title, Width: cfg.Width, Height: cfg.Height,
		Major: cfg.Major, Minor: cfg.Minor,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCreateWindow, err)
	}
	window.MakeContextCurrent()

	ctx, err := load()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoad, err)
	}
	glw.With(ctx)
	defer glw.With(nil)
	logger.Printf("OpenGL %s (%s)", ctx.GetString(glw.VERSION), ctx.GetString(glw.RENDERER))

	w, h := window.FramebufferSize()
	if w <= 0 || h <= 0 {
		w, h = cfg.Width, cfg.Height
	}
	ctx.Viewport(0, 0, w, h)
	window.SetFramebufferSizeCallback(func(width, height int) { ctx.Viewport(0, 0, width, height) })
	defer window.SetFramebufferSizeCallback(nil)

	var prg glw.Program
	if err := prg.Build(cfg.Vert, cfg.Frag); err != nil {
		return err
	}
	defer prg.Delete()

	var vert glw.VertexElement
	vert.Create(glw.STATIC_DRAW, cfg.Shape.Floats(), cfg.Shape.Indices)
	defer vert.Delete()
	vert.StepSize(3, 0, 0)
	vert.Unbind()

	bg := cfg.Background
	for !window.ShouldClose() {
		if window.Pressed(nui.KeyEscape) {
			window.SetShouldClose(true)
		}

		ctx.ClearColor(bg[0], bg[1], bg[2], bg[3])
		ctx.Clear(glw.COLOR_BUFFER_BIT)

		prg.Use()
		vert.Bind()
		vert.Draw(glw.TRIANGLES)

		sys.PollEvents()
		window.SwapBuffers()
	}

	return nil
}

// Main runs Run and returns the process exit status, printing the
// failure to logger if any.
func Main(sys nui.System, load glw.Loader, cfg Config, logger *log.Logger) int {
	if cfg.Logger == nil {
		cfg.Logger = logger
	}
	if err := Run(sys, load, cfg); err != nil {
		logger.Println(err)
		return 1
	}
	return 0
}
