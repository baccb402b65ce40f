package render

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strings"
	"testing"

	"golang.org/x/image/math/f32"

	"dasa.cc/physsim/glw"
	"dasa.cc/physsim/glw/glwtest"
	"dasa.cc/physsim/nui"
	"dasa.cc/physsim/nui/nuitest"
	"dasa.cc/physsim/shape"
)

type harness struct {
	sys   *nuitest.System
	ctx   *glwtest.Context
	loads int

	// terminated is len(ctx.Calls) when Terminate ran.
	terminated int
}

func newHarness() *harness {
	h := &harness{sys: nuitest.New(800, 600), ctx: glwtest.New(), terminated: -1}
	h.sys.OnTerminate = func() { h.terminated = len(h.ctx.Calls) }
	return h
}

func (h *harness) load() (glw.Context, error) {
	h.loads++
	return h.ctx, nil
}

// escapeAfter presses escape during the n-th PollEvents.
func (h *harness) escapeAfter(n int) {
	h.sys.OnPoll = func(polls int) {
		if polls == n {
			h.sys.Window.Keys[nui.KeyEscape] = true
		}
	}
}

func (h *harness) released(t *testing.T) {
	t.Helper()
	if live := h.ctx.Live(); len(live) != 0 {
		for _, name := range live {
			t.Errorf("%s %v not released", h.ctx.Kind(name), name)
		}
	}
	for _, name := range h.ctx.Names() {
		if n := h.ctx.Deletes(name); n != 1 {
			t.Errorf("%s %v released %v times", h.ctx.Kind(name), name, n)
		}
	}
	if have, want := h.sys.Terminates, 1; have != want {
		t.Errorf("Unexpected Terminate calls; have %v, want %v.", have, want)
	}
	if h.terminated != len(h.ctx.Calls) {
		t.Errorf("GL calls made after Terminate; %q", h.ctx.Calls[h.terminated:])
	}
}

func TestRun(t *testing.T) {
	h := newHarness()
	h.escapeAfter(3)

	if err := Run(h.sys, h.load, DefaultConfig()); err != nil {
		t.Fatal(err)
	}

	if have, want := h.sys.Opts, (nui.Options{Title: "Physics_SIM", Width: 800, Height: 600, Major: 3, Minor: 3}); have != want {
		t.Fatalf("Unexpected window options; have %+v, want %+v.", have, want)
	}
	if !h.sys.Window.Current {
		t.Fatal("context never made current")
	}
	if have, want := h.sys.Window.Swaps, 4; have != want {
		t.Fatalf("Unexpected frames; have %v, want %v.", have, want)
	}
	if have, want := h.sys.Window.Checks, 5; have != want {
		t.Fatalf("Unexpected close checks; have %v, want %v.", have, want)
	}
	if have, want := len(h.ctx.Draws), h.sys.Window.Swaps; have != want {
		t.Fatalf("Unexpected draws; have %v, want one per frame %v.", have, want)
	}
	for i, d := range h.ctx.Draws {
		if want := (glwtest.Draw{Mode: glw.TRIANGLES, Count: 9, Type: glw.UNSIGNED_INT}); d != want {
			t.Fatalf("frame %v; have %+v, want %+v", i, d, want)
		}
	}
	if have, want := h.ctx.Index("ClearColor(0.2, 0.3, 0.3, 1)"), h.ctx.Index("Clear(0x4000)"); have == -1 || have > want {
		t.Fatalf("background not cleared; ClearColor at %v, Clear at %v", have, want)
	}

	// attribute 0 is 3 tightly packed floats
	if h.ctx.Index("VertexAttribPointer(0, 3, 0x1406, false, 0, 0)") == -1 {
		t.Fatal("position attribute not configured")
	}
	if have, want := len(h.ctx.Uploads[glw.ARRAY_BUFFER]), 6*3*4; have != want {
		t.Fatalf("Unexpected vertex bytes; have %v, want %v.", have, want)
	}
	if have, want := len(h.ctx.Uploads[glw.ELEMENT_ARRAY_BUFFER]), 9*4; have != want {
		t.Fatalf("Unexpected index bytes; have %v, want %v.", have, want)
	}

	if have, want := h.ctx.Created(glwtest.Buffer), 2; have != want {
		t.Fatalf("Unexpected buffers; have %v, want %v.", have, want)
	}
	if have, want := h.ctx.Created(glwtest.VertexArray), 1; have != want {
		t.Fatalf("Unexpected vertex arrays; have %v, want %v.", have, want)
	}
	if have, want := h.ctx.Created(glwtest.Program), 1; have != want {
		t.Fatalf("Unexpected programs; have %v, want %v.", have, want)
	}

	h.released(t)

	// nothing but shaders is released before the last frame is drawn
	last := h.ctx.Last(fmt.Sprintf("DrawElements(0x%X, 9, 0x%X, 0)", uint32(glw.TRIANGLES), uint32(glw.UNSIGNED_INT)))
	for _, name := range h.ctx.Names() {
		kind := h.ctx.Kind(name)
		if kind == glwtest.Shader {
			continue
		}
		var call string
		switch kind {
		case glwtest.Program:
			call = fmt.Sprintf("DeleteProgram(%v)", name)
		case glwtest.Buffer:
			call = fmt.Sprintf("DeleteBuffer(%v)", name)
		case glwtest.VertexArray:
			call = fmt.Sprintf("DeleteVertexArray(%v)", name)
		}
		if i := h.ctx.Index(call); i < last {
			t.Fatalf("%s at call %v precedes last draw at call %v", call, i, last)
		}
	}
}

func TestEscape(t *testing.T) {
	h := newHarness()
	h.sys.Window.Keys[nui.KeyEscape] = true

	if err := Run(h.sys, h.load, DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	if have, want := h.sys.Window.Swaps, 1; have != want {
		t.Fatalf("Unexpected frames; have %v, want %v.", have, want)
	}
	if have, want := h.sys.Window.Checks, 2; have != want {
		t.Fatalf("Unexpected close checks; have %v, want %v.", have, want)
	}
	h.released(t)
}

func TestResize(t *testing.T) {
	sizes := [][2]int{{1024, 768}, {1, 1}, {300, 1200}, {1920, 1080}}

	h := newHarness()
	h.sys.OnPoll = func(polls int) {
		if polls > len(sizes) {
			h.sys.Window.Keys[nui.KeyEscape] = true
			return
		}
		sz := sizes[polls-1]
		n := len(h.ctx.Viewports)
		h.sys.Window.Resize(sz[0], sz[1])
		if have, want := h.ctx.Viewports[n:], [][4]int{{0, 0, sz[0], sz[1]}}; len(have) != 1 || have[0] != want[0] {
			t.Errorf("resize to %v; have viewports %v, want %v", sz, have, want)
		}
	}

	if err := Run(h.sys, h.load, DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	if have, want := h.ctx.Viewports[0], [4]int{0, 0, 800, 600}; have != want {
		t.Fatalf("Unexpected initial viewport; have %v, want %v.", have, want)
	}
	h.released(t)
}

func TestSetupFailure(t *testing.T) {
	fail := errors.New("unavailable")
	for _, tc := range []struct {
		name       string
		arrange    func(h *harness) glw.Loader
		want       error
		terminates int
	}{
		{
			name:    "init",
			arrange: func(h *harness) glw.Loader { h.sys.InitErr = fail; return h.load },
			want:    ErrInit,
		},
		{
			name:       "window",
			arrange:    func(h *harness) glw.Loader { h.sys.CreateErr = fail; return h.load },
			want:       ErrCreateWindow,
			terminates: 1,
		},
		{
			name: "load",
			arrange: func(h *harness) glw.Loader {
				return func() (glw.Context, error) { h.loads++; return nil, fail }
			},
			want:       ErrLoad,
			terminates: 1,
		},
	} {
		h := newHarness()
		load := tc.arrange(h)

		var out bytes.Buffer
		code := Main(h.sys, load, DefaultConfig(), log.New(&out, "", 0))
		if code == 0 {
			t.Errorf("%s: exit status 0", tc.name)
		}
		if err := Run(h.sys, load, DefaultConfig()); !errors.Is(err, tc.want) || !strings.Contains(err.Error(), fail.Error()) {
			t.Errorf("%s: have %v, want wrapped %v", tc.name, err, tc.want)
		}
		if !strings.Contains(out.String(), tc.want.Error()) {
			t.Errorf("%s: diagnostic %q does not report %q", tc.name, out.String(), tc.want)
		}
		if h.sys.Window.Checks != 0 || h.sys.Window.Swaps != 0 {
			t.Errorf("%s: render loop entered", tc.name)
		}
		if len(h.ctx.Calls) != 0 {
			t.Errorf("%s: GL calls made; %q", tc.name, h.ctx.Calls)
		}
		if have, want := h.sys.Terminates, 2*tc.terminates; have != want {
			t.Errorf("%s: unexpected Terminate calls; have %v, want %v.", tc.name, have, want)
		}
	}
}

func TestBuildFailure(t *testing.T) {
	for _, tc := range []struct {
		name    string
		arrange func(ctx *glwtest.Context)
		check   func(err error) bool
	}{
		{
			name:    "vertex",
			arrange: func(ctx *glwtest.Context) { ctx.CompileFail[glw.VERTEX_SHADER] = "0:3(1): error: syntax error" },
			check: func(err error) bool {
				var cerr *glw.CompileError
				return errors.As(err, &cerr) && cerr.Stage == "vertex" && cerr.Log == "0:3(1): error: syntax error"
			},
		},
		{
			name:    "fragment",
			arrange: func(ctx *glwtest.Context) { ctx.CompileFail[glw.FRAGMENT_SHADER] = "0:5(2): error: `FragColor' undeclared" },
			check: func(err error) bool {
				var cerr *glw.CompileError
				return errors.As(err, &cerr) && cerr.Stage == "fragment"
			},
		},
		{
			name:    "link",
			arrange: func(ctx *glwtest.Context) { ctx.LinkFail = "error: no main function" },
			check: func(err error) bool {
				var lerr *glw.LinkError
				return errors.As(err, &lerr) && lerr.Log == "error: no main function"
			},
		},
	} {
		h := newHarness()
		tc.arrange(h.ctx)

		var out bytes.Buffer
		if code := Main(h.sys, h.load, DefaultConfig(), log.New(&out, "", 0)); code == 0 {
			t.Errorf("%s: exit status 0", tc.name)
		}
		if out.Len() == 0 {
			t.Errorf("%s: no diagnostic printed", tc.name)
		}

		h2 := newHarness()
		tc.arrange(h2.ctx)
		err := Run(h2.sys, h2.load, DefaultConfig())
		if !tc.check(err) {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if h2.sys.Window.Checks != 0 {
			t.Errorf("%s: render loop entered", tc.name)
		}
		if len(h2.ctx.Draws) != 0 {
			t.Errorf("%s: drew after failure", tc.name)
		}
		h2.released(t)
	}
}

func TestInvalidShape(t *testing.T) {
	h := newHarness()
	cfg := DefaultConfig()
	cfg.Shape = shape.Shape{Vertices: make([]f32.Vec3, 5), Indices: cfg.Shape.Indices}

	err := Run(h.sys, h.load, cfg)
	var ierr *shape.IndexError
	if !errors.As(err, &ierr) {
		t.Fatalf("have %v, want *shape.IndexError", err)
	}
	if h.sys.Inits != 0 {
		t.Fatal("windowing initialized for invalid shape")
	}
}

func TestMainStatus(t *testing.T) {
	h := newHarness()
	h.escapeAfter(1)

	var out bytes.Buffer
	if have, want := Main(h.sys, h.load, DefaultConfig(), log.New(&out, "", 0)), 0; have != want {
		t.Fatalf("Unexpected exit status; have %v, want %v.", have, want)
	}
	if !strings.Contains(out.String(), "OpenGL 3.3.0 glwtest") {
		t.Fatalf("context not logged; %q", out.String())
	}
	h.released(t)
}
