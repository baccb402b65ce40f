package glw

import (
	"fmt"
	"runtime"
	"strings"
)

// caller returns first file and line number outside of this package for calling
// goroutine's stack.
func caller() string {
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])

	var (
		frame runtime.Frame
		more  bool
		inpkg = func(s string) bool { return strings.HasPrefix(s, "dasa.cc/physsim/glw.") }
	)
	for frame, more = frames.Next(); more && inpkg(frame.Function); frame, more = frames.Next() {
	}
	return fmt.Sprintf("%s:%v", frame.File, frame.Line)
}

// CompileError reports a shader stage that failed to compile.
type CompileError struct {
	Stage string // "vertex" or "fragment"
	Log   string // info log from the driver
	Site  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %s shader %s\n%s", e.Stage, e.Site, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Log  string
	Site string
}

func (e *LinkError) Error() string { return fmt.Sprintf("link program %s\n%s", e.Site, e.Log) }

func stage(typ Enum) string {
	switch typ {
	case VERTEX_SHADER:
		return "vertex"
	case FRAGMENT_SHADER:
		return "fragment"
	default:
		return fmt.Sprintf("0x%X", uint32(typ))
	}
}

// compile returns a compiled shader of type typ. On failure the shader is
// deleted and a *CompileError carries the info log.
func compile(typ Enum, src string) (uint32, error) {
	shd := ctx.CreateShader(typ)
	ctx.ShaderSource(shd, src)
	ctx.CompileShader(shd)
	if ctx.GetShaderi(shd, COMPILE_STATUS) == 0 {
		err := &CompileError{Stage: stage(typ), Log: ctx.GetShaderInfoLog(shd), Site: caller()}
		ctx.DeleteShader(shd)
		return 0, err
	}
	return shd, nil
}

// VertSrc is vertex shader source code.
type VertSrc string

// Compile returns the compiled shader of src and error if any.
func (src VertSrc) Compile() (uint32, error) { return compile(VERTEX_SHADER, string(src)) }

// FragSrc is fragment shader source code.
type FragSrc string

// Compile returns the compiled shader of src and error if any.
func (src FragSrc) Compile() (uint32, error) { return compile(FRAGMENT_SHADER, string(src)) }

// Program identifies a linked shader program; zero value is not built.
type Program struct{ Program uint32 }

// Use installs program as part of current rendering state.
func (prg Program) Use() { ctx.UseProgram(prg.Program) }

// Delete frees the program. Subsequent calls do nothing.
func (prg *Program) Delete() {
	if prg.Program == 0 {
		return
	}
	ctx.DeleteProgram(prg.Program)
	prg.Program = 0
}

// Build compiles shaders and links program. Shader objects are released
// before Build returns; on error the program is released as well.
func (prg *Program) Build(vsrc VertSrc, fsrc FragSrc) (err error) {
	prg.Program = ctx.CreateProgram()
	defer func() {
		if err != nil {
			prg.Delete()
		}
	}()

	vshd, err := vsrc.Compile()
	if err != nil {
		return err
	}
	ctx.AttachShader(prg.Program, vshd)
	defer ctx.DeleteShader(vshd)

	fshd, err := fsrc.Compile()
	if err != nil {
		return err
	}
	ctx.AttachShader(prg.Program, fshd)
	defer ctx.DeleteShader(fshd)

	ctx.LinkProgram(prg.Program)
	if ctx.GetProgrami(prg.Program, LINK_STATUS) == 0 {
		return &LinkError{Log: ctx.GetProgramInfoLog(prg.Program), Site: caller()}
	}

	return nil
}

// Install is a helper that wraps Program.Build and Program.Use.
func (prg *Program) Install(vsrc VertSrc, fsrc FragSrc) error {
	if err := prg.Build(vsrc, fsrc); err != nil {
		return err
	}
	prg.Use()
	return nil
}
