// Command physsim opens a window and draws a hollow triangle until escape
// is pressed or the window is closed.
package main

import (
	"log"
	"os"
	"runtime"

	"dasa.cc/physsim/glw/glcore"
	"dasa.cc/physsim/nui/desktop"
	"dasa.cc/physsim/render"
)

func init() {
	// glfw and GL calls must come from the main thread.
	runtime.LockOSThread()
}

func main() {
	logger := log.New(os.Stdout, "physsim: ", 0)
	os.Exit(render.Main(desktop.System{}, glcore.Init, render.DefaultConfig(), logger))
}
