// Package platform is the narrow windowing capability the engine consumes.
// Real backends (GLFW, SDL) live outside this module; the engine only ever
// polls events and reads the framebuffer size.
package platform

type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// Window is what the frame loop sees of a windowing backend.
type Window interface {
	PollEvents() []Event
	ShouldClose() bool
	Size() (width, height int)
	Close()
}
