package render

// Device is the capability a rendering backend exposes to the engine core.
// The core never touches a graphics API directly; it hands the device
// ready-built passes.
type Device interface {
	Init() error
	SetViewport(x, y, width, height int)
	Render(pass *Pass) error
}

// NullDevice consumes passes without drawing. It backs tests and headless
// runs.
type NullDevice struct {
	frames   int
	commands int
	viewport [4]int
}

var _ Device = (*NullDevice)(nil)

func NewNullDevice() *NullDevice {
	return &NullDevice{}
}

func (d *NullDevice) Init() error {
	return nil
}

func (d *NullDevice) SetViewport(x, y, width, height int) {
	d.viewport = [4]int{x, y, width, height}
}

func (d *NullDevice) Render(pass *Pass) error {
	d.frames++
	d.commands += len(pass.Commands)
	return nil
}

func (d *NullDevice) Frames() int { return d.frames }

func (d *NullDevice) Commands() int { return d.commands }

func (d *NullDevice) Viewport() [4]int { return d.viewport }
