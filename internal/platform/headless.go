package platform

// Headless is an in-memory Window for tests, benchmarks and windowless runs.
// Events are injected by the owner and drained by the loop like real input.
type Headless struct {
	width   int
	height  int
	pending []Event
	closing bool
}

var _ Window = (*Headless)(nil)

func NewHeadless(conf WindowConfig) *Headless {
	return &Headless{width: conf.Width, height: conf.Height}
}

// Inject queues events for the next PollEvents call.
func (h *Headless) Inject(events ...Event) {
	h.pending = append(h.pending, events...)
}

func (h *Headless) PollEvents() []Event {
	events := h.pending
	h.pending = nil
	for _, e := range events {
		switch e := e.(type) {
		case Resize:
			h.width, h.height = e.Width, e.Height
		case CloseRequested:
			h.closing = true
		}
	}
	return events
}

func (h *Headless) ShouldClose() bool {
	return h.closing
}

func (h *Headless) Size() (int, int) {
	return h.width, h.height
}

func (h *Headless) Close() {
	h.closing = true
}
