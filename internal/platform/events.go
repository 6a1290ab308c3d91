package platform

type Event interface{}

type Resize struct {
	Width  int
	Height int
}

type KeyPress struct {
	Code  uint64
	Label string
}

type KeyRelease struct {
	Code  uint64
	Label string
}

type CloseRequested struct{}

type UnexpectedEvent struct{}
