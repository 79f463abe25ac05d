package tui

// Event is a single item on the event channel: either a message for the
// program or text to be printed above the viewport.
type Event[M any] interface {
	isEvent()
}

// MessageEvent carries a program-defined message to Program.Update.
type MessageEvent[M any] struct {
	Message M
}

// PrintEvent carries text for the scrollback. Text may span several lines.
type PrintEvent struct {
	Text string
}

func (MessageEvent[M]) isEvent() {}
func (PrintEvent) isEvent()      {}
