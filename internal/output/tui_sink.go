package output

// Sender abstracts a running tui loop's Handle to keep TUISink decoupled and
// testable: Send feeds the viewport program, Print writes to the scrollback.
type Sender interface {
	Send(msg any)
	Print(text string)
}

type TUISink struct {
	sender Sender
}

func NewTUISink(sender Sender) *TUISink {
	return &TUISink{sender: sender}
}

// emit routes text-like events to the scrollback and everything else to the
// program. Job output lines go to both, so the program can count them.
func (s *TUISink) emit(event any) {
	if s == nil || s.sender == nil {
		return
	}
	switch event.(type) {
	case LogEvent, WarningEvent, ErrorEvent:
		if line, ok := FormatEventLine(event); ok {
			s.sender.Print(line)
		}
	case LogLineEvent:
		line, _ := FormatEventLine(event)
		s.sender.Print(line)
		s.sender.Send(event)
	default:
		s.sender.Send(event)
	}
}
