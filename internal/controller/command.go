package controller

// CommandKind enumerates user intents
type CommandKind int

const (
	SubmitShorten CommandKind = iota
	SubmitStats
	Copy
	KeyEnterInStats
	URLInputChanged
)

// String returns a name for logs
func (k CommandKind) String() string {
	switch k {
	case SubmitShorten:
		return "SubmitShorten"
	case SubmitStats:
		return "SubmitStats"
	case Copy:
		return "Copy"
	case KeyEnterInStats:
		return "KeyEnterInStats"
	case URLInputChanged:
		return "URLInputChanged"
	default:
		return "Unknown"
	}
}

// Command is a user intent routed to Controller.Dispatch
type Command struct {
	Kind CommandKind
	// Text carries the current field content for URLInputChanged
	Text string
}

// Cmd builds a command without payload
func Cmd(kind CommandKind) Command {
	return Command{Kind: kind}
}

// InputChanged builds the live-validation command for the URL field
func InputChanged(text string) Command {
	return Command{Kind: URLInputChanged, Text: text}
}
