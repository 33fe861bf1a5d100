package controller

// Input is a text field
type Input interface {
	Text() string
	SetText(text string)
	// SetInvalid toggles the "invalid" look without blocking typing
	SetInvalid(invalid bool)
}

// Indicator is the shared loading indicator
type Indicator interface {
	SetVisible(visible bool)
}

// ShortenPanel displays the latest shorten result
type ShortenPanel interface {
	ShowResult(view ShortenView)
	// ShortURL returns the text the copy action puts on the clipboard
	ShortURL() string
	ScrollIntoView()
}

// StatsPanel displays the latest stats result
type StatsPanel interface {
	ShowResult(view StatsView)
	Hide()
	ScrollIntoView()
}

// CopyButton gives visual confirmation after a successful copy
type CopyButton interface {
	SetConfirmed(confirmed bool)
}

// Clipboard is the primary copy mechanism
type Clipboard interface {
	WriteText(text string) error
}

// FallbackClipboard copies by selecting the text in its field and issuing a copy shortcut
type FallbackClipboard interface {
	SelectAndCopy(text string) error
}

// Regions are the UI handles the controller drives. Any of them may be nil.
type Regions struct {
	URLInput          Input
	CodeInput         Input
	Loading           Indicator
	ShortenPanel      ShortenPanel
	StatsPanel        StatsPanel
	CopyButton        CopyButton
	Clipboard         Clipboard
	FallbackClipboard FallbackClipboard
}
