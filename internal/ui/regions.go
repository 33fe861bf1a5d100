package ui

import (
	"errors"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/url-shortener/internal/controller"
	"github.com/ytget/url-shortener/internal/validate"
)

// The controller calls regions from its own goroutines. Adapters never read
// widgets off the main thread: values the controller needs back are cached and
// every widget change is marshalled with fyne.Do.

var errInvalidURL = errors.New("invalid URL")

// validateURLInput accepts an empty entry or a web URL. SetValidationError is
// ignored by entries without a validator, so the URL entry needs one.
func validateURLInput(text string) error {
	if t := strings.TrimSpace(text); t != "" && !validate.IsValidURL(t) {
		return errInvalidURL
	}
	return nil
}

// entryInput adapts a text entry. Text is mirrored through OnChanged.
type entryInput struct {
	entry *widget.Entry

	mu   sync.Mutex
	text string
}

var _ controller.Input = (*entryInput)(nil)

// newEntryInput wraps entry; onChange, when set, runs after the mirror is updated
func newEntryInput(entry *widget.Entry, onChange func(string)) *entryInput {
	in := &entryInput{entry: entry, text: entry.Text}
	entry.OnChanged = func(text string) {
		in.store(text)
		if onChange != nil {
			onChange(text)
		}
	}
	return in
}

func (in *entryInput) Text() string {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.text
}

func (in *entryInput) SetText(text string) {
	in.store(text)
	fyne.Do(func() { in.entry.SetText(text) })
}

func (in *entryInput) SetInvalid(invalid bool) {
	fyne.Do(func() {
		if invalid {
			in.entry.SetValidationError(errInvalidURL)
		} else {
			in.entry.SetValidationError(nil)
		}
	})
}

func (in *entryInput) store(text string) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.text = text
}

// loadingIndicator shows a spinner row while requests are pending
type loadingIndicator struct {
	row     *fyne.Container
	spinner *widget.ProgressBarInfinite
}

var _ controller.Indicator = (*loadingIndicator)(nil)

func (l *loadingIndicator) SetVisible(visible bool) {
	fyne.Do(func() {
		if visible {
			l.spinner.Show()
			l.row.Show()
			return
		}
		l.spinner.Hide()
		l.row.Hide()
	})
}

// copyButton swaps its label while a copy is confirmed
type copyButton struct {
	button   *widget.Button
	idleText func() string
	doneText func() string
}

var _ controller.CopyButton = (*copyButton)(nil)

func (b *copyButton) SetConfirmed(confirmed bool) {
	fyne.Do(func() {
		if confirmed {
			b.button.SetText(IconCheck + " " + b.doneText())
			b.button.Importance = widget.SuccessImportance
		} else {
			b.button.SetText(IconCopy + " " + b.idleText())
			b.button.Importance = widget.MediumImportance
		}
		b.button.Refresh()
	})
}

// appClipboard writes through the application clipboard and reads the text
// back, since SetContent cannot report a failed write
type appClipboard struct {
	source func() fyne.Clipboard
}

var _ controller.Clipboard = (*appClipboard)(nil)

var (
	errNoClipboard  = errors.New("clipboard not available")
	errWriteDropped = errors.New("clipboard did not keep the written text")
)

func (c *appClipboard) WriteText(text string) error {
	var err error
	fyne.DoAndWait(func() {
		clip := clipboardFrom(c.source)
		if clip == nil {
			err = errNoClipboard
			return
		}
		clip.SetContent(text)
		if clip.Content() != text {
			err = errWriteDropped
		}
	})
	return err
}

// clipboardFrom resolves source, falling back to the current app's clipboard
func clipboardFrom(source func() fyne.Clipboard) fyne.Clipboard {
	if source != nil {
		return source()
	}
	if app := fyne.CurrentApp(); app != nil {
		return app.Clipboard()
	}
	return nil
}

// selectionClipboard copies by selecting the text of a read-only entry and
// sending it the copy shortcut, the way a user would. source is normally the
// window's clipboard.
type selectionClipboard struct {
	entry  *widget.Entry
	source func() fyne.Clipboard
}

var _ controller.FallbackClipboard = (*selectionClipboard)(nil)

var errSelectionCopy = errors.New("selection copy did not reach the clipboard")

func (c *selectionClipboard) SelectAndCopy(text string) error {
	var err error
	fyne.DoAndWait(func() {
		clip := clipboardFrom(c.source)
		if clip == nil {
			err = errNoClipboard
			return
		}
		c.entry.SetText(text)
		c.entry.TypedShortcut(&fyne.ShortcutSelectAll{})
		c.entry.TypedShortcut(&fyne.ShortcutCopy{Clipboard: clip})
		if clip.Content() != text {
			err = errSelectionCopy
		}
	})
	return err
}
