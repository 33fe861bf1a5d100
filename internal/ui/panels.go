package ui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/url-shortener/internal/controller"
	"github.com/ytget/url-shortener/internal/locale"
)

// field is a caption/value pair inside a result card
type field struct {
	key     string
	caption *widget.Label
	value   *widget.Label
}

func newField(key string, texts *locale.Localization) *field {
	caption := newCaption(key, texts)
	value := widget.NewLabel(DashPlaceholder)
	value.Truncation = fyne.TextTruncateEllipsis
	return &field{key: key, caption: caption, value: value}
}

func (f *field) row() fyne.CanvasObject {
	return container.NewBorder(nil, nil, f.caption, nil, f.value)
}

func (f *field) refreshCaption(texts *locale.Localization) {
	f.caption.SetText(texts.GetText(f.key) + LabelSeparator)
}

// setOriginalLink shows a truncated URL whose target is the full one
func setOriginalLink(link *widget.Hyperlink, display, full string) {
	link.SetText(display)
	_ = link.SetURLFromString(full)
}

func newCaption(key string, texts *locale.Localization) *widget.Label {
	caption := widget.NewLabel(texts.GetText(key) + LabelSeparator)
	caption.TextStyle = fyne.TextStyle{Bold: true}
	return caption
}

// scrollTo brings obj into view once the freshly shown card has been laid out
func scrollTo(scroll *container.Scroll, obj fyne.CanvasObject) {
	if scroll == nil {
		return
	}
	time.AfterFunc(ScrollSettle, func() {
		fyne.Do(func() {
			scroll.Offset = fyne.NewPos(0, obj.Position().Y)
			scroll.Refresh()
		})
	})
}

// shortenCard shows the latest shortened URL
type shortenCard struct {
	card            *widget.Card
	shortCode       *widget.Entry
	originalCaption *widget.Label
	original        *widget.Hyperlink
	created         *field
	expires         *field
	copyBtn         *widget.Button
	scroll          *container.Scroll

	mu       sync.Mutex
	shortURL string
}

var _ controller.ShortenPanel = (*shortenCard)(nil)

func newShortenCard(texts *locale.Localization, onCopy func()) *shortenCard {
	c := &shortenCard{
		shortCode:       widget.NewEntry(),
		originalCaption: newCaption(locale.KeyOriginalURL, texts),
		original:        widget.NewHyperlink(DashPlaceholder, nil),
		created:         newField(locale.KeyCreatedAt, texts),
		expires:         newField(locale.KeyExpiresAt, texts),
	}
	c.shortCode.Disable()
	c.original.Truncation = fyne.TextTruncateEllipsis
	c.copyBtn = widget.NewButton(IconCopy+" "+texts.GetText(locale.KeyCopy), onCopy)

	c.card = widget.NewCard(IconLink+" "+texts.GetText(locale.KeyShortURL), "", container.NewVBox(
		container.NewBorder(nil, nil, nil, c.copyBtn, c.shortCode),
		container.NewBorder(nil, nil, c.originalCaption, nil, c.original),
		c.created.row(),
		c.expires.row(),
	))
	c.card.Hide()
	return c
}

func (c *shortenCard) ShowResult(view controller.ShortenView) {
	c.mu.Lock()
	c.shortURL = view.ShortCode
	c.mu.Unlock()

	fyne.Do(func() {
		c.shortCode.SetText(view.ShortCode)
		setOriginalLink(c.original, view.OriginalURL, view.OriginalURLTitle)
		c.created.value.SetText(view.CreatedAt)
		c.expires.value.SetText(view.ExpiresAt)
		c.card.Show()
	})
}

func (c *shortenCard) ShortURL() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.shortURL
}

func (c *shortenCard) ScrollIntoView() {
	scrollTo(c.scroll, c.card)
}

func (c *shortenCard) refreshTexts(texts *locale.Localization) {
	c.card.SetTitle(IconLink + " " + texts.GetText(locale.KeyShortURL))
	c.originalCaption.SetText(texts.GetText(locale.KeyOriginalURL) + LabelSeparator)
	c.created.refreshCaption(texts)
	c.expires.refreshCaption(texts)
	c.copyBtn.SetText(IconCopy + " " + texts.GetText(locale.KeyCopy))
}

// statsCard shows statistics for a short code
type statsCard struct {
	card            *widget.Card
	originalCaption *widget.Label
	original        *widget.Hyperlink
	fields          []*field
	scroll          *container.Scroll

	shortCode   *field
	accessCount *field
	created     *field
	updated     *field
	expires     *field
}

var _ controller.StatsPanel = (*statsCard)(nil)

func newStatsCard(texts *locale.Localization) *statsCard {
	c := &statsCard{
		originalCaption: newCaption(locale.KeyOriginalURL, texts),
		original:        widget.NewHyperlink(DashPlaceholder, nil),
		shortCode:       newField(locale.KeyShortCode, texts),
		accessCount:     newField(locale.KeyAccessCount, texts),
		created:         newField(locale.KeyCreatedAt, texts),
		updated:         newField(locale.KeyUpdatedAt, texts),
		expires:         newField(locale.KeyExpiresAt, texts),
	}
	c.original.Truncation = fyne.TextTruncateEllipsis
	c.fields = []*field{c.shortCode, c.accessCount, c.created, c.updated, c.expires}

	rows := container.NewVBox(container.NewBorder(nil, nil, c.originalCaption, nil, c.original))
	for _, f := range c.fields {
		rows.Add(f.row())
	}

	c.card = widget.NewCard(IconStats+" "+texts.GetText(locale.KeyStatsTitle), "", rows)
	c.card.Hide()
	return c
}

func (c *statsCard) ShowResult(view controller.StatsView) {
	fyne.Do(func() {
		setOriginalLink(c.original, view.OriginalURL, view.OriginalURLTitle)
		c.shortCode.value.SetText(view.ShortCode)
		c.accessCount.value.SetText(view.AccessCount)
		c.created.value.SetText(view.CreatedAt)
		c.updated.value.SetText(view.UpdatedAt)
		c.expires.value.SetText(view.ExpiresAt)
		c.card.Show()
	})
}

func (c *statsCard) Hide() {
	fyne.Do(c.card.Hide)
}

func (c *statsCard) ScrollIntoView() {
	scrollTo(c.scroll, c.card)
}

func (c *statsCard) refreshTexts(texts *locale.Localization) {
	c.card.SetTitle(IconStats + " " + texts.GetText(locale.KeyStatsTitle))
	c.originalCaption.SetText(texts.GetText(locale.KeyOriginalURL) + LabelSeparator)
	for _, f := range c.fields {
		f.refreshCaption(texts)
	}
}
