package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/url-shortener/internal/model"
	"github.com/ytget/url-shortener/internal/notify"
)

// toastItem is a tappable colored card with the toast text
type toastItem struct {
	widget.BaseWidget

	background *canvas.Rectangle
	label      *widget.Label
	onTapped   func()
}

func newToastItem(toast model.Toast, onTapped func()) *toastItem {
	item := &toastItem{
		background: canvas.NewRectangle(SeverityColor(toast.Severity)),
		label:      widget.NewLabel(toast.Text()),
		onTapped:   onTapped,
	}
	item.background.CornerRadius = 6
	item.label.Wrapping = fyne.TextWrapWord
	item.label.Importance = widget.HighImportance
	item.ExtendBaseWidget(item)
	return item
}

func (i *toastItem) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(i.background, container.NewPadded(i.label)))
}

// Tapped dismisses the toast early
func (i *toastItem) Tapped(*fyne.PointEvent) {
	if i.onTapped != nil {
		i.onTapped()
	}
}

func (i *toastItem) MinSize() fyne.Size {
	content := i.BaseWidget.MinSize()
	return fyne.NewSize(ToastWidth, fyne.Max(content.Height, ToastHeight))
}

// fade animates the background to transparent and hides the text
func (i *toastItem) fade(d time.Duration) {
	start := i.background.FillColor
	r, g, b, _ := start.RGBA()
	end := color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0}

	i.label.Hide()
	anim := canvas.NewColorRGBAAnimation(start, end, d, func(c color.Color) {
		i.background.FillColor = c
		i.background.Refresh()
	})
	anim.Start()
}

// toastStack renders the notification queue in the top-right corner of the
// window, newest at the bottom
type toastStack struct {
	box     *fyne.Container
	overlay fyne.CanvasObject
	items   map[string]*toastItem
}

var _ notify.Renderer = (*toastStack)(nil)

func newToastStack() *toastStack {
	s := &toastStack{
		box:   container.New(layout.NewCustomPaddedVBoxLayout(ToastSpacing)),
		items: make(map[string]*toastItem),
	}
	s.overlay = container.NewVBox(container.NewHBox(layout.NewSpacer(), container.NewPadded(s.box)))
	return s
}

// Show, Fade and Remove are called with the queue lock held, so they only
// schedule work on the UI thread.

func (s *toastStack) Show(toast model.Toast, onClick func()) {
	fyne.Do(func() {
		item := newToastItem(toast, onClick)
		s.items[toast.ID] = item
		s.box.Add(item)
	})
}

func (s *toastStack) Fade(id string, d time.Duration) {
	fyne.Do(func() {
		if item, ok := s.items[id]; ok {
			item.fade(d)
		}
	})
}

func (s *toastStack) Remove(id string) {
	fyne.Do(func() {
		item, ok := s.items[id]
		if !ok {
			return
		}
		delete(s.items, id)
		s.box.Remove(item)
	})
}
