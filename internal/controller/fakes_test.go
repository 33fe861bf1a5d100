package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/ytget/url-shortener/internal/model"
)

type fakeInput struct {
	mu       sync.Mutex
	text     string
	invalid  bool
	setTexts []string
}

func (f *fakeInput) Text() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.text
}

func (f *fakeInput) SetText(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.text = text
	f.setTexts = append(f.setTexts, text)
}

func (f *fakeInput) SetInvalid(invalid bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalid = invalid
}

func (f *fakeInput) isInvalid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.invalid
}

type fakeIndicator struct {
	mu      sync.Mutex
	history []bool
}

func (f *fakeIndicator) SetVisible(visible bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.history = append(f.history, visible)
}

func (f *fakeIndicator) visible() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.history) > 0 && f.history[len(f.history)-1]
}

func (f *fakeIndicator) calls() []bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]bool(nil), f.history...)
}

type fakeShortenPanel struct {
	mu       sync.Mutex
	views    []ShortenView
	shortURL string
	scrolls  int
}

func (f *fakeShortenPanel) ShowResult(view ShortenView) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.views = append(f.views, view)
	f.shortURL = view.ShortCode
}

func (f *fakeShortenPanel) ShortURL() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shortURL
}

func (f *fakeShortenPanel) ScrollIntoView() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scrolls++
}

type fakeStatsPanel struct {
	mu      sync.Mutex
	view    *StatsView
	hides   int
	scrolls int
}

func (f *fakeStatsPanel) ShowResult(view StatsView) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.view = &view
}

func (f *fakeStatsPanel) Hide() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.view = nil
	f.hides++
}

func (f *fakeStatsPanel) ScrollIntoView() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scrolls++
}

func (f *fakeStatsPanel) shown() *StatsView {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.view
}

type fakeCopyButton struct {
	mu      sync.Mutex
	history []bool
}

func (f *fakeCopyButton) SetConfirmed(confirmed bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.history = append(f.history, confirmed)
}

func (f *fakeCopyButton) calls() []bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]bool(nil), f.history...)
}

type fakeClipboard struct {
	mu     sync.Mutex
	err    error
	copied []string
}

func (f *fakeClipboard) WriteText(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, text)
	return nil
}

func (f *fakeClipboard) SelectAndCopy(text string) error {
	return f.WriteText(text)
}

type recordingNotifier struct {
	mu     sync.Mutex
	toasts []model.Toast
}

func (n *recordingNotifier) Notify(message string, severity model.Severity) model.Toast {
	toast := model.NewToast(message, severity)
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, toast)
	return toast
}

func (n *recordingNotifier) all() []model.Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]model.Toast(nil), n.toasts...)
}

func (n *recordingNotifier) messages() []string {
	var out []string
	for _, t := range n.all() {
		out = append(out, t.Message)
	}
	return out
}

func (n *recordingNotifier) last() model.Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.toasts) == 0 {
		return model.Toast{}
	}
	return n.toasts[len(n.toasts)-1]
}

// stubGateway answers from the configured functions and counts calls
type stubGateway struct {
	mu           sync.Mutex
	shorten      func(ctx context.Context, longURL string) (*model.ShortenResult, error)
	stats        func(ctx context.Context, shortCode string) (*model.StatsResult, error)
	healthy      bool
	shortenCalls []string
	statsCalls   []string
}

var errUnexpectedCall = errors.New("unexpected gateway call")

func (g *stubGateway) Shorten(ctx context.Context, longURL string) (*model.ShortenResult, error) {
	g.mu.Lock()
	g.shortenCalls = append(g.shortenCalls, longURL)
	fn := g.shorten
	g.mu.Unlock()
	if fn == nil {
		return nil, errUnexpectedCall
	}
	return fn(ctx, longURL)
}

func (g *stubGateway) FetchStats(ctx context.Context, shortCode string) (*model.StatsResult, error) {
	g.mu.Lock()
	g.statsCalls = append(g.statsCalls, shortCode)
	fn := g.stats
	g.mu.Unlock()
	if fn == nil {
		return nil, errUnexpectedCall
	}
	return fn(ctx, shortCode)
}

func (g *stubGateway) CheckHealth(context.Context) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.healthy
}

func (g *stubGateway) shortenCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.shortenCalls)
}

func (g *stubGateway) statsCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.statsCalls)
}

type fixture struct {
	urlInput  *fakeInput
	codeInput *fakeInput
	loading   *fakeIndicator
	shorten   *fakeShortenPanel
	stats     *fakeStatsPanel
	copyBtn   *fakeCopyButton
	clipboard *fakeClipboard
	fallback  *fakeClipboard
	notifier  *recordingNotifier
}

func newFixture() *fixture {
	return &fixture{
		urlInput:  &fakeInput{},
		codeInput: &fakeInput{},
		loading:   &fakeIndicator{},
		shorten:   &fakeShortenPanel{},
		stats:     &fakeStatsPanel{},
		copyBtn:   &fakeCopyButton{},
		clipboard: &fakeClipboard{},
		fallback:  &fakeClipboard{},
		notifier:  &recordingNotifier{},
	}
}

func (f *fixture) regions() Regions {
	return Regions{
		URLInput:          f.urlInput,
		CodeInput:         f.codeInput,
		Loading:           f.loading,
		ShortenPanel:      f.shorten,
		StatsPanel:        f.stats,
		CopyButton:        f.copyBtn,
		Clipboard:         f.clipboard,
		FallbackClipboard: f.fallback,
	}
}
