package controller

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/url-shortener/internal/api"
	"github.com/ytget/url-shortener/internal/locale"
	"github.com/ytget/url-shortener/internal/logger"
	"github.com/ytget/url-shortener/internal/model"
	"github.com/ytget/url-shortener/internal/notify"
	"github.com/ytget/url-shortener/internal/validate"
)

// DefaultCopyFeedback is how long the copy button shows its confirmation
const DefaultCopyFeedback = 2 * time.Second

// Option customizes a Controller
type Option func(*Controller)

// WithCopyFeedback overrides the copy confirmation duration
func WithCopyFeedback(d time.Duration) Option {
	return func(c *Controller) { c.copyFeedback = d }
}

// WithLocation sets the zone used to display timestamps
func WithLocation(loc *time.Location) Option {
	return func(c *Controller) { c.location = loc }
}

// Controller is the single entry point for user intents
type Controller struct {
	gateway      api.Gateway
	notifier     notify.Notifier
	texts        *locale.Localization
	regions      Regions
	copyFeedback time.Duration
	location     *time.Location

	mu          sync.Mutex
	pending     int
	kindPending map[model.ActionKind]int
	states      map[model.ActionKind]model.ActionState
	shorten     *model.ShortenResult
	stats       *model.StatsResult
	revertTimer *time.Timer

	inFlight sync.WaitGroup
}

// New creates a controller. A nil notifier uses a headless queue and nil texts use English.
func New(gateway api.Gateway, notifier notify.Notifier, texts *locale.Localization, regions Regions, opts ...Option) *Controller {
	if notifier == nil {
		notifier = notify.NewQueue(nil)
	}
	if texts == nil {
		texts = locale.NewLocalization()
	}

	c := &Controller{
		gateway:      gateway,
		notifier:     notifier,
		texts:        texts,
		regions:      regions,
		copyFeedback: DefaultCopyFeedback,
		location:     time.Local,
		kindPending:  make(map[model.ActionKind]int),
		states: map[model.ActionKind]model.ActionState{
			model.ActionShorten: model.ActionStateIdle,
			model.ActionStats:   model.ActionStateIdle,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start shows the welcome toast and probes API health in the background.
// A failed probe only produces a warning.
func (c *Controller) Start(ctx context.Context) {
	c.toast(locale.KeyWelcome, model.SeveritySuccess)

	c.run("health", func() {
		if !c.gateway.CheckHealth(ctx) {
			c.toast(locale.KeyAPIUnavailable, model.SeverityWarning)
		}
	})
}

// Dispatch routes a command. Network-bound and clipboard commands run in the
// background; live validation runs inline.
func (c *Controller) Dispatch(cmd Command) {
	if cmd.Kind == URLInputChanged {
		c.Handle(context.Background(), cmd)
		return
	}
	c.run(cmd.Kind.String(), func() {
		c.Handle(context.Background(), cmd)
	})
}

// Handle processes a command synchronously
func (c *Controller) Handle(ctx context.Context, cmd Command) {
	switch cmd.Kind {
	case SubmitShorten:
		c.submitShorten(ctx)
	case SubmitStats, KeyEnterInStats:
		c.submitStats(ctx)
	case Copy:
		c.copyShortURL()
	case URLInputChanged:
		c.revalidateURL(cmd.Text)
	default:
		logger.Log.Warn("unknown command", zap.Int("kind", int(cmd.Kind)))
	}
}

// Wait blocks until every background action has settled
func (c *Controller) Wait() {
	c.inFlight.Wait()
}

// State returns the lifecycle state of the latest action of kind
func (c *Controller) State(kind model.ActionKind) model.ActionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.states[kind]
}

// Pending returns the number of outstanding network actions
func (c *Controller) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// ShortenResult returns the result currently shown in the shorten panel
func (c *Controller) ShortenResult() *model.ShortenResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.shorten
}

// StatsResult returns the result currently shown in the stats panel, nil when hidden
func (c *Controller) StatsResult() *model.StatsResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

func (c *Controller) run(name string, fn func()) {
	c.inFlight.Add(1)
	go func() {
		defer c.inFlight.Done()
		defer func() {
			if r := recover(); r != nil {
				logger.Log.Error("action panicked", zap.String("action", name), zap.Any("panic", r))
			}
		}()
		fn()
	}()
}

func (c *Controller) submitShorten(ctx context.Context) {
	c.setState(model.ActionShorten, model.ActionStateValidating)

	input := c.regions.URLInput
	if input == nil {
		logger.Log.Warn("URL input missing, shorten skipped")
		c.setState(model.ActionShorten, model.ActionStateIdle)
		return
	}

	longURL := strings.TrimSpace(input.Text())
	if err := validate.ShortenInput(longURL); err != nil {
		c.toast(validationKey(err), model.SeverityError)
		c.setState(model.ActionShorten, model.ActionStateIdle)
		return
	}

	c.beginPending(model.ActionShorten)
	defer c.endPending(model.ActionShorten)

	result, err := c.gateway.Shorten(ctx, longURL)
	c.setState(model.ActionShorten, model.ActionStateSettling)
	if err != nil {
		logger.Log.Error("Error shortening URL", zap.String("url", longURL), zap.Error(err))
		c.notifyFailure(err, locale.KeyShortenFailed)
		return
	}

	c.mu.Lock()
	c.shorten = result
	c.mu.Unlock()

	if panel := c.regions.ShortenPanel; panel != nil {
		panel.ShowResult(NewShortenView(result, c.location))
	}
	input.SetText("")
	input.SetInvalid(false)
	c.toast(locale.KeyShortenSuccess, model.SeveritySuccess)
	if panel := c.regions.ShortenPanel; panel != nil {
		panel.ScrollIntoView()
	}
}

func (c *Controller) submitStats(ctx context.Context) {
	c.setState(model.ActionStats, model.ActionStateValidating)

	input := c.regions.CodeInput
	if input == nil {
		logger.Log.Warn("short code input missing, stats skipped")
		c.setState(model.ActionStats, model.ActionStateIdle)
		return
	}

	shortCode := strings.TrimSpace(input.Text())
	if err := validate.StatsInput(shortCode); err != nil {
		c.toast(locale.KeyPleaseEnterCode, model.SeverityError)
		c.setState(model.ActionStats, model.ActionStateIdle)
		return
	}

	c.beginPending(model.ActionStats)
	defer c.endPending(model.ActionStats)

	result, err := c.gateway.FetchStats(ctx, shortCode)
	c.setState(model.ActionStats, model.ActionStateSettling)
	if err != nil {
		if api.IsNotFound(err) {
			c.toast(locale.KeyStatsNotFound, model.SeverityError)
		} else {
			logger.Log.Error("Error getting stats", zap.String("shortCode", shortCode), zap.Error(err))
			c.notifyFailure(err, locale.KeyStatsFailed)
		}
		c.hideStats()
		return
	}

	c.mu.Lock()
	c.stats = result
	c.mu.Unlock()

	panel := c.regions.StatsPanel
	if panel != nil {
		panel.ShowResult(NewStatsView(result, c.location))
	}
	c.toast(locale.KeyStatsSuccess, model.SeveritySuccess)
	if panel != nil {
		panel.ScrollIntoView()
	}
}

func (c *Controller) hideStats() {
	c.mu.Lock()
	c.stats = nil
	c.mu.Unlock()

	if panel := c.regions.StatsPanel; panel != nil {
		panel.Hide()
	}
}

// notifyFailure shows the server message for API errors when present,
// the network text when the server was unreachable, and fallbackKey otherwise
func (c *Controller) notifyFailure(err error, fallbackKey string) {
	if apiErr, ok := api.AsAPIError(err); ok && apiErr.Message != "" {
		c.notifier.Notify(apiErr.Message, model.SeverityError)
		return
	}
	if api.IsNetwork(err) {
		c.toast(locale.KeyNetworkError, model.SeverityError)
		return
	}
	c.toast(fallbackKey, model.SeverityError)
}

func (c *Controller) revalidateURL(text string) {
	input := c.regions.URLInput
	if input == nil {
		return
	}
	text = strings.TrimSpace(text)
	input.SetInvalid(text != "" && !validate.IsValidURL(text))
}

// beginPending and endPending drive the indicator under the lock so that
// concurrent actions cannot reorder show/hide calls. A kind stays Pending
// while any of its requests is in flight.
func (c *Controller) beginPending(kind model.ActionKind) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending++
	c.kindPending[kind]++
	c.states[kind] = model.ActionStatePending
	if c.regions.Loading != nil {
		c.regions.Loading.SetVisible(true)
	}
}

func (c *Controller) endPending(kind model.ActionKind) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending > 0 {
		c.pending--
	}
	if c.kindPending[kind] > 0 {
		c.kindPending[kind]--
	}
	if c.kindPending[kind] > 0 {
		c.states[kind] = model.ActionStatePending
	} else {
		c.states[kind] = model.ActionStateIdle
	}
	if c.regions.Loading != nil {
		c.regions.Loading.SetVisible(c.pending > 0)
	}
}

// setState records a transition of the calling action. It is ignored while
// another request of the same kind is still pending. A settling action is
// itself counted in kindPending until endPending runs.
func (c *Controller) setState(kind model.ActionKind, state model.ActionState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	others := c.kindPending[kind]
	if state == model.ActionStateSettling {
		others--
	}
	if others > 0 {
		return
	}
	c.states[kind] = state
}

func (c *Controller) toast(key string, severity model.Severity) {
	c.notifier.Notify(c.texts.GetText(key), severity)
}

func validationKey(err error) string {
	if vErr, ok := err.(*validate.ValidationError); ok && vErr.Reason == validate.ReasonInvalidURL {
		return locale.KeyInvalidURL
	}
	return locale.KeyPleaseEnterURL
}
