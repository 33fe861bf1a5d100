package notify

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/url-shortener/internal/logger"
	"github.com/ytget/url-shortener/internal/model"
)

// Toast timing defaults
const (
	DefaultAutoHide = 5 * time.Second
	DefaultFadeOut  = 300 * time.Millisecond
)

// Option customizes a Queue
type Option func(*Queue)

// WithTimings overrides how long toasts stay and how long they take to fade
func WithTimings(autoHide, fadeOut time.Duration) Option {
	return func(q *Queue) {
		q.autoHide = autoHide
		q.fadeOut = fadeOut
	}
}

type entry struct {
	toast      model.Toast
	timer      *time.Timer
	dismissing bool
}

// Queue holds the visible toasts in creation order. The number of toasts is not capped.
type Queue struct {
	mu       sync.Mutex
	renderer Renderer
	autoHide time.Duration
	fadeOut  time.Duration
	entries  []*entry
}

var _ Notifier = (*Queue)(nil)

// NewQueue creates a queue drawing through renderer. A nil renderer keeps the queue headless.
func NewQueue(renderer Renderer, opts ...Option) *Queue {
	q := &Queue{
		renderer: renderer,
		autoHide: DefaultAutoHide,
		fadeOut:  DefaultFadeOut,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Notify shows a new toast immediately and schedules its expiry
func (q *Queue) Notify(message string, severity model.Severity) model.Toast {
	toast := model.NewToast(message, severity)
	e := &entry{toast: toast}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.entries = append(q.entries, e)
	if q.renderer != nil {
		q.renderer.Show(toast, func() { q.Dismiss(toast.ID) })
	}
	e.timer = time.AfterFunc(q.autoHide, func() { q.Dismiss(toast.ID) })

	logger.Log.Debug("toast shown",
		zap.String("id", toast.ID),
		zap.String("severity", string(toast.Severity)),
		zap.String("message", toast.Message))
	return toast
}

// Dismiss starts the exit animation of a toast. It returns false when the
// toast is unknown or already leaving, so a late timer after a click is a no-op.
func (q *Queue) Dismiss(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	e := q.find(id)
	if e == nil || e.dismissing {
		return false
	}

	e.dismissing = true
	if e.timer != nil {
		e.timer.Stop()
	}
	if q.renderer != nil {
		q.renderer.Fade(id, q.fadeOut)
	}
	time.AfterFunc(q.fadeOut, func() { q.remove(id) })
	return true
}

// Visible returns the toasts on screen, oldest first, including fading ones
func (q *Queue) Visible() []model.Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	toasts := make([]model.Toast, 0, len(q.entries))
	for _, e := range q.entries {
		toasts = append(toasts, e.toast)
	}
	return toasts
}

// Len returns the number of toasts on screen
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

func (q *Queue) remove(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, e := range q.entries {
		if e.toast.ID == id {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			if q.renderer != nil {
				q.renderer.Remove(id)
			}
			return
		}
	}
}

func (q *Queue) find(id string) *entry {
	for _, e := range q.entries {
		if e.toast.ID == id {
			return e
		}
	}
	return nil
}
