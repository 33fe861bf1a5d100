package notify

import (
	"time"

	"github.com/ytget/url-shortener/internal/model"
)

// Renderer displays toasts. Implementations must not block: they are called
// with the queue lock held.
type Renderer interface {
	// Show appends the toast to the visible stack; onClick dismisses it
	Show(toast model.Toast, onClick func())

	// Fade starts the exit animation of the toast
	Fade(id string, duration time.Duration)

	// Remove takes the toast off screen
	Remove(id string)
}

// Notifier is the part of the queue the controller depends on
type Notifier interface {
	Notify(message string, severity model.Severity) model.Toast
}
