package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Severity selects the icon and color of a toast
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Toast icons (symbols)
const (
	IconSuccess = "✅"
	IconError   = "❌"
	IconWarning = "⚠️"
	IconInfo    = "ℹ️"
)

// ParseSeverity maps a severity name to a Severity. Unknown names fall back to info.
func ParseSeverity(name string) Severity {
	switch s := Severity(strings.ToLower(strings.TrimSpace(name))); s {
	case SeveritySuccess, SeverityError, SeverityWarning, SeverityInfo:
		return s
	default:
		return SeverityInfo
	}
}

// Icon returns the glyph shown next to the toast message
func (s Severity) Icon() string {
	switch s {
	case SeveritySuccess:
		return IconSuccess
	case SeverityError:
		return IconError
	case SeverityWarning:
		return IconWarning
	default:
		return IconInfo
	}
}

// Toast is a transient notification
type Toast struct {
	ID        string
	Message   string
	Severity  Severity
	CreatedAt time.Time
}

// NewToast creates a toast with a fresh ID. Unknown severities are presented as info.
func NewToast(message string, severity Severity) Toast {
	return Toast{
		ID:        "toast-" + uuid.NewString(),
		Message:   message,
		Severity:  ParseSeverity(string(severity)),
		CreatedAt: time.Now(),
	}
}

// Text returns the message prefixed with its severity icon
func (t Toast) Text() string {
	return t.Severity.Icon() + " " + t.Message
}
