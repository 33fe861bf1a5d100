package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconCopy     = "📋"
	IconCheck    = "✓"
	IconLink     = "🔗"
	IconStats    = "📊"
)

// Window sizing
const (
	WindowWidth  float32 = 640
	WindowHeight float32 = 720
)

// Toast sizing
const (
	ToastWidth   float32 = 320
	ToastHeight  float32 = 56
	ToastSpacing float32 = 8
)

// Result panels
const (
	// DashPlaceholder fills labels that have no value yet
	DashPlaceholder = "—"
	LabelSeparator  = ": "
)

// ScrollSettle delays scrolling until a freshly shown panel has been laid out
const ScrollSettle = 50 * time.Millisecond
