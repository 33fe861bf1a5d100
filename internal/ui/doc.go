// Package ui contains the Fyne desktop window of the application. It owns the
// widgets, adapts them to the controller regions and renders the toast queue.
// All UI strings are localized via locale.Localization.
package ui
