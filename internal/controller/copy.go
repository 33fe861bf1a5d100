package controller

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/url-shortener/internal/locale"
	"github.com/ytget/url-shortener/internal/logger"
	"github.com/ytget/url-shortener/internal/model"
)

// copyShortURL puts the displayed short URL on the clipboard, trying the
// fallback mechanism when the primary one fails
func (c *Controller) copyShortURL() {
	var text string
	if panel := c.regions.ShortenPanel; panel != nil {
		text = strings.TrimSpace(panel.ShortURL())
	}
	if text == "" {
		c.toast(locale.KeyNothingToCopy, model.SeverityError)
		return
	}

	primaryErr := errNoClipboard
	if c.regions.Clipboard != nil {
		primaryErr = c.regions.Clipboard.WriteText(text)
	}
	if primaryErr == nil {
		c.toast(locale.KeyCopySuccess, model.SeveritySuccess)
		c.confirmCopy()
		return
	}
	logger.Log.Warn("Failed to copy", zap.Error(primaryErr))

	fallbackErr := errNoClipboard
	if c.regions.FallbackClipboard != nil {
		fallbackErr = c.regions.FallbackClipboard.SelectAndCopy(text)
	}
	if fallbackErr == nil {
		c.toast(locale.KeyCopySuccess, model.SeveritySuccess)
		return
	}

	err := &ClipboardError{Primary: primaryErr, Fallback: fallbackErr}
	logger.Log.Error("copy fallback failed", zap.Error(err))
	c.toast(locale.KeyCopyFailed, model.SeverityError)
}

// confirmCopy flips the copy button into its confirmed look and schedules the
// revert. A newer confirmation restarts the countdown.
func (c *Controller) confirmCopy() {
	btn := c.regions.CopyButton
	if btn == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.revertTimer != nil {
		c.revertTimer.Stop()
	}
	btn.SetConfirmed(true)
	c.revertTimer = time.AfterFunc(c.copyFeedback, func() {
		btn.SetConfirmed(false)
	})
}
