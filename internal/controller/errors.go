package controller

import (
	"errors"
	"fmt"
)

// errNoClipboard stands in for a copy mechanism that is not available
var errNoClipboard = errors.New("clipboard unavailable")

// ClipboardError means both the primary and the fallback copy failed
type ClipboardError struct {
	Primary  error
	Fallback error
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("copy failed: primary: %v; fallback: %v", e.Primary, e.Fallback)
}

func (e *ClipboardError) Unwrap() []error {
	return []error{e.Primary, e.Fallback}
}
