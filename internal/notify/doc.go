package notify

// Package notify implements the toast queue: short-lived notifications that
// expire on their own or when clicked. Rendering is delegated to a Renderer so
// the queue can run headless in tests.
