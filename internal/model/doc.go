package model

// Package model defines the data exchanged between the API gateway, the
// interaction controller and the UI: shorten/stats results as returned by the
// backend, toasts, and the per-action state enums.
