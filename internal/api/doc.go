package api

// Package api is the client side of the shortening service contract: shorten a
// URL, fetch statistics for a short code, and probe liveness. Transport and
// HTTP failures are normalized into the typed errors in errors.go.
