package controller

// Package controller turns user intents into validated gateway calls and
// drives the visible state: result panels, the loading indicator and toasts.
// UI regions are optional; an absent region turns the matching step into a no-op.
