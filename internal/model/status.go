package model

// ActionKind identifies one of the two network-bound user actions.
type ActionKind string

const (
	ActionShorten ActionKind = "shorten"
	ActionStats   ActionKind = "stats"
)

// ActionState is the lifecycle state of a user action
type ActionState string

const (
	// ActionStateIdle means no submission is being processed
	ActionStateIdle ActionState = "Idle"

	// ActionStateValidating means input is being checked before any network call
	ActionStateValidating ActionState = "Validating"

	// ActionStatePending means the gateway call is in flight
	ActionStatePending ActionState = "Pending"

	// ActionStateSettling means the response is being rendered
	ActionStateSettling ActionState = "Settling"
)

// String returns the string representation of ActionState
func (s ActionState) String() string {
	return string(s)
}

// IsActive returns true while the action holds the loading indicator
func (s ActionState) IsActive() bool {
	return s == ActionStatePending || s == ActionStateSettling
}
