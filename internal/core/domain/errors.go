package domain

import "errors"

// ErrActionInFlight is returned when a submit is rejected because the same
// user already has the same action running. Each submit control is disabled
// for the duration of its request; a second concurrent attempt is a replay,
// not a new intent.
var ErrActionInFlight = errors.New("action already in progress")
