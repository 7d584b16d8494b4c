package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Status is the reservation lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

// ErrInvalidTransition rejects any move the transition table does not allow,
// including re-canceling an already canceled reservation.
var ErrInvalidTransition = errors.New("invalid status transition")

// transitions is the full table: pending may confirm or cancel, confirmed may
// only cancel, canceled is terminal.
var transitions = map[Status]map[Status]struct{}{
	StatusPending: {
		StatusConfirmed: {},
		StatusCanceled:  {},
	},
	StatusConfirmed: {
		StatusCanceled: {},
	},
	StatusCanceled: {},
}

// ParseStatus normalizes a textual status, reporting whether it is one of the
// three known states.
func ParseStatus(raw string) (Status, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusPending:
		return StatusPending, true
	case StatusConfirmed:
		return StatusConfirmed, true
	case StatusCanceled:
		return StatusCanceled, true
	}
	return "", false
}

// CanTransition reports whether from may move to to.
func CanTransition(from, to Status) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// Transition validates the move and returns a typed error naming both states
// when the table forbids it.
func Transition(from, to Status) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}
