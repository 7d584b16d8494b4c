package domain

import (
	"errors"
	"testing"
)

func TestTransition(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed, allowed: true},
		{name: "pending to canceled", from: StatusPending, to: StatusCanceled, allowed: true},
		{name: "confirmed to canceled", from: StatusConfirmed, to: StatusCanceled, allowed: true},
		{name: "confirmed to pending", from: StatusConfirmed, to: StatusPending, allowed: false},
		{name: "canceled to pending", from: StatusCanceled, to: StatusPending, allowed: false},
		{name: "canceled to confirmed", from: StatusCanceled, to: StatusConfirmed, allowed: false},
		{name: "canceled to canceled", from: StatusCanceled, to: StatusCanceled, allowed: false},
		{name: "pending to pending", from: StatusPending, to: StatusPending, allowed: false},
		{name: "unknown source", from: Status("waitlisted"), to: StatusConfirmed, allowed: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTransition(tc.from, tc.to); got != tc.allowed {
				t.Fatalf("expected %v, got %v", tc.allowed, got)
			}
			err := Transition(tc.from, tc.to)
			if tc.allowed {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		input    string
		expected Status
		ok       bool
	}{
		{name: "pending", input: "pending", expected: StatusPending, ok: true},
		{name: "uppercase", input: "CONFIRMED", expected: StatusConfirmed, ok: true},
		{name: "padded", input: " canceled ", expected: StatusCanceled, ok: true},
		{name: "unknown", input: "delayed", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, ok := ParseStatus(tc.input)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if ok && status != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, status)
			}
		})
	}
}
