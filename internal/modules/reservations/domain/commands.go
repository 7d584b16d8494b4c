package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrValidation wraps every field validation failure raised before a mutation.
var ErrValidation = errors.New("validation failed")

// MaxPartySize is the practical upper bound on guests per booking.
const MaxPartySize = 20

var dateLayouts = []string{"2006-01-02", "02/01/2006"}

const timeLayout = "15:04"

// CreateReservationCommand carries a customer booking request. Restaurant
// display fields are denormalized onto the record; the catalog is not
// consulted here.
type CreateReservationCommand struct {
	RestaurantID    string
	RestaurantName  string
	RestaurantImage string
	CustomerID      string
	Date            string
	Time            string
	PartySize       int
	Notes           string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
}

func (c *CreateReservationCommand) Validate() error {
	if strings.TrimSpace(c.RestaurantID) == "" {
		return fmt.Errorf("%w: restaurant reference is required", ErrValidation)
	}
	if strings.TrimSpace(c.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if strings.TrimSpace(c.Time) == "" {
		return fmt.Errorf("%w: time is required", ErrValidation)
	}
	if c.PartySize < 1 {
		return fmt.Errorf("%w: party size must be a positive integer", ErrValidation)
	}
	if c.PartySize > MaxPartySize {
		return fmt.Errorf("%w: party size must not exceed %d", ErrValidation, MaxPartySize)
	}
	if _, err := c.StartsAt(); err != nil {
		return err
	}
	return nil
}

// StartsAt combines the date and time fields into one canonical UTC instant
// so reservations sort chronologically and can be compared for conflicts.
func (c *CreateReservationCommand) StartsAt() (time.Time, error) {
	day, err := parseDate(c.Date)
	if err != nil {
		return time.Time{}, err
	}
	clock, err := time.Parse(timeLayout, strings.TrimSpace(c.Time))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: time must use the HH:MM format", ErrValidation)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC), nil
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if day, err := time.Parse(layout, raw); err == nil {
			return day, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: date must use the YYYY-MM-DD or DD/MM/YYYY format", ErrValidation)
}
