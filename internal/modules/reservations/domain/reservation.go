package domain

import "time"

// Reservation is a booking request against a restaurant. Restaurant name and
// image are denormalized at creation so listings render without catalog
// lookups. Version grows by one on every mutation and backs the optimistic
// concurrency check on status changes.
type Reservation struct {
	ID              string    `json:"id"`
	RestaurantID    string    `json:"restaurantId"`
	RestaurantName  string    `json:"restaurantName"`
	RestaurantImage string    `json:"restaurantImage"`
	CustomerID      string    `json:"customerId,omitempty"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	StartsAt        time.Time `json:"startsAt"`
	PartySize       int       `json:"partySize"`
	Status          Status    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	CustomerName    string    `json:"customerName,omitempty"`
	CustomerEmail   string    `json:"customerEmail,omitempty"`
	CustomerPhone   string    `json:"customerPhone,omitempty"`
	Version         int       `json:"version"`
}

// Stats aggregates a restaurant's reservations for the admin dashboard.
type Stats struct {
	Total          int `json:"total"`
	Pending        int `json:"pending"`
	Confirmed      int `json:"confirmed"`
	Canceled       int `json:"canceled"`
	ConfirmedToday int `json:"confirmedToday"`
}
