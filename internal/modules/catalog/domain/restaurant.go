package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation wraps every field validation failure raised before a mutation.
var ErrValidation = errors.New("validation failed")

// OpeningHours is the daily opening/closing time-of-day pair.
type OpeningHours struct {
	Opens  string `json:"opens"`
	Closes string `json:"closes"`
}

// Restaurant is a catalog record. Rating stays 0 until reviews exist and
// PriceLevel is the 1-4 tier shown as $ to $$$$.
type Restaurant struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Image        string       `json:"image"`
	Cuisine      string       `json:"cuisine"`
	Rating       float64      `json:"rating"`
	PriceLevel   int          `json:"priceLevel"`
	Address      string       `json:"address"`
	Phone        string       `json:"phone"`
	OpeningHours OpeningHours `json:"openingHours"`
	Featured     bool         `json:"featured,omitempty"`
	OwnerID      string       `json:"ownerId,omitempty"`
}

// CreateRestaurantCommand carries the fields an owner supplies when opening a
// new restaurant. ID and rating are assigned by the catalog.
type CreateRestaurantCommand struct {
	Name         string
	Description  string
	Image        string
	Cuisine      string
	PriceLevel   int
	Address      string
	Phone        string
	OpeningHours OpeningHours
	Featured     bool
	OwnerID      string
}

func (c *CreateRestaurantCommand) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if c.PriceLevel < 1 || c.PriceLevel > 4 {
		return fmt.Errorf("%w: price level must be between 1 and 4", ErrValidation)
	}
	return nil
}

// UpdateRestaurantCommand merges the non-nil fields into an existing record.
type UpdateRestaurantCommand struct {
	Name         *string
	Description  *string
	Image        *string
	Cuisine      *string
	PriceLevel   *int
	Address      *string
	Phone        *string
	OpeningHours *OpeningHours
	Featured     *bool
}

func (c *UpdateRestaurantCommand) Validate() error {
	if c.Name != nil && strings.TrimSpace(*c.Name) == "" {
		return fmt.Errorf("%w: name must not be blank", ErrValidation)
	}
	if c.PriceLevel != nil && (*c.PriceLevel < 1 || *c.PriceLevel > 4) {
		return fmt.Errorf("%w: price level must be between 1 and 4", ErrValidation)
	}
	return nil
}

// Apply copies the set fields of the command onto the restaurant.
func (c *UpdateRestaurantCommand) Apply(r *Restaurant) {
	if c.Name != nil {
		r.Name = *c.Name
	}
	if c.Description != nil {
		r.Description = *c.Description
	}
	if c.Image != nil {
		r.Image = *c.Image
	}
	if c.Cuisine != nil {
		r.Cuisine = *c.Cuisine
	}
	if c.PriceLevel != nil {
		r.PriceLevel = *c.PriceLevel
	}
	if c.Address != nil {
		r.Address = *c.Address
	}
	if c.Phone != nil {
		r.Phone = *c.Phone
	}
	if c.OpeningHours != nil {
		r.OpeningHours = *c.OpeningHours
	}
	if c.Featured != nil {
		r.Featured = *c.Featured
	}
}
