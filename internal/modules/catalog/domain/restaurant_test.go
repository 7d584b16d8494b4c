package domain

import (
	"errors"
	"testing"
)

func TestCreateRestaurantCommand_Validate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		cmd     CreateRestaurantCommand
		wantErr bool
	}{
		{name: "valid", cmd: CreateRestaurantCommand{Name: "Bella Italia", PriceLevel: 3}},
		{name: "blank name", cmd: CreateRestaurantCommand{Name: "   ", PriceLevel: 2}, wantErr: true},
		{name: "price too low", cmd: CreateRestaurantCommand{Name: "x", PriceLevel: 0}, wantErr: true},
		{name: "price too high", cmd: CreateRestaurantCommand{Name: "x", PriceLevel: 5}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cmd.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("expected ErrValidation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestUpdateRestaurantCommand_Apply(t *testing.T) {
	t.Parallel()

	restaurant := &Restaurant{
		ID:          "1",
		Name:        "Bella Italia",
		Description: "old description",
		Cuisine:     "Italiana",
		PriceLevel:  3,
		Featured:    true,
	}

	name := "Bella Italia Ristorante"
	price := 4
	featured := false
	cmd := UpdateRestaurantCommand{Name: &name, PriceLevel: &price, Featured: &featured}
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cmd.Apply(restaurant)

	if restaurant.Name != name {
		t.Fatalf("expected name %q, got %q", name, restaurant.Name)
	}
	if restaurant.PriceLevel != 4 {
		t.Fatalf("expected price level 4, got %d", restaurant.PriceLevel)
	}
	if restaurant.Featured {
		t.Fatal("expected featured cleared")
	}
	if restaurant.Description != "old description" {
		t.Fatalf("unset field changed: %q", restaurant.Description)
	}
	if restaurant.Cuisine != "Italiana" {
		t.Fatalf("unset field changed: %q", restaurant.Cuisine)
	}
}

func TestUpdateRestaurantCommand_ValidateRejectsBlankName(t *testing.T) {
	t.Parallel()

	blank := "  "
	cmd := UpdateRestaurantCommand{Name: &blank}
	if err := cmd.Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
