package usecase

import (
	"context"
	"errors"
	"testing"

	"mesaYaApi/internal/modules/realtime/application/port"
	"mesaYaApi/internal/shared/auth"
)

type stubValidator struct {
	claims *auth.Claims
	err    error
}

func (v *stubValidator) Validate(string) (*auth.Claims, error) {
	return v.claims, v.err
}

type stubSnapshots struct {
	snapshot any
	err      error
	entity   string
}

func (s *stubSnapshots) Snapshot(_ context.Context, entity, _ string) (any, error) {
	s.entity = entity
	return s.snapshot, s.err
}

func validClaims() *auth.Claims {
	claims := &auth.Claims{SessionID: "sid-1"}
	claims.RegisteredClaims.Subject = "user-1"
	return claims
}

func TestConnectUseCase_Execute(t *testing.T) {
	t.Parallel()

	snapshots := &stubSnapshots{snapshot: []string{"payload"}}
	uc := NewConnectUseCase(&stubValidator{claims: validClaims()}, snapshots)

	output, err := uc.Execute(context.Background(), ConnectInput{Token: "token", Entity: "reservations", RestaurantID: "1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Claims.SessionID != "sid-1" {
		t.Fatalf("unexpected claims: %+v", output.Claims)
	}
	if output.Snapshot == nil {
		t.Fatal("expected snapshot")
	}
	if snapshots.entity != "reservations" {
		t.Fatalf("unexpected entity passed to provider: %s", snapshots.entity)
	}
}

func TestConnectUseCase_ExecuteMissingInput(t *testing.T) {
	t.Parallel()

	uc := NewConnectUseCase(&stubValidator{claims: validClaims()}, nil)

	if _, err := uc.Execute(context.Background(), ConnectInput{Entity: "reservations", RestaurantID: "1"}); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), ConnectInput{Token: "token", Entity: "reservations"}); !errors.Is(err, ErrMissingRestaurant) {
		t.Fatalf("expected ErrMissingRestaurant, got %v", err)
	}
}

func TestConnectUseCase_ExecuteInvalidToken(t *testing.T) {
	t.Parallel()

	uc := NewConnectUseCase(&stubValidator{err: auth.ErrInvalidToken}, nil)
	if _, err := uc.Execute(context.Background(), ConnectInput{Token: "bad", Entity: "reservations", RestaurantID: "1"}); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestConnectUseCase_ExecuteToleratesUnsupportedSnapshot(t *testing.T) {
	t.Parallel()

	uc := NewConnectUseCase(&stubValidator{claims: validClaims()}, &stubSnapshots{err: port.ErrSnapshotUnsupported})
	output, err := uc.Execute(context.Background(), ConnectInput{Token: "token", Entity: "notifications", RestaurantID: "1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Snapshot != nil {
		t.Fatalf("expected no snapshot, got %v", output.Snapshot)
	}
}

func TestConnectUseCase_ExecutePropagatesSnapshotFailure(t *testing.T) {
	t.Parallel()

	uc := NewConnectUseCase(&stubValidator{claims: validClaims()}, &stubSnapshots{err: port.ErrSnapshotNotFound})
	if _, err := uc.Execute(context.Background(), ConnectInput{Token: "token", Entity: "restaurants", RestaurantID: "999"}); !errors.Is(err, port.ErrSnapshotNotFound) {
		t.Fatalf("expected ErrSnapshotNotFound, got %v", err)
	}
}
