package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mesaYaApi/internal/modules/identity/application/port"
	"mesaYaApi/internal/modules/identity/domain"
	"mesaYaApi/internal/modules/identity/infrastructure"
	"mesaYaApi/internal/shared/auth"
)

func newSessionUseCase() *SessionUseCase {
	store := infrastructure.NewMemorySessionStore()
	issuer := auth.NewJWTManager("test-secret", time.Hour)
	return NewSessionUseCase(store, issuer, time.Hour)
}

func TestSessionUseCase_Login(t *testing.T) {
	t.Parallel()

	uc := newSessionUseCase()
	session, err := uc.Login(context.Background(), domain.LoginCommand{Email: "joao@exemplo.com", Password: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Token == "" {
		t.Fatal("expected token")
	}
	if session.User.ID != "1" {
		t.Fatalf("expected demo identity, got %s", session.User.ID)
	}
	if session.User.Role != domain.RoleUser {
		t.Fatalf("expected user role, got %q", session.User.Role)
	}
}

func TestSessionUseCase_LoginRejectsEmptyCredentials(t *testing.T) {
	t.Parallel()

	uc := newSessionUseCase()
	cases := []struct {
		name string
		cmd  domain.LoginCommand
	}{
		{name: "empty email", cmd: domain.LoginCommand{Password: "secret"}},
		{name: "empty password", cmd: domain.LoginCommand{Email: "joao@exemplo.com"}},
		{name: "both empty", cmd: domain.LoginCommand{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Login(context.Background(), tc.cmd); !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestSessionUseCase_LoginKeepsPromotedIdentity(t *testing.T) {
	t.Parallel()

	uc := newSessionUseCase()
	ctx := context.Background()

	if _, err := uc.Login(ctx, domain.LoginCommand{Email: "joao@exemplo.com", Password: "secret"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.PromoteToAdmin(ctx, "1", "42"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	session, err := uc.Login(ctx, domain.LoginCommand{Email: "joao@exemplo.com", Password: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.User.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role preserved, got %q", session.User.Role)
	}
	if session.User.RestaurantID != "42" {
		t.Fatalf("expected restaurant link preserved, got %q", session.User.RestaurantID)
	}
}

func TestSessionUseCase_LoginWithProvider(t *testing.T) {
	t.Parallel()

	uc := newSessionUseCase()
	session, err := uc.LoginWithProvider(context.Background(), "google")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.User.Provider != "google" {
		t.Fatalf("expected provider tag, got %q", session.User.Provider)
	}

	if _, err := uc.LoginWithProvider(context.Background(), "  "); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSessionUseCase_RegisterAndCurrent(t *testing.T) {
	t.Parallel()

	uc := newSessionUseCase()
	ctx := context.Background()

	session, err := uc.Register(ctx, domain.RegisterCommand{Name: "Maria", Email: "maria@exemplo.com", Password: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.User.ID == "" || session.User.ID == "1" {
		t.Fatalf("expected fresh id, got %q", session.User.ID)
	}

	validator := auth.NewJWTManager("test-secret", time.Hour)
	claims, err := validator.Validate(session.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	current, err := uc.Current(ctx, claims.SessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if current.ID != session.User.ID {
		t.Fatalf("expected %s, got %s", session.User.ID, current.ID)
	}
}

func TestSessionUseCase_LogoutClosesSession(t *testing.T) {
	t.Parallel()

	uc := newSessionUseCase()
	ctx := context.Background()

	session, err := uc.Login(ctx, domain.LoginCommand{Email: "joao@exemplo.com", Password: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	validator := auth.NewJWTManager("test-secret", time.Hour)
	claims, err := validator.Validate(session.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := uc.Logout(ctx, claims.SessionID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Current(ctx, claims.SessionID); !errors.Is(err, port.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
	// A second logout for the same session stays silent.
	if err := uc.Logout(ctx, claims.SessionID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSessionUseCase_UpdateProfile(t *testing.T) {
	t.Parallel()

	uc := newSessionUseCase()
	ctx := context.Background()

	session, err := uc.Login(ctx, domain.LoginCommand{Email: "joao@exemplo.com", Password: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	validator := auth.NewJWTManager("test-secret", time.Hour)
	claims, err := validator.Validate(session.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	name := "João Pedro Silva"
	bio := "Crítico gastronômico amador."
	updated, err := uc.UpdateProfile(ctx, claims.SessionID, domain.UpdateProfileCommand{Name: &name, Bio: &bio})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != name || updated.Bio != bio {
		t.Fatalf("unexpected profile: %+v", updated)
	}

	current, err := uc.Current(ctx, claims.SessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if current.Name != name {
		t.Fatalf("profile change not persisted: %q", current.Name)
	}
}

func TestSessionUseCase_PromoteUnknownUser(t *testing.T) {
	t.Parallel()

	uc := newSessionUseCase()
	if err := uc.PromoteToAdmin(context.Background(), "ghost", "1"); !errors.Is(err, port.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
