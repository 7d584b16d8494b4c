package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"mesaYaApi/internal/modules/identity/application/port"
	"mesaYaApi/internal/modules/identity/domain"
	"mesaYaApi/internal/shared/auth"
)

// Session bundles the identity with its freshly issued token.
type Session struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// SessionUseCase owns the current identity: login, registration, profile
// changes and the admin promotion triggered by restaurant creation.
// Credential checks are mock-grade: any non-empty pair passes.
type SessionUseCase struct {
	store  port.SessionStore
	issuer auth.TokenIssuer
	ttl    time.Duration
}

func NewSessionUseCase(store port.SessionStore, issuer auth.TokenIssuer, ttl time.Duration) *SessionUseCase {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionUseCase{store: store, issuer: issuer, ttl: ttl}
}

// demoUser mirrors the identity the mock backend hands out on every login.
func demoUser(email string) *domain.User {
	return &domain.User{
		ID:      "1",
		Name:    "João Silva",
		Email:   email,
		Avatar:  "https://i.pravatar.cc/150?img=3",
		Role:    domain.RoleUser,
		Phone:   "(11) 98765-4321",
		Address: "Rua das Flores, 123 - São Paulo",
		Bio:     "Apaixonado por gastronomia e boas experiências.",
	}
}

// Login accepts any non-empty credential pair and opens a session for the
// demo identity. A previously persisted identity with the same id keeps its
// role and restaurant link.
func (uc *SessionUseCase) Login(ctx context.Context, cmd domain.LoginCommand) (*Session, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	user := demoUser(strings.TrimSpace(cmd.Email))
	if existing, err := uc.store.LoadUser(ctx, user.ID); err == nil {
		user = existing
	}
	return uc.open(ctx, user)
}

// LoginWithProvider always succeeds and tags the identity with the provider.
func (uc *SessionUseCase) LoginWithProvider(ctx context.Context, providerID string) (*Session, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user := demoUser("joao.silva@exemplo.com")
	if existing, err := uc.store.LoadUser(ctx, user.ID); err == nil {
		user = existing
	}
	user.Provider = providerID
	slog.Info("oauth login", slog.String("provider", providerID), slog.String("userId", user.ID))
	return uc.open(ctx, user)
}

// Register creates and persists a fresh identity with the default user role.
func (uc *SessionUseCase) Register(ctx context.Context, cmd domain.RegisterCommand) (*Session, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	user := &domain.User{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(cmd.Name),
		Email: strings.TrimSpace(cmd.Email),
		Role:  domain.RoleUser,
	}
	return uc.open(ctx, user)
}

func (uc *SessionUseCase) open(ctx context.Context, user *domain.User) (*Session, error) {
	token, err := uc.issuer.Issue(user.ID, []string{string(user.Role)})
	if err != nil {
		return nil, err
	}
	sessionID, err := sessionIDFromToken(token)
	if err != nil {
		return nil, err
	}
	if err := uc.store.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	if err := uc.store.SaveToken(ctx, sessionID, user.ID, uc.ttl); err != nil {
		return nil, err
	}
	slog.Info("session opened", slog.String("userId", user.ID), slog.String("sessionId", sessionID), slog.String("role", string(user.Role)))
	return &Session{User: user, Token: token}, nil
}

// Logout clears the persisted session token. Always succeeds for a valid
// session id, even when the token entry is already gone.
func (uc *SessionUseCase) Logout(ctx context.Context, sessionID string) error {
	if err := uc.store.DeleteToken(ctx, sessionID); err != nil && !errors.Is(err, port.ErrNoSession) {
		return err
	}
	slog.Info("session closed", slog.String("sessionId", sessionID))
	return nil
}

// Current restores the persisted identity for the session, or reports the
// session's absence.
func (uc *SessionUseCase) Current(ctx context.Context, sessionID string) (*domain.User, error) {
	userID, err := uc.store.LookupToken(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.store.LoadUser(ctx, userID)
}

// UpdateProfile merges the set fields into the persisted identity.
func (uc *SessionUseCase) UpdateProfile(ctx context.Context, sessionID string, cmd domain.UpdateProfileCommand) (*domain.User, error) {
	user, err := uc.Current(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cmd.Apply(user)
	if err := uc.store.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// RolesFor reports the role currently persisted for the identity. Backs the
// session middleware so a token issued before a promotion still carries the
// admin role on the next request.
func (uc *SessionUseCase) RolesFor(ctx context.Context, userID string) ([]string, error) {
	user, err := uc.store.LoadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return []string{string(user.Role)}, nil
}

// PromoteToAdmin grants the administrative role scoped to exactly one
// restaurant. Invoked by the catalog when a restaurant creation completes.
func (uc *SessionUseCase) PromoteToAdmin(ctx context.Context, userID, restaurantID string) error {
	user, err := uc.store.LoadUser(ctx, userID)
	if err != nil {
		return err
	}
	user.Role = domain.RoleAdmin
	user.RestaurantID = restaurantID
	if err := uc.store.SaveUser(ctx, user); err != nil {
		return err
	}
	slog.Info("identity promoted", slog.String("userId", userID), slog.String("restaurantId", restaurantID))
	return nil
}

// sessionIDFromToken reads the sid claim back out of a freshly issued token
// without re-validating the signature.
func sessionIDFromToken(token string) (string, error) {
	claims := &auth.Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return "", err
	}
	if claims.SessionID == "" {
		return "", auth.ErrInvalidToken
	}
	return claims.SessionID, nil
}
