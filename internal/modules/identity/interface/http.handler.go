package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mesaYaApi/internal/modules/identity/application/port"
	"mesaYaApi/internal/modules/identity/application/usecase"
	"mesaYaApi/internal/modules/identity/domain"
	"mesaYaApi/internal/shared/auth"
	"mesaYaApi/internal/shared/httputil"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Avatar  *string `json:"avatar"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Bio     *string `json:"bio"`
}

// SessionHandler exposes the auth and profile endpoints.
type SessionHandler struct {
	sessions *usecase.SessionUseCase
	errors   *httputil.ErrorMapper
}

func NewSessionHandler(sessions *usecase.SessionUseCase) *SessionHandler {
	mapper := httputil.NewErrorMapper().
		WithMapping(domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials").
		WithMapping(domain.ErrValidation, http.StatusBadRequest, "invalid profile data").
		WithMapping(port.ErrNoSession, http.StatusUnauthorized, "no active session").
		WithMapping(port.ErrUserNotFound, http.StatusNotFound, "user not found")
	return &SessionHandler{sessions: sessions, errors: mapper}
}

// Register mounts the auth routes under /auth.
func (h *SessionHandler) Register(g *echo.Group, session echo.MiddlewareFunc) {
	g.POST("/auth/login", h.login)
	g.POST("/auth/oauth/:provider", h.loginWithProvider)
	g.POST("/auth/register", h.register)
	g.POST("/auth/logout", h.logout, session)
	g.GET("/auth/me", h.current, session)
	g.PATCH("/auth/profile", h.updateProfile, session)
}

func (h *SessionHandler) fail(c echo.Context, err error) error {
	info := h.errors.Map(err)
	return echo.NewHTTPError(info.Status, info.Message)
}

func (h *SessionHandler) login(c echo.Context) error {
	req := new(loginRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	session, err := h.sessions.Login(c.Request().Context(), domain.LoginCommand{Email: req.Email, Password: req.Password})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) loginWithProvider(c echo.Context) error {
	session, err := h.sessions.LoginWithProvider(c.Request().Context(), c.Param("provider"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) register(c echo.Context) error {
	req := new(registerRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	session, err := h.sessions.Register(c.Request().Context(), domain.RegisterCommand{Name: req.Name, Email: req.Email, Password: req.Password})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, session)
}

func (h *SessionHandler) logout(c echo.Context) error {
	claims := auth.ClaimsFromEcho(c)
	if err := h.sessions.Logout(c.Request().Context(), claims.SessionID); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *SessionHandler) current(c echo.Context) error {
	claims := auth.ClaimsFromEcho(c)
	user, err := h.sessions.Current(c.Request().Context(), claims.SessionID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *SessionHandler) updateProfile(c echo.Context) error {
	claims := auth.ClaimsFromEcho(c)
	req := new(updateProfileRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	user, err := h.sessions.UpdateProfile(c.Request().Context(), claims.SessionID, domain.UpdateProfileCommand{
		Name:    req.Name,
		Email:   req.Email,
		Avatar:  req.Avatar,
		Phone:   req.Phone,
		Address: req.Address,
		Bio:     req.Bio,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, user)
}
