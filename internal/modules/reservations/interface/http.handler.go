package transport

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"mesaYaApi/internal/modules/reservations/application/port"
	"mesaYaApi/internal/modules/reservations/application/usecase"
	"mesaYaApi/internal/modules/reservations/domain"
	"mesaYaApi/internal/shared/auth"
	"mesaYaApi/internal/shared/httputil"
)

// OwnerResolver answers which restaurant an admin identity administers.
// Backed by the catalog; references stay by id only. An identity without a
// restaurant resolves to an empty id with no error.
type OwnerResolver interface {
	RestaurantFor(ctx context.Context, userID string) (string, error)
}

type createReservationRequest struct {
	RestaurantID    string `json:"restaurantId" validate:"required"`
	RestaurantName  string `json:"restaurantName"`
	RestaurantImage string `json:"restaurantImage"`
	Date            string `json:"date" validate:"required"`
	Time            string `json:"time" validate:"required"`
	PartySize       int    `json:"partySize" validate:"required,min=1"`
	Notes           string `json:"notes"`
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
}

type cancelReservationRequest struct {
	Version int `json:"version"`
}

type setStatusRequest struct {
	Status  string `json:"status" validate:"required"`
	Version int    `json:"version"`
}

// ReservationHandler exposes the booking and workflow endpoints.
type ReservationHandler struct {
	workflow *usecase.WorkflowUseCase
	owners   OwnerResolver
	errors   *httputil.ErrorMapper
}

func NewReservationHandler(workflow *usecase.WorkflowUseCase, owners OwnerResolver) *ReservationHandler {
	mapper := httputil.NewErrorMapper().
		WithMapping(port.ErrNotFound, http.StatusNotFound, "reservation not found").
		WithMapping(port.ErrVersionConflict, http.StatusConflict, "reservation changed since last read").
		WithMapping(domain.ErrInvalidTransition, http.StatusConflict, "status transition not allowed").
		WithMapping(domain.ErrValidation, http.StatusBadRequest, "invalid reservation data")
	return &ReservationHandler{workflow: workflow, owners: owners, errors: mapper}
}

// Register mounts the reservation routes. Everything requires a session;
// restaurant-scoped routes additionally require the admin role.
func (h *ReservationHandler) Register(g *echo.Group, session echo.MiddlewareFunc) {
	admin := auth.RequireRole(authRoleAdmin)
	g.POST("/reservations", h.create, session)
	g.GET("/reservations", h.listForCustomer, session)
	g.GET("/reservations/:id", h.get, session)
	g.POST("/reservations/:id/cancel", h.cancel, session)
	g.PATCH("/reservations/:id/status", h.setStatus, session, admin)
	g.GET("/restaurants/:id/reservations", h.listForRestaurant, session, admin)
	g.GET("/restaurants/:id/stats", h.stats, session, admin)
}

const authRoleAdmin = "admin"

func (h *ReservationHandler) fail(c echo.Context, err error) error {
	info := h.errors.Map(err)
	return echo.NewHTTPError(info.Status, info.Message)
}

func (h *ReservationHandler) create(c echo.Context) error {
	claims := auth.ClaimsFromEcho(c)
	req := new(createReservationRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	reservation, err := h.workflow.Create(c.Request().Context(), domain.CreateReservationCommand{
		RestaurantID:    req.RestaurantID,
		RestaurantName:  req.RestaurantName,
		RestaurantImage: req.RestaurantImage,
		CustomerID:      claims.RegisteredClaims.Subject,
		Date:            req.Date,
		Time:            req.Time,
		PartySize:       req.PartySize,
		Notes:           req.Notes,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, reservation)
}

func (h *ReservationHandler) listForCustomer(c echo.Context) error {
	claims := auth.ClaimsFromEcho(c)
	reservations, err := h.workflow.ListForCustomer(c.Request().Context(), claims.RegisteredClaims.Subject)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, reservations)
}

func (h *ReservationHandler) get(c echo.Context) error {
	claims := auth.ClaimsFromEcho(c)
	reservation, err := h.workflow.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	if reservation.CustomerID != claims.RegisteredClaims.Subject && !claims.HasRole(authRoleAdmin) {
		return echo.NewHTTPError(http.StatusForbidden, "not your reservation")
	}
	return c.JSON(http.StatusOK, reservation)
}

// cancel is allowed for the booking customer and for the admin of the
// reservation's restaurant.
func (h *ReservationHandler) cancel(c echo.Context) error {
	claims := auth.ClaimsFromEcho(c)
	id := c.Param("id")

	reservation, err := h.workflow.Get(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	if reservation.CustomerID != claims.RegisteredClaims.Subject {
		if err := h.requireRestaurantAdmin(c, claims, reservation.RestaurantID); err != nil {
			return err
		}
	}

	req := new(cancelReservationRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	reservation, err = h.workflow.Cancel(c.Request().Context(), id, req.Version)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, reservation)
}

func (h *ReservationHandler) setStatus(c echo.Context) error {
	claims := auth.ClaimsFromEcho(c)
	id := c.Param("id")

	req := new(setStatusRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	status, ok := domain.ParseStatus(req.Status)
	if !ok || status == domain.StatusPending {
		return echo.NewHTTPError(http.StatusBadRequest, "status must be confirmed or canceled")
	}

	reservation, err := h.workflow.Get(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.requireRestaurantAdmin(c, claims, reservation.RestaurantID); err != nil {
		return err
	}

	reservation, err = h.workflow.SetStatus(c.Request().Context(), id, status, req.Version)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, reservation)
}

func (h *ReservationHandler) listForRestaurant(c echo.Context) error {
	claims := auth.ClaimsFromEcho(c)
	restaurantID := c.Param("id")
	if err := h.requireRestaurantAdmin(c, claims, restaurantID); err != nil {
		return err
	}
	reservations, err := h.workflow.ListForRestaurant(c.Request().Context(), restaurantID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, reservations)
}

func (h *ReservationHandler) stats(c echo.Context) error {
	claims := auth.ClaimsFromEcho(c)
	restaurantID := c.Param("id")
	if err := h.requireRestaurantAdmin(c, claims, restaurantID); err != nil {
		return err
	}
	stats, err := h.workflow.Stats(c.Request().Context(), restaurantID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// requireRestaurantAdmin checks that the caller administers the restaurant.
func (h *ReservationHandler) requireRestaurantAdmin(c echo.Context, claims *auth.Claims, restaurantID string) error {
	if claims == nil || !claims.HasRole(authRoleAdmin) {
		return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
	}
	owned, err := h.owners.RestaurantFor(c.Request().Context(), claims.RegisteredClaims.Subject)
	if err != nil {
		return h.fail(c, err)
	}
	if owned == "" {
		return echo.NewHTTPError(http.StatusForbidden, "no restaurant for this identity")
	}
	if owned != restaurantID {
		return echo.NewHTTPError(http.StatusForbidden, "not the restaurant admin")
	}
	return nil
}
