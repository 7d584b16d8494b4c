package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mesaYaApi/internal/modules/catalog/application/port"
	"mesaYaApi/internal/modules/catalog/application/usecase"
	"mesaYaApi/internal/modules/catalog/domain"
	"mesaYaApi/internal/shared/auth"
	"mesaYaApi/internal/shared/httputil"
)

type createRestaurantRequest struct {
	Name         string              `json:"name" validate:"required"`
	Description  string              `json:"description"`
	Image        string              `json:"image"`
	Cuisine      string              `json:"cuisine" validate:"required"`
	PriceLevel   int                 `json:"priceLevel" validate:"required,min=1,max=4"`
	Address      string              `json:"address"`
	Phone        string              `json:"phone"`
	OpeningHours domain.OpeningHours `json:"openingHours"`
	Featured     bool                `json:"featured"`
}

type updateRestaurantRequest struct {
	Name         *string              `json:"name"`
	Description  *string              `json:"description"`
	Image        *string              `json:"image"`
	Cuisine      *string              `json:"cuisine"`
	PriceLevel   *int                 `json:"priceLevel" validate:"omitempty,min=1,max=4"`
	Address      *string              `json:"address"`
	Phone        *string              `json:"phone"`
	OpeningHours *domain.OpeningHours `json:"openingHours"`
	Featured     *bool                `json:"featured"`
}

// CatalogHandler exposes the restaurant discovery and management endpoints.
type CatalogHandler struct {
	catalog *usecase.CatalogUseCase
	errors  *httputil.ErrorMapper
}

func NewCatalogHandler(catalog *usecase.CatalogUseCase) *CatalogHandler {
	mapper := httputil.NewErrorMapper().
		WithMapping(port.ErrNotFound, http.StatusNotFound, "restaurant not found").
		WithMapping(domain.ErrValidation, http.StatusBadRequest, "invalid restaurant data").
		WithMapping(usecase.ErrOwnerHasRestaurant, http.StatusConflict, "owner already administers a restaurant")
	return &CatalogHandler{catalog: catalog, errors: mapper}
}

// Register mounts the catalog routes. Mutations require a session.
func (h *CatalogHandler) Register(g *echo.Group, session echo.MiddlewareFunc) {
	g.GET("/restaurants", h.list)
	g.GET("/restaurants/featured", h.listFeatured)
	g.GET("/restaurants/:id", h.get)
	g.GET("/restaurants/owner/:ownerId", h.getByOwner)
	g.POST("/restaurants", h.create, session)
	g.PATCH("/restaurants/:id", h.update, session)
}

func (h *CatalogHandler) fail(c echo.Context, err error) error {
	info := h.errors.Map(err)
	return echo.NewHTTPError(info.Status, info.Message)
}

// list answers both the plain listing and filtered discovery queries; with no
// filters supplied the full catalog comes back in insertion order.
func (h *CatalogHandler) list(c echo.Context) error {
	query := domain.SearchQuery{
		Text:    c.QueryParam("q"),
		Cuisine: c.QueryParam("cuisine"),
		Price:   c.QueryParam("price"),
	}
	restaurants, err := h.catalog.Search(c.Request().Context(), query)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, restaurants)
}

func (h *CatalogHandler) listFeatured(c echo.Context) error {
	restaurants, err := h.catalog.ListFeatured(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, restaurants)
}

func (h *CatalogHandler) get(c echo.Context) error {
	restaurant, err := h.catalog.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, restaurant)
}

func (h *CatalogHandler) getByOwner(c echo.Context) error {
	restaurant, err := h.catalog.GetByOwner(c.Request().Context(), c.Param("ownerId"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, restaurant)
}

func (h *CatalogHandler) create(c echo.Context) error {
	claims := auth.ClaimsFromEcho(c)
	req := new(createRestaurantRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	restaurant, err := h.catalog.Create(c.Request().Context(), domain.CreateRestaurantCommand{
		Name:         req.Name,
		Description:  req.Description,
		Image:        req.Image,
		Cuisine:      req.Cuisine,
		PriceLevel:   req.PriceLevel,
		Address:      req.Address,
		Phone:        req.Phone,
		OpeningHours: req.OpeningHours,
		Featured:     req.Featured,
		OwnerID:      claims.RegisteredClaims.Subject,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, restaurant)
}

func (h *CatalogHandler) update(c echo.Context) error {
	claims := auth.ClaimsFromEcho(c)
	id := c.Param("id")

	existing, err := h.catalog.Get(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	if existing.OwnerID == "" || existing.OwnerID != claims.RegisteredClaims.Subject {
		return echo.NewHTTPError(http.StatusForbidden, "not the restaurant owner")
	}

	req := new(updateRestaurantRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	restaurant, err := h.catalog.Update(c.Request().Context(), id, domain.UpdateRestaurantCommand{
		Name:         req.Name,
		Description:  req.Description,
		Image:        req.Image,
		Cuisine:      req.Cuisine,
		PriceLevel:   req.PriceLevel,
		Address:      req.Address,
		Phone:        req.Phone,
		OpeningHours: req.OpeningHours,
		Featured:     req.Featured,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, restaurant)
}
