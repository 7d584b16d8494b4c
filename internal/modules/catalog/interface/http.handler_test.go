package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"mesaYaApi/internal/modules/catalog/application/usecase"
	"mesaYaApi/internal/modules/catalog/domain"
	"mesaYaApi/internal/modules/catalog/infrastructure"
	"mesaYaApi/internal/shared/auth"
	"mesaYaApi/internal/shared/httputil"
)

func newTestServer(t *testing.T) (*echo.Echo, *auth.JWTManager) {
	t.Helper()
	repo := infrastructure.NewMemoryRestaurantRepository(infrastructure.SeedRestaurants())
	catalog := usecase.NewCatalogUseCase(repo, nil, nil)

	manager := auth.NewJWTManager("test-secret", time.Hour)
	e := echo.New()
	e.Validator = httputil.NewEchoValidator()
	NewCatalogHandler(catalog).Register(e.Group("/api"), auth.RequireSession(manager, nil))
	return e, manager
}

func TestCatalogHandler_List(t *testing.T) {
	t.Parallel()

	e, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/restaurants", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var restaurants []domain.Restaurant
	if err := json.Unmarshal(rec.Body.Bytes(), &restaurants); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if len(restaurants) != 8 {
		t.Fatalf("expected 8 restaurants, got %d", len(restaurants))
	}
}

func TestCatalogHandler_ListFiltered(t *testing.T) {
	t.Parallel()

	e, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/restaurants?cuisine=Italiana&price=$$$", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var restaurants []domain.Restaurant
	if err := json.Unmarshal(rec.Body.Bytes(), &restaurants); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	for _, r := range restaurants {
		if r.Cuisine != "Italiana" || r.PriceLevel != 3 {
			t.Fatalf("unexpected result: %+v", r)
		}
	}
}

func TestCatalogHandler_GetUnknownID(t *testing.T) {
	t.Parallel()

	e, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/999", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCatalogHandler_CreateRequiresSession(t *testing.T) {
	t.Parallel()

	e, _ := newTestServer(t)
	body := `{"name":"Nova Mesa","cuisine":"Fusion","priceLevel":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/restaurants", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestCatalogHandler_Create(t *testing.T) {
	t.Parallel()

	e, manager := newTestServer(t)
	token, err := manager.Issue("user-5", []string{"user"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := `{"name":"Nova Mesa","cuisine":"Fusion","priceLevel":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/restaurants", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created domain.Restaurant
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if created.OwnerID != "user-5" {
		t.Fatalf("expected owner from claims, got %q", created.OwnerID)
	}
	if created.Rating != 0 {
		t.Fatalf("expected zero rating, got %v", created.Rating)
	}
}

func TestCatalogHandler_CreateValidatesBody(t *testing.T) {
	t.Parallel()

	e, manager := newTestServer(t)
	token, err := manager.Issue("user-5", []string{"user"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := `{"name":"Nova Mesa","cuisine":"Fusion","priceLevel":9}`
	req := httptest.NewRequest(http.MethodPost, "/api/restaurants", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCatalogHandler_UpdateRejectsNonOwner(t *testing.T) {
	t.Parallel()

	e, manager := newTestServer(t)
	token, err := manager.Issue("user-9", []string{"user"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Restaurant 1 belongs to owner "1".
	body := `{"name":"Hijacked"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/restaurants/1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestCatalogHandler_UpdateByOwner(t *testing.T) {
	t.Parallel()

	e, manager := newTestServer(t)
	token, err := manager.Issue("1", []string{"admin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := `{"name":"Bella Italia Ristorante"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/restaurants/1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var updated domain.Restaurant
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if updated.Name != "Bella Italia Ristorante" {
		t.Fatalf("unexpected name: %q", updated.Name)
	}
}
