package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/adapter/api"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/adapter/api/handler"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/adapter/api/router"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/domain/service"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/usecase"
)

func newTestServer() *echo.Echo {
	e := echo.New()
	e.Validator = api.NewValidator()

	router.SetupHealthRouter(e)

	// Public delivery estimate endpoint; the quote path never touches storage.
	deliveryUC := usecase.NewDeliveryUseCase(service.NewGeoService(), nil, nil)
	deliveryHandler := handler.NewDeliveryHandler(deliveryUC)
	e.GET("/v1/delivery/estimate", deliveryHandler.EstimateDistance)

	return e
}

func TestHealthCheck(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestDeliveryEstimateEndpoint(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/v1/delivery/estimate?from=400001&to=400050", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), "Mumbai traffic adjustment")
}

func TestDeliveryEstimateValidation(t *testing.T) {
	e := newTestServer()

	cases := []struct {
		name  string
		query string
	}{
		{"missing params", ""},
		{"short pincode", "?from=400&to=400050"},
		{"non-numeric pincode", "?from=4000A1&to=400050"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/delivery/estimate"+tc.query, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
		})
	}
}
