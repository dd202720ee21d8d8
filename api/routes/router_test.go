package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	pkgAuth "github.com/kisansetu/kisansetu-server/pkg/auth"
	"github.com/kisansetu/kisansetu-server/pkg/config"
	"github.com/kisansetu/kisansetu-server/pkg/enums"
	"github.com/kisansetu/kisansetu-server/pkg/logger"
	"github.com/kisansetu/kisansetu-server/pkg/metrics"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func testRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.JWT.Secret = "router-test-secret"
	cfg.JWT.Issuer = "kisansetu-test"
	cfg.JWT.ExpirationMinutes = 60

	logg := logger.New(logger.Options{ServiceName: "router-test", Output: io.Discard})

	return NewRouter(Deps{
		Config:      cfg,
		Logger:      logg,
		DBPinger:    okPinger{},
		HTTPMetrics: metrics.NewHTTPMetrics(),
	})
}

func TestHealthEndpoints(t *testing.T) {
	router := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "test", rec.Header().Get("X-KisanSetu-Env"))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpointExposed(t *testing.T) {
	router := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := testRouter(t)

	paths := []string{
		"/api/Cart/GetCart",
		"/api/Product/getProductData",
		"/api/Order/GetAllOrders",
		"/api/Customer/getCustomer",
	}
	for _, path := range paths {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestAdminRoutesRejectCustomerRole(t *testing.T) {
	router := testRouter(t)

	cfg := config.JWTConfig{Secret: "router-test-secret", Issuer: "kisansetu-test", ExpirationMinutes: 60}
	token, err := pkgAuth.MintAccessToken(cfg, time.Now(), pkgAuth.AccessTokenPayload{
		Email: "a@b.com",
		Role:  enums.RoleCustomer,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/Order/GetAllOrders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateOrderStatusAcceptsPost(t *testing.T) {
	router := testRouter(t)

	cfg := config.JWTConfig{Secret: "router-test-secret", Issuer: "kisansetu-test", ExpirationMinutes: 60}
	token, err := pkgAuth.MintAccessToken(cfg, time.Now(), pkgAuth.AccessTokenPayload{
		Email: "admin@b.com",
		Role:  enums.RoleAdmin,
	})
	require.NoError(t, err)

	// No order service wired; a routed request reaches the controller and
	// answers 500, while an unrouted verb would answer 405.
	req := httptest.NewRequest(http.MethodPost, "/api/Order/UpdateOrderStatus", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	req = httptest.NewRequest(http.MethodPut, "/api/Order/UpdateOrderStatus", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAuthRoutesAreOpen(t *testing.T) {
	router := testRouter(t)

	// No auth service wired; the controller answers 500 instead of 401,
	// proving the request cleared the auth middleware.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
