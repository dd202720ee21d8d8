package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestObserveRequestExported(t *testing.T) {
	m := NewHTTPMetrics()
	m.ObserveRequest(http.MethodGet, "/getProductData", http.StatusOK, 25*time.Millisecond)
	m.ObserveRequest(http.MethodPost, "/postProduct", http.StatusBadRequest, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	if !strings.Contains(body, `http_requests_total{method="GET",route="/getProductData",status="2xx"} 1`) {
		t.Fatalf("missing success counter in exposition:\n%s", body)
	}
	if !strings.Contains(body, `http_requests_total{method="POST",route="/postProduct",status="4xx"} 1`) {
		t.Fatalf("missing client error counter in exposition:\n%s", body)
	}
	if !strings.Contains(body, "http_request_duration_seconds_bucket") {
		t.Fatalf("missing duration histogram in exposition")
	}
}

func TestNilReceiverIsSafe(t *testing.T) {
	var m *HTTPMetrics
	m.ObserveRequest(http.MethodGet, "", http.StatusOK, time.Millisecond)
	m.IncInFlight()
	m.DecInFlight()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 from nil metrics handler, got %d", rec.Code)
	}
}
