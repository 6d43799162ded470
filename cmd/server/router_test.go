package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/brewlog/internal/clock"
	"github.com/h4ks-com/brewlog/internal/config"
	"github.com/h4ks-com/brewlog/internal/database"
	"github.com/h4ks-com/brewlog/internal/handlers"
	"github.com/h4ks-com/brewlog/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

type testServer struct {
	t      *testing.T
	router http.Handler
	app    *app
}

func setupTestServer(t *testing.T, testMode bool) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		Timezone:         "UTC",
		TestMode:         testMode,
		AdminUsers:       []string{"admin"},
		JWT:              config.JWTConfig{Secret: "router-test-secret"},
		ExportSigningKey: "router-test-signing-key",
		CORS:             config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	a := newApp(cfg, db, clock.Fixed(testNow))
	return &testServer{
		t:      t,
		router: withCORS(newRouter(a), cfg.CORS.AllowedOrigins),
		app:    a,
	}
}

func (s *testServer) do(method, path, user string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("X-Test-Username", user)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (s *testServer) createBean(user string, body map[string]interface{}) handlers.BeanResponse {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/v1/beans", user, body)
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[handlers.BeanResponse](s.t, w)
}

func TestRouter_Health(t *testing.T) {
	s := setupTestServer(t, true)

	w := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[handlers.HealthResponse](t, w).Status)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestRouter_RequiresUser(t *testing.T) {
	s := setupTestServer(t, true)

	w := s.do(http.MethodGet, "/api/v1/beans", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_BeanLifecycle(t *testing.T) {
	s := setupTestServer(t, true)

	bean := s.createBean("alice", map[string]interface{}{
		"name":         "Yirgacheffe",
		"origin":       "Ethiopia",
		"roast_level":  "Light",
		"buying_price": 18.0,
		"currency":     "USD",
		"amount_grams": 250.0,
		"roast_date":   "2026-10-01",
	})
	assert.Equal(t, "Yirgacheffe", bean.Name)
	assert.InDelta(t, 0.072, bean.PricePerGram, 1e-9)
	require.NotNil(t, bean.RoastDate)
	assert.Equal(t, "2026-10-01", *bean.RoastDate)
	assert.True(t, bean.IsLowStock)

	w := s.do(http.MethodPost, "/api/v1/inventory", "alice", map[string]interface{}{
		"coffee_bean_id": bean.ID,
		"quantity_grams": 500.0,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	lot := decode[handlers.LotResponse](t, w)

	w = s.do(http.MethodPost, fmt.Sprintf("/api/v1/inventory/%d/adjust", lot.ID), "alice", map[string]interface{}{
		"adjustment": -1000.0,
		"reason":     "spilled",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	adjusted := decode[handlers.AdjustResponse](t, w)
	assert.True(t, adjusted.Clamped)
	assert.Equal(t, 0.0, adjusted.Lot.QuantityGrams)

	w = s.do(http.MethodGet, fmt.Sprintf("/api/v1/beans/%d", bean.ID), "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodPut, fmt.Sprintf("/api/v1/beans/%d", bean.ID), "alice", map[string]interface{}{
		"name":        "Yirgacheffe G1",
		"origin":      "Ethiopia",
		"roast_level": "Medium",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Medium", decode[handlers.BeanResponse](t, w).RoastLevel)

	w = s.do(http.MethodGet, "/api/v1/beans?roast_level=Medium", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]handlers.BeanResponse](t, w), 1)

	w = s.do(http.MethodDelete, fmt.Sprintf("/api/v1/beans/%d", bean.ID), "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, fmt.Sprintf("/api/v1/inventory/%d", lot.ID), "alice", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_ValidationErrors(t *testing.T) {
	s := setupTestServer(t, true)

	w := s.do(http.MethodPost, "/api/v1/beans", "alice", map[string]interface{}{
		"roast_level": "Blonde",
		"currency":    "EUR",
		"roast_date":  "16/10/2026",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[handlers.ErrorResponse](t, w)
	assert.Equal(t, "validation failed", resp.Error)

	fields := map[string]bool{}
	for _, f := range resp.Fields {
		fields[f.Field] = true
	}
	assert.True(t, fields["name"])
	assert.True(t, fields["roast_level"])
	assert.True(t, fields["currency"])
	assert.True(t, fields["roast_date"])

	w = s.do(http.MethodGet, "/api/v1/tastings/range?start_date=2026-10-10", "alice", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "end_date", decode[handlers.ErrorResponse](t, w).Fields[0].Field)
}

func TestRouter_OtherUsersRowsAreNotFound(t *testing.T) {
	s := setupTestServer(t, true)
	bean := s.createBean("alice", map[string]interface{}{"name": "Private Reserve"})

	w := s.do(http.MethodGet, fmt.Sprintf("/api/v1/beans/%d", bean.ID), "bob", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodPost, "/api/v1/tastings", "bob", map[string]interface{}{
		"coffee_bean_id": bean.ID,
		"overall_rating": 9,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodDelete, fmt.Sprintf("/api/v1/beans/%d", bean.ID), "bob", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/api/v1/beans", "bob", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]handlers.BeanResponse](t, w))
}

func TestRouter_ScheduleTransitions(t *testing.T) {
	s := setupTestServer(t, true)
	bean := s.createBean("alice", map[string]interface{}{"name": "Morning Blend"})

	w := s.do(http.MethodPost, "/api/v1/schedule", "alice", map[string]interface{}{
		"coffee_bean_id": bean.ID,
		"scheduled_date": "2026-10-17",
		"scheduled_time": "07:30",
		"brew_method":    "V60",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	entry := decode[handlers.ScheduleResponse](t, w)
	assert.Equal(t, "planned", entry.Status)

	update := map[string]interface{}{
		"coffee_bean_id": bean.ID,
		"scheduled_date": "2026-10-17",
		"status":         "skipped",
	}
	path := fmt.Sprintf("/api/v1/schedule/%d", entry.ID)
	w = s.do(http.MethodPut, path, "alice", update)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	update["status"] = "completed"
	w = s.do(http.MethodPut, path, "alice", update)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(http.MethodPost, path+"/reopen", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "planned", decode[handlers.ScheduleResponse](t, w).Status)

	w = s.do(http.MethodPut, path, "alice", update)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	completed := decode[handlers.ScheduleResponse](t, w)
	assert.Equal(t, "completed", completed.Status)
	assert.NotNil(t, completed.CompletedAt)

	w = s.do(http.MethodPost, path+"/reopen", "alice", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(http.MethodGet, "/api/v1/schedule/stats", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[services.ScheduleStats](t, w)
	assert.Equal(t, 1, stats.CompletedCount)
}

func TestRouter_CostAndBrewFlow(t *testing.T) {
	s := setupTestServer(t, true)
	bean := s.createBean("alice", map[string]interface{}{"name": "Huila", "origin": "Colombia", "currency": "HKD"})

	w := s.do(http.MethodPost, "/api/v1/cost", "alice", map[string]interface{}{
		"coffee_bean_id": bean.ID,
		"purchase_date":  "2026-10-02",
		"amount":         120.0,
		"quantity_grams": 500.0,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	cost := decode[handlers.CostEntryResponse](t, w)
	assert.Equal(t, "HKD", cost.Currency)
	assert.InDelta(t, 0.24, cost.CostPerGram, 1e-9)

	for _, cups := range []int{2, 4} {
		w = s.do(http.MethodPost, "/api/v1/brewing-log", "alice", map[string]interface{}{
			"coffee_bean_id": bean.ID,
			"brew_method":    "AeroPress",
			"grams_used":     17.0,
			"cups_made":      cups,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w = s.do(http.MethodGet, fmt.Sprintf("/api/v1/beans/%d", bean.ID), "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[handlers.BeanResponse](t, w)
	assert.Equal(t, 120.0, updated.TotalCost)
	assert.Equal(t, 6, updated.CupsBrewed)
	assert.Equal(t, 20.0, updated.CostPerCup)

	w = s.do(http.MethodGet, "/api/v1/cost/analysis", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	analysis := decode[[]handlers.CostAnalysisResponse](t, w)
	require.Len(t, analysis, 1)
	assert.Equal(t, 600.0, analysis[0].MonthlyCostAtOneCupPerDay)

	w = s.do(http.MethodGet, "/api/v1/cost/monthly/2026/10", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/v1/cost/monthly/2026/13", "alice", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/v1/brewing-log/methods", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	methods := decode[[]services.MethodBreakdown](t, w)
	require.Len(t, methods, 1)
	assert.Equal(t, 6, methods[0].TotalCups)

	w = s.do(http.MethodGet, "/api/v1/dashboard", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	dash := decode[handlers.DashboardResponse](t, w)
	assert.Equal(t, 1, dash.TotalBeans)
	assert.Equal(t, 120.0, dash.SpendByCurrency["HKD"])
}

func TestRouter_ExportRoundTrip(t *testing.T) {
	s := setupTestServer(t, true)
	s.createBean("alice", map[string]interface{}{"name": "Sumatra", "origin": "Indonesia"})

	w := s.do(http.MethodGet, "/api/v1/export", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	export := decode[services.JournalExport](t, w)
	require.Len(t, export.Beans, 1)

	w = s.do(http.MethodPost, "/api/v1/export/verify", "alice", export)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[handlers.VerifyExportResponse](t, w).Valid)

	export.Beans[0].Name = "Kopi Luwak"
	w = s.do(http.MethodPost, "/api/v1/export/verify", "alice", export)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[handlers.VerifyExportResponse](t, w).Valid)
}

func TestRouter_AdminUsers(t *testing.T) {
	s := setupTestServer(t, true)
	s.createBean("alice", map[string]interface{}{"name": "Kenya AA"})

	w := s.do(http.MethodGet, "/api/v1/admin/users", "alice", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodGet, "/api/v1/admin/users", "admin", nil)
	require.Equal(t, http.StatusOK, w.Code)
	users := decode[[]services.UserOverview](t, w)
	require.Len(t, users, 2)
}

func TestRouter_BearerTokens(t *testing.T) {
	s := setupTestServer(t, false)
	_, err := s.app.users.GetOrCreate("alice")
	require.NoError(t, err)
	token, _, err := s.app.tokens.GenerateToken("alice", time.Hour)
	require.NoError(t, err)

	bearer := func(method, path, tok string, body interface{}) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
		return w
	}

	w := s.do(http.MethodGet, "/api/v1/beans", "alice", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = bearer(http.MethodPost, "/api/v1/tokens", token, map[string]string{"expires_in": "7d"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[handlers.CreateTokenResponse](t, w)
	assert.Equal(t, testNow.Add(7*24*time.Hour).Format(time.RFC3339), created.ExpiresAt)

	w = bearer(http.MethodGet, "/api/v1/tokens", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]handlers.TokenListResponse](t, w), 2)

	w = bearer(http.MethodDelete, fmt.Sprintf("/api/v1/tokens/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = bearer(http.MethodGet, "/api/v1/beans", created.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = bearer(http.MethodPost, "/api/v1/tokens", token, map[string]string{"expires_in": "soon"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	s := setupTestServer(t, true)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/beans", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_MetricsAndSwagger(t *testing.T) {
	s := setupTestServer(t, true)
	s.do(http.MethodGet, "/health", "", nil)

	w := s.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "brewlog_http_requests_total")

	w = s.do(http.MethodGet, "/swagger/doc.json", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/beans/{id}")

	w = s.do(http.MethodGet, "/docs", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "swagger-ui")
	assert.Contains(t, w.Body.String(), "<code>/api/v1</code>")
	assert.Contains(t, w.Body.String(), "brewlog token -u")
}
