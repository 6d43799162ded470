package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/brewlog/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	RegisterValidators()
}

func serve(t *testing.T, method, path, body string, h gin.HandlerFunc, route string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, h)
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRespondError(t *testing.T) {
	verr := &services.ValidationError{}
	verr.Add("grams_used", "must be greater than 0")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "validation", err: verr, wantStatus: http.StatusBadRequest, wantError: "validation failed"},
		{name: "bean not found", err: services.ErrBeanNotFound, wantStatus: http.StatusNotFound, wantError: "coffee bean not found"},
		{name: "wrapped not found", err: fmt.Errorf("load lot: %w", services.ErrLotNotFound), wantStatus: http.StatusNotFound, wantError: "inventory lot not found"},
		{name: "transition", err: services.ErrInvalidTransition, wantStatus: http.StatusConflict, wantError: "invalid status transition"},
		{name: "unexpected", err: errors.New("disk on fire"), wantStatus: http.StatusInternalServerError, wantError: "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, http.MethodGet, "/x", "", func(c *gin.Context) { respondError(c, tt.err) }, "/x")
			assert.Equal(t, tt.wantStatus, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantError, resp.Error)
			assert.NotContains(t, w.Body.String(), "disk on fire")
		})
	}
}

func TestBindingValidators(t *testing.T) {
	bind := func(c *gin.Context) {
		var req ScheduleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}

	tests := []struct {
		name       string
		body       string
		wantFields []string
	}{
		{
			name: "valid",
			body: `{"coffee_bean_id":1,"scheduled_date":"2026-10-20","scheduled_time":"06:45","status":"planned"}`,
		},
		{
			name:       "bad date and clock",
			body:       `{"coffee_bean_id":1,"scheduled_date":"2026-02-30","scheduled_time":"25:00"}`,
			wantFields: []string{"scheduled_date", "scheduled_time"},
		},
		{
			name:       "missing bean and unknown status",
			body:       `{"scheduled_date":"2026-10-20","status":"maybe"}`,
			wantFields: []string{"coffee_bean_id", "status"},
		},
		{
			name:       "water temp out of range",
			body:       `{"coffee_bean_id":1,"scheduled_date":"2026-10-20","water_temp":500}`,
			wantFields: []string{"water_temp"},
		},
		{
			name:       "malformed json",
			body:       `{"coffee_bean_id":`,
			wantFields: []string{"request"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, http.MethodPost, "/schedule", tt.body, bind, "/schedule")
			if tt.wantFields == nil {
				assert.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
				return
			}
			require.Equal(t, http.StatusBadRequest, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			got := make([]string, len(resp.Fields))
			for i, f := range resp.Fields {
				got[i] = f.Field
			}
			assert.ElementsMatch(t, tt.wantFields, got)
		})
	}
}

func TestBindID(t *testing.T) {
	h := func(c *gin.Context) {
		id, ok := bindID(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	}

	w := serve(t, http.MethodGet, "/beans/42", "", h, "/beans/:id")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":42}`, w.Body.String())

	w = serve(t, http.MethodGet, "/beans/abc", "", h, "/beans/:id")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(t, http.MethodGet, "/beans/0", "", h, "/beans/:id")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQueryUint(t *testing.T) {
	h := func(c *gin.Context) {
		v, ok := queryUint(c, "coffee_bean_id")
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"value": v})
	}

	w := serve(t, http.MethodGet, "/t", "", h, "/t")
	assert.JSONEq(t, `{"value":0}`, w.Body.String())

	w = serve(t, http.MethodGet, "/t?coffee_bean_id=7", "", h, "/t")
	assert.JSONEq(t, `{"value":7}`, w.Body.String())

	w = serve(t, http.MethodGet, "/t?coffee_bean_id=-1", "", h, "/t")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "coffee_bean_id")
}

func TestSwaggerUIWithBearerFix(t *testing.T) {
	h := SwaggerUIWithBearerFix(DocsPage{SpecURL: "/swagger/doc.json", APIBase: "/api/v2"})
	w := serve(t, http.MethodGet, "/docs", "", h, "/docs")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, "<title>Brewlog API explorer</title>")
	assert.Contains(t, body, "<code>/api/v2</code>")
	assert.Contains(t, body, "POST /api/v2/tokens")
	assert.Contains(t, body, "X-Request-Id")
	assert.Contains(t, body, `"Bearer " + auth`)
	assert.Contains(t, body, "swagger\\/doc.json")
}
