package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/brewlog/internal/middleware"
	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/h4ks-com/brewlog/internal/services"
)

type FreshnessHandler struct {
	freshnessService *services.FreshnessService
}

func NewFreshnessHandler(freshnessService *services.FreshnessService) *FreshnessHandler {
	return &FreshnessHandler{freshnessService: freshnessService}
}

type FreshnessAlertResponse struct {
	BeanID          uint    `json:"bean_id"`
	Name            string  `json:"name"`
	Origin          string  `json:"origin"`
	RoastLevel      string  `json:"roast_level"`
	RoastDate       *string `json:"roast_date"`
	BestByDate      *string `json:"best_by_date"`
	TotalInventory  float64 `json:"total_inventory"`
	FreshnessStatus string  `json:"freshness_status"`
	Priority        int     `json:"priority"`
	DaysUntilExpiry *int    `json:"days_until_expiry"`
	DaysSinceRoast  *int    `json:"days_since_roast"`
}

func newFreshnessAlertResponse(a services.FreshnessAlert) FreshnessAlertResponse {
	resp := FreshnessAlertResponse{
		BeanID:          a.BeanID,
		Name:            a.Name,
		Origin:          a.Origin,
		RoastLevel:      string(a.RoastLevel),
		TotalInventory:  a.TotalInventory,
		FreshnessStatus: string(a.Status),
		Priority:        a.Priority,
		DaysUntilExpiry: a.DaysUntilExpiry,
		DaysSinceRoast:  a.DaysSinceRoast,
	}
	if a.RoastDate != nil {
		d := a.RoastDate.Format(models.DateLayout)
		resp.RoastDate = &d
	}
	if a.BestByDate != nil {
		d := a.BestByDate.Format(models.DateLayout)
		resp.BestByDate = &d
	}
	return resp
}

func freshnessAlertResponses(alerts []services.FreshnessAlert) []FreshnessAlertResponse {
	out := make([]FreshnessAlertResponse, len(alerts))
	for i, a := range alerts {
		out[i] = newFreshnessAlertResponse(a)
	}
	return out
}

// Alerts godoc
// @Summary Freshness alerts
// @Description In-stock beans with a roast or best-by date, most urgent first
// @Tags freshness
// @Produce json
// @Security BearerAuth
// @Success 200 {array} FreshnessAlertResponse
// @Router /freshness/alerts [get]
func (h *FreshnessHandler) Alerts(c *gin.Context) {
	alerts, err := h.freshnessService.Alerts(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, freshnessAlertResponses(alerts))
}

// Summary godoc
// @Summary Freshness summary
// @Description Counts per freshness bucket over every bean with a date. Buckets overlap.
// @Tags freshness
// @Produce json
// @Security BearerAuth
// @Success 200 {object} freshness.Summary
// @Router /freshness/summary [get]
func (h *FreshnessHandler) Summary(c *gin.Context) {
	summary, err := h.freshnessService.Summary(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
