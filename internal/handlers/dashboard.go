package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/brewlog/internal/analytics"
	"github.com/h4ks-com/brewlog/internal/middleware"
	"github.com/h4ks-com/brewlog/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

type BeanOverviewResponse struct {
	ID             uint     `json:"id"`
	Name           string   `json:"name"`
	Origin         string   `json:"origin"`
	RoastLevel     string   `json:"roast_level"`
	Currency       string   `json:"currency"`
	PricePerGram   float64  `json:"price_per_gram"`
	TotalInventory float64  `json:"total_inventory"`
	TastingCount   int      `json:"tasting_count"`
	AvgRating      *float64 `json:"avg_rating"`
}

type DashboardResponse struct {
	TotalBeans      int                      `json:"total_beans"`
	TotalInventory  float64                  `json:"total_inventory"`
	TotalTastings   int                      `json:"total_tastings"`
	AverageRating   float64                  `json:"average_rating"`
	UniqueOrigins   int                      `json:"unique_origins"`
	LowStockCount   int                      `json:"low_stock_count"`
	MostExpensive   *BeanOverviewResponse    `json:"most_expensive"`
	HighestRated    *BeanOverviewResponse    `json:"highest_rated"`
	TopOrigins      []analytics.OriginCount  `json:"top_origins"`
	RecentBeans     []BeanOverviewResponse   `json:"recent_beans"`
	LowStockItems   []BeanOverviewResponse   `json:"low_stock_items"`
	FreshnessAlerts []FreshnessAlertResponse `json:"freshness_alerts"`
	UpcomingBrews   []ScheduleResponse       `json:"upcoming_brews"`
	SpendByCurrency map[string]float64       `json:"spend_by_currency"`
}

func newBeanOverviewResponse(b analytics.BeanOverview) BeanOverviewResponse {
	return BeanOverviewResponse{
		ID:             b.BeanID,
		Name:           b.Name,
		Origin:         b.Origin,
		RoastLevel:     string(b.RoastLevel),
		Currency:       string(b.Currency),
		PricePerGram:   money(b.PricePerGram),
		TotalInventory: b.TotalInventory,
		TastingCount:   b.TastingCount,
		AvgRating:      b.AvgRating,
	}
}

func overviewResponses(beans []analytics.BeanOverview) []BeanOverviewResponse {
	out := make([]BeanOverviewResponse, len(beans))
	for i, b := range beans {
		out[i] = newBeanOverviewResponse(b)
	}
	return out
}

func optionalOverview(b *analytics.BeanOverview) *BeanOverviewResponse {
	if b == nil {
		return nil
	}
	resp := newBeanOverviewResponse(*b)
	return &resp
}

// GetDashboard godoc
// @Summary Dashboard
// @Description Landing view: counts, averages, most expensive and highest rated beans, top origins, alerts and upcoming brews
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	d, err := h.dashboardService.Get(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{
		TotalBeans:      d.TotalBeans,
		TotalInventory:  d.TotalInventory,
		TotalTastings:   d.TotalTastings,
		AverageRating:   d.AverageRating,
		UniqueOrigins:   d.UniqueOrigins,
		LowStockCount:   d.LowStockCount,
		MostExpensive:   optionalOverview(d.MostExpensive),
		HighestRated:    optionalOverview(d.HighestRated),
		TopOrigins:      d.TopOrigins,
		RecentBeans:     overviewResponses(d.RecentBeans),
		LowStockItems:   overviewResponses(d.LowStockItems),
		FreshnessAlerts: freshnessAlertResponses(d.Alerts),
		UpcomingBrews:   scheduleResponses(d.UpcomingBrews),
		SpendByCurrency: moneyByCurrency(d.SpendByCurrency),
	})
}
