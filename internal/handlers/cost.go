package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/brewlog/internal/analytics"
	"github.com/h4ks-com/brewlog/internal/middleware"
	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/h4ks-com/brewlog/internal/services"
)

type CostHandler struct {
	costService *services.CostService
}

func NewCostHandler(costService *services.CostService) *CostHandler {
	return &CostHandler{costService: costService}
}

type CostRequest struct {
	CoffeeBeanID  uint     `json:"coffee_bean_id" binding:"required"`
	PurchaseDate  string   `json:"purchase_date" binding:"required,isodate"`
	Amount        *float64 `json:"amount" binding:"required,gte=0"`
	QuantityGrams float64  `json:"quantity_grams" binding:"required,gt=0"`
	Notes         string   `json:"notes"`
}

type CostEntryResponse struct {
	ID            uint    `json:"id"`
	CoffeeBeanID  uint    `json:"coffee_bean_id"`
	BeanName      string  `json:"bean_name,omitempty"`
	PurchaseDate  string  `json:"purchase_date"`
	Amount        float64 `json:"amount"`
	QuantityGrams float64 `json:"quantity_grams"`
	CostPerGram   float64 `json:"cost_per_gram"`
	Currency      string  `json:"currency"`
	Notes         string  `json:"notes"`
}

type CostAnalysisResponse struct {
	BeanID                    uint    `json:"bean_id"`
	Name                      string  `json:"name"`
	Origin                    string  `json:"origin"`
	Currency                  string  `json:"currency"`
	TotalCost                 float64 `json:"total_cost"`
	CupsBrewed                int     `json:"cups_brewed"`
	CostPerCup                float64 `json:"cost_per_cup"`
	CalculatedCostPerCup      float64 `json:"calculated_cost_per_cup"`
	MonthlyCostAtOneCupPerDay float64 `json:"monthly_cost_at_one_cup_per_day"`
}

type ROIResponse struct {
	BeanID                 uint    `json:"bean_id"`
	Name                   string  `json:"name"`
	Origin                 string  `json:"origin"`
	Currency               string  `json:"currency"`
	TotalCost              float64 `json:"total_cost"`
	CupsBrewed             int     `json:"cups_brewed"`
	CostPerCup             float64 `json:"cost_per_cup"`
	CostPercentageOfTotal  float64 `json:"cost_percentage_of_total"`
	PremiumOverStandardCup float64 `json:"premium_over_standard_cup"`
}

type MonthlyBeanSpendResponse struct {
	BeanID         uint    `json:"bean_id"`
	BeanName       string  `json:"bean_name"`
	Origin         string  `json:"origin"`
	Currency       string  `json:"currency"`
	TotalSpent     float64 `json:"total_spent"`
	TotalGrams     float64 `json:"total_grams"`
	AvgCostPerGram float64 `json:"avg_cost_per_gram"`
	Purchases      int     `json:"purchases"`
}

type MonthlySpendingResponse struct {
	Year             int                        `json:"year"`
	Month            int                        `json:"month"`
	Beans            []MonthlyBeanSpendResponse `json:"beans"`
	TotalsByCurrency map[string]float64         `json:"totals_by_currency"`
}

type monthParams struct {
	Year  int `uri:"year" binding:"required"`
	Month int `uri:"month" binding:"required"`
}

func newCostEntryResponse(e models.CostEntry) CostEntryResponse {
	return CostEntryResponse{
		ID:            e.ID,
		CoffeeBeanID:  e.CoffeeBeanID,
		BeanName:      e.CoffeeBean.Name,
		PurchaseDate:  date(e.PurchaseDate),
		Amount:        money(e.Amount),
		QuantityGrams: e.QuantityGrams,
		CostPerGram:   money(e.CostPerGram),
		Currency:      string(e.Currency),
		Notes:         e.Notes,
	}
}

// ListCosts godoc
// @Summary List cost entries
// @Tags cost
// @Produce json
// @Security BearerAuth
// @Param coffee_bean_id query int false "Only entries for this bean"
// @Param start_date query string false "Inclusive start (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end (YYYY-MM-DD)"
// @Success 200 {array} CostEntryResponse
// @Failure 400 {object} ErrorResponse
// @Router /cost [get]
func (h *CostHandler) ListCosts(c *gin.Context) {
	beanID, ok := queryUint(c, "coffee_bean_id")
	if !ok {
		return
	}
	entries, err := h.costService.List(middleware.GetUserID(c), services.CostListFilter{
		BeanID:    beanID,
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]CostEntryResponse, len(entries))
	for i, e := range entries {
		response[i] = newCostEntryResponse(e)
	}
	c.JSON(http.StatusOK, response)
}

// CreateCost godoc
// @Summary Record a purchase
// @Description Adds the amount to the bean's total_cost and recomputes cost_per_cup. The entry takes the bean's currency.
// @Tags cost
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CostRequest true "Cost entry"
// @Success 201 {object} CostEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cost [post]
func (h *CostHandler) CreateCost(c *gin.Context) {
	var req CostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	entry, err := h.costService.Create(middleware.GetUserID(c), services.CostInput{
		CoffeeBeanID:  req.CoffeeBeanID,
		PurchaseDate:  req.PurchaseDate,
		Amount:        req.Amount,
		QuantityGrams: req.QuantityGrams,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newCostEntryResponse(*entry))
}

// DeleteCost godoc
// @Summary Delete cost entry
// @Tags cost
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cost entry ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /cost/{id} [delete]
func (h *CostHandler) DeleteCost(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	if err := h.costService.Delete(middleware.GetUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "cost entry deleted"})
}

// Analysis godoc
// @Summary Cost per cup analysis
// @Description Beans with recorded spend, most expensive cup first
// @Tags cost
// @Produce json
// @Security BearerAuth
// @Success 200 {array} CostAnalysisResponse
// @Router /cost/analysis [get]
func (h *CostHandler) Analysis(c *gin.Context) {
	rows, err := h.costService.Analysis(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]CostAnalysisResponse, len(rows))
	for i, r := range rows {
		response[i] = CostAnalysisResponse{
			BeanID:                    r.BeanID,
			Name:                      r.Name,
			Origin:                    r.Origin,
			Currency:                  string(r.Currency),
			TotalCost:                 money(r.TotalCost),
			CupsBrewed:                r.CupsBrewed,
			CostPerCup:                money(r.CostPerCup),
			CalculatedCostPerCup:      money(r.CalculatedCostPerCup),
			MonthlyCostAtOneCupPerDay: money(r.MonthlyCostAtOneCupPerDay),
		}
	}
	c.JSON(http.StatusOK, response)
}

// ROI godoc
// @Summary Premium over a standard cup
// @Description Cost per cup compared with a 0.50 reference cup, as a percentage
// @Tags cost
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ROIResponse
// @Router /cost/roi [get]
func (h *CostHandler) ROI(c *gin.Context) {
	rows, err := h.costService.ROI(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]ROIResponse, len(rows))
	for i, r := range rows {
		response[i] = ROIResponse{
			BeanID:                 r.BeanID,
			Name:                   r.Name,
			Origin:                 r.Origin,
			Currency:               string(r.Currency),
			TotalCost:              money(r.TotalCost),
			CupsBrewed:             r.CupsBrewed,
			CostPerCup:             money(r.CostPerCup),
			CostPercentageOfTotal:  money(r.CostPercentageOfTotal),
			PremiumOverStandardCup: money(r.PremiumOverStandardCup),
		}
	}
	c.JSON(http.StatusOK, response)
}

// Monthly godoc
// @Summary Monthly spending
// @Description Purchases in one calendar month grouped by bean. Totals are per currency.
// @Tags cost
// @Produce json
// @Security BearerAuth
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} MonthlySpendingResponse
// @Failure 400 {object} ErrorResponse
// @Router /cost/monthly/{year}/{month} [get]
func (h *CostHandler) Monthly(c *gin.Context) {
	var p monthParams
	if err := c.ShouldBindUri(&p); err != nil {
		respondBindError(c, err)
		return
	}
	report, err := h.costService.MonthlySpending(middleware.GetUserID(c), p.Year, p.Month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newMonthlySpendingResponse(report))
}

func newMonthlySpendingResponse(r *analytics.MonthlySpendingReport) MonthlySpendingResponse {
	beans := make([]MonthlyBeanSpendResponse, len(r.Beans))
	for i, b := range r.Beans {
		beans[i] = MonthlyBeanSpendResponse{
			BeanID:         b.BeanID,
			BeanName:       b.BeanName,
			Origin:         b.Origin,
			Currency:       string(b.Currency),
			TotalSpent:     money(b.TotalSpent),
			TotalGrams:     b.TotalGrams,
			AvgCostPerGram: money(b.AvgCostPerGram),
			Purchases:      b.Purchases,
		}
	}
	return MonthlySpendingResponse{
		Year:             r.Year,
		Month:            int(r.Month),
		Beans:            beans,
		TotalsByCurrency: moneyByCurrency(r.TotalsByCurrency),
	}
}
