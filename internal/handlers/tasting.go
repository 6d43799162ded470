package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/brewlog/internal/middleware"
	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/h4ks-com/brewlog/internal/services"
)

type TastingHandler struct {
	tastingService *services.TastingService
}

func NewTastingHandler(tastingService *services.TastingService) *TastingHandler {
	return &TastingHandler{tastingService: tastingService}
}

type TastingRequest struct {
	CoffeeBeanID     uint     `json:"coffee_bean_id" binding:"required"`
	BrewMethod       string   `json:"brew_method" binding:"max=50"`
	GrindSize        string   `json:"grind_size" binding:"max=50"`
	WaterTemp        *float64 `json:"water_temp" binding:"omitempty,gte=1,lte=212"`
	BrewTime         *int     `json:"brew_time" binding:"omitempty,gte=0"`
	AromaRating      *int     `json:"aroma_rating" binding:"omitempty,min=1,max=10"`
	AcidityRating    *int     `json:"acidity_rating" binding:"omitempty,min=1,max=10"`
	BodyRating       *int     `json:"body_rating" binding:"omitempty,min=1,max=10"`
	FlavorRating     *int     `json:"flavor_rating" binding:"omitempty,min=1,max=10"`
	AftertasteRating *int     `json:"aftertaste_rating" binding:"omitempty,min=1,max=10"`
	OverallRating    *int     `json:"overall_rating" binding:"required,min=1,max=10"`
	Notes            string   `json:"notes"`
	TastingDate      string   `json:"tasting_date" binding:"omitempty,isodate"`
}

type TastingResponse struct {
	ID               uint     `json:"id"`
	CoffeeBeanID     uint     `json:"coffee_bean_id"`
	BeanName         string   `json:"bean_name,omitempty"`
	BeanOrigin       string   `json:"bean_origin,omitempty"`
	BrewMethod       string   `json:"brew_method"`
	GrindSize        string   `json:"grind_size"`
	WaterTemp        *float64 `json:"water_temp"`
	BrewTime         *int     `json:"brew_time"`
	AromaRating      *int     `json:"aroma_rating"`
	AcidityRating    *int     `json:"acidity_rating"`
	BodyRating       *int     `json:"body_rating"`
	FlavorRating     *int     `json:"flavor_rating"`
	AftertasteRating *int     `json:"aftertaste_rating"`
	OverallRating    int      `json:"overall_rating"`
	Notes            string   `json:"notes"`
	TastingDate      string   `json:"tasting_date"`
}

func (r TastingRequest) input() services.TastingInput {
	return services.TastingInput{
		CoffeeBeanID:     r.CoffeeBeanID,
		BrewMethod:       r.BrewMethod,
		GrindSize:        r.GrindSize,
		WaterTemp:        r.WaterTemp,
		BrewTime:         r.BrewTime,
		AromaRating:      r.AromaRating,
		AcidityRating:    r.AcidityRating,
		BodyRating:       r.BodyRating,
		FlavorRating:     r.FlavorRating,
		AftertasteRating: r.AftertasteRating,
		OverallRating:    r.OverallRating,
		Notes:            r.Notes,
		TastingDate:      r.TastingDate,
	}
}

func newTastingResponse(n models.TastingNote) TastingResponse {
	return TastingResponse{
		ID:               n.ID,
		CoffeeBeanID:     n.CoffeeBeanID,
		BeanName:         n.CoffeeBean.Name,
		BeanOrigin:       n.CoffeeBean.Origin,
		BrewMethod:       n.BrewMethod,
		GrindSize:        n.GrindSize,
		WaterTemp:        n.WaterTemp,
		BrewTime:         n.BrewTime,
		AromaRating:      n.AromaRating,
		AcidityRating:    n.AcidityRating,
		BodyRating:       n.BodyRating,
		FlavorRating:     n.FlavorRating,
		AftertasteRating: n.AftertasteRating,
		OverallRating:    n.OverallRating,
		Notes:            n.Notes,
		TastingDate:      date(n.TastingDate),
	}
}

func tastingResponses(notes []models.TastingNote) []TastingResponse {
	out := make([]TastingResponse, len(notes))
	for i, n := range notes {
		out[i] = newTastingResponse(n)
	}
	return out
}

// ListTastings godoc
// @Summary List tasting notes
// @Tags tastings
// @Produce json
// @Security BearerAuth
// @Param coffee_bean_id query int false "Only notes for this bean"
// @Success 200 {array} TastingResponse
// @Router /tastings [get]
func (h *TastingHandler) ListTastings(c *gin.Context) {
	beanID, ok := queryUint(c, "coffee_bean_id")
	if !ok {
		return
	}
	notes, err := h.tastingService.List(middleware.GetUserID(c), beanID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tastingResponses(notes))
}

// CreateTasting godoc
// @Summary Record a tasting
// @Description tasting_date defaults to today
// @Tags tastings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TastingRequest true "Tasting"
// @Success 201 {object} TastingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tastings [post]
func (h *TastingHandler) CreateTasting(c *gin.Context) {
	var req TastingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	note, err := h.tastingService.Create(middleware.GetUserID(c), req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newTastingResponse(*note))
}

// GetTasting godoc
// @Summary Get tasting note
// @Tags tastings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tasting ID"
// @Success 200 {object} TastingResponse
// @Failure 404 {object} ErrorResponse
// @Router /tastings/{id} [get]
func (h *TastingHandler) GetTasting(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	note, err := h.tastingService.Get(middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTastingResponse(*note))
}

// UpdateTasting godoc
// @Summary Update tasting note
// @Tags tastings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tasting ID"
// @Param request body TastingRequest true "Tasting"
// @Success 200 {object} TastingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tastings/{id} [put]
func (h *TastingHandler) UpdateTasting(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req TastingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	note, err := h.tastingService.Update(middleware.GetUserID(c), id, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTastingResponse(*note))
}

// DeleteTasting godoc
// @Summary Delete tasting note
// @Tags tastings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tasting ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /tastings/{id} [delete]
func (h *TastingHandler) DeleteTasting(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	if err := h.tastingService.Delete(middleware.GetUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "tasting note deleted"})
}

// Stats godoc
// @Summary Tasting statistics
// @Tags tastings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.TastingStats
// @Router /tastings/stats [get]
func (h *TastingHandler) Stats(c *gin.Context) {
	stats, err := h.tastingService.Stats(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// TopRated godoc
// @Summary Top-rated tastings
// @Tags tastings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum rows (default 10)"
// @Success 200 {array} TastingResponse
// @Router /tastings/top-rated [get]
func (h *TastingHandler) TopRated(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	notes, err := h.tastingService.TopRated(middleware.GetUserID(c), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tastingResponses(notes))
}

// Range godoc
// @Summary Tastings in a date range
// @Tags tastings
// @Produce json
// @Security BearerAuth
// @Param start_date query string true "Inclusive start (YYYY-MM-DD)"
// @Param end_date query string true "Inclusive end (YYYY-MM-DD)"
// @Success 200 {array} TastingResponse
// @Failure 400 {object} ErrorResponse
// @Router /tastings/range [get]
func (h *TastingHandler) Range(c *gin.Context) {
	notes, err := h.tastingService.Range(middleware.GetUserID(c), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tastingResponses(notes))
}

// ByBean godoc
// @Summary Tastings of one bean
// @Tags tastings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bean ID"
// @Success 200 {array} TastingResponse
// @Failure 404 {object} ErrorResponse
// @Router /tastings/bean/{id} [get]
func (h *TastingHandler) ByBean(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	notes, err := h.tastingService.ListByBean(middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tastingResponses(notes))
}
