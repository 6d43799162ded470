package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/brewlog/internal/middleware"
	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/h4ks-com/brewlog/internal/services"
)

type BrewingLogHandler struct {
	brewLogService *services.BrewingLogService
}

func NewBrewingLogHandler(brewLogService *services.BrewingLogService) *BrewingLogHandler {
	return &BrewingLogHandler{brewLogService: brewLogService}
}

type BrewLogRequest struct {
	CoffeeBeanID uint    `json:"coffee_bean_id" binding:"required"`
	BrewDate     string  `json:"brew_date" binding:"omitempty,isodate"`
	BrewMethod   string  `json:"brew_method" binding:"max=50"`
	GramsUsed    float64 `json:"grams_used" binding:"required,gt=0"`
	CupsMade     *int    `json:"cups_made" binding:"omitempty,min=1"`
	Notes        string  `json:"notes"`
}

type BrewLogResponse struct {
	ID           uint    `json:"id"`
	CoffeeBeanID uint    `json:"coffee_bean_id"`
	BeanName     string  `json:"bean_name,omitempty"`
	BrewDate     string  `json:"brew_date"`
	BrewMethod   string  `json:"brew_method"`
	GramsUsed    float64 `json:"grams_used"`
	CupsMade     int     `json:"cups_made"`
	Notes        string  `json:"notes"`
}

func newBrewLogResponse(e models.BrewingLogEntry) BrewLogResponse {
	return BrewLogResponse{
		ID:           e.ID,
		CoffeeBeanID: e.CoffeeBeanID,
		BeanName:     e.CoffeeBean.Name,
		BrewDate:     date(e.BrewDate),
		BrewMethod:   e.BrewMethod,
		GramsUsed:    e.GramsUsed,
		CupsMade:     e.CupsMade,
		Notes:        e.Notes,
	}
}

// ListBrewLogs godoc
// @Summary List brewing log
// @Tags brewing-log
// @Produce json
// @Security BearerAuth
// @Param coffee_bean_id query int false "Only entries for this bean"
// @Param start_date query string false "Inclusive start (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end (YYYY-MM-DD)"
// @Success 200 {array} BrewLogResponse
// @Failure 400 {object} ErrorResponse
// @Router /brewing-log [get]
func (h *BrewingLogHandler) ListBrewLogs(c *gin.Context) {
	beanID, ok := queryUint(c, "coffee_bean_id")
	if !ok {
		return
	}
	entries, err := h.brewLogService.List(middleware.GetUserID(c), services.BrewLogListFilter{
		BeanID:    beanID,
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]BrewLogResponse, len(entries))
	for i, e := range entries {
		response[i] = newBrewLogResponse(e)
	}
	c.JSON(http.StatusOK, response)
}

// CreateBrewLog godoc
// @Summary Log a brew
// @Description Adds cups_made (default 1) to the bean's cups_brewed and recomputes cost_per_cup
// @Tags brewing-log
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BrewLogRequest true "Brew"
// @Success 201 {object} BrewLogResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /brewing-log [post]
func (h *BrewingLogHandler) CreateBrewLog(c *gin.Context) {
	var req BrewLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	entry, err := h.brewLogService.Create(middleware.GetUserID(c), services.BrewLogInput{
		CoffeeBeanID: req.CoffeeBeanID,
		BrewDate:     req.BrewDate,
		BrewMethod:   req.BrewMethod,
		GramsUsed:    req.GramsUsed,
		CupsMade:     req.CupsMade,
		Notes:        req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newBrewLogResponse(*entry))
}

// DeleteBrewLog godoc
// @Summary Delete brewing log entry
// @Tags brewing-log
// @Produce json
// @Security BearerAuth
// @Param id path int true "Brew log ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /brewing-log/{id} [delete]
func (h *BrewingLogHandler) DeleteBrewLog(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	if err := h.brewLogService.Delete(middleware.GetUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "brewing log entry deleted"})
}

// Stats godoc
// @Summary Brewing statistics
// @Tags brewing-log
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.BrewLogStats
// @Router /brewing-log/stats [get]
func (h *BrewingLogHandler) Stats(c *gin.Context) {
	stats, err := h.brewLogService.Stats(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Methods godoc
// @Summary Brew method breakdown
// @Tags brewing-log
// @Produce json
// @Security BearerAuth
// @Success 200 {array} services.MethodBreakdown
// @Router /brewing-log/methods [get]
func (h *BrewingLogHandler) Methods(c *gin.Context) {
	methods, err := h.brewLogService.Methods(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, methods)
}
