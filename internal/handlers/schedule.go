package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/brewlog/internal/middleware"
	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/h4ks-com/brewlog/internal/services"
)

type ScheduleHandler struct {
	scheduleService *services.ScheduleService
}

func NewScheduleHandler(scheduleService *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

type ScheduleRequest struct {
	CoffeeBeanID  uint   `json:"coffee_bean_id" binding:"required"`
	ScheduledDate string `json:"scheduled_date" binding:"required,isodate"`
	ScheduledTime string `json:"scheduled_time" binding:"omitempty,clock"`
	BrewMethod    string `json:"brew_method" binding:"max=50"`
	GrindSize     string `json:"grind_size" binding:"max=50"`
	WaterTemp     *int   `json:"water_temp" binding:"omitempty,gte=1,lte=212"`
	BrewTime      *int   `json:"brew_time" binding:"omitempty,gte=0"`
	Notes         string `json:"notes"`
	Status        string `json:"status" binding:"omitempty,oneof=planned completed cancelled skipped"`
}

type ScheduleResponse struct {
	ID            uint    `json:"id"`
	CoffeeBeanID  uint    `json:"coffee_bean_id"`
	BeanName      string  `json:"bean_name,omitempty"`
	ScheduledDate string  `json:"scheduled_date"`
	ScheduledTime string  `json:"scheduled_time"`
	BrewMethod    string  `json:"brew_method"`
	GrindSize     string  `json:"grind_size"`
	WaterTemp     *int    `json:"water_temp"`
	BrewTime      *int    `json:"brew_time"`
	Notes         string  `json:"notes"`
	Status        string  `json:"status"`
	CompletedAt   *string `json:"completed_at"`
}

func (r ScheduleRequest) input() services.ScheduleInput {
	return services.ScheduleInput{
		CoffeeBeanID:  r.CoffeeBeanID,
		ScheduledDate: r.ScheduledDate,
		ScheduledTime: r.ScheduledTime,
		BrewMethod:    r.BrewMethod,
		GrindSize:     r.GrindSize,
		WaterTemp:     r.WaterTemp,
		BrewTime:      r.BrewTime,
		Notes:         r.Notes,
		Status:        r.Status,
	}
}

func newScheduleResponse(e models.BrewingScheduleEntry) ScheduleResponse {
	resp := ScheduleResponse{
		ID:            e.ID,
		CoffeeBeanID:  e.CoffeeBeanID,
		BeanName:      e.CoffeeBean.Name,
		ScheduledDate: date(e.ScheduledDate),
		ScheduledTime: e.ScheduledTime,
		BrewMethod:    e.BrewMethod,
		GrindSize:     e.GrindSize,
		WaterTemp:     e.WaterTemp,
		BrewTime:      e.BrewTime,
		Notes:         e.Notes,
		Status:        string(e.Status),
	}
	if e.CompletedAt != nil {
		at := e.CompletedAt.UTC().Format(timestampLayout)
		resp.CompletedAt = &at
	}
	return resp
}

func scheduleResponses(entries []models.BrewingScheduleEntry) []ScheduleResponse {
	out := make([]ScheduleResponse, len(entries))
	for i, e := range entries {
		out[i] = newScheduleResponse(e)
	}
	return out
}

// ListSchedule godoc
// @Summary List brewing schedule
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param status query string false "planned, completed, cancelled or skipped"
// @Param start_date query string false "Inclusive start (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end (YYYY-MM-DD)"
// @Success 200 {array} ScheduleResponse
// @Failure 400 {object} ErrorResponse
// @Router /schedule [get]
func (h *ScheduleHandler) ListSchedule(c *gin.Context) {
	entries, err := h.scheduleService.List(middleware.GetUserID(c), services.ScheduleListFilter{
		Status:    c.Query("status"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, scheduleResponses(entries))
}

// CreateSchedule godoc
// @Summary Schedule a brew
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ScheduleRequest true "Schedule entry"
// @Success 201 {object} ScheduleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /schedule [post]
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	entry, err := h.scheduleService.Create(middleware.GetUserID(c), req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newScheduleResponse(*entry))
}

// GetSchedule godoc
// @Summary Get schedule entry
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Success 200 {object} ScheduleResponse
// @Failure 404 {object} ErrorResponse
// @Router /schedule/{id} [get]
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	entry, err := h.scheduleService.Get(middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newScheduleResponse(*entry))
}

// UpdateSchedule godoc
// @Summary Update schedule entry
// @Description A status change must be planned to completed, cancelled or skipped. Anything else is a 409.
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Param request body ScheduleRequest true "Schedule entry"
// @Success 200 {object} ScheduleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /schedule/{id} [put]
func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	entry, err := h.scheduleService.Update(middleware.GetUserID(c), id, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newScheduleResponse(*entry))
}

// ReopenSchedule godoc
// @Summary Reopen a cancelled or skipped brew
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Success 200 {object} ScheduleResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /schedule/{id}/reopen [post]
func (h *ScheduleHandler) ReopenSchedule(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	entry, err := h.scheduleService.Reopen(middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newScheduleResponse(*entry))
}

// DeleteSchedule godoc
// @Summary Delete schedule entry
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /schedule/{id} [delete]
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	if err := h.scheduleService.Delete(middleware.GetUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "schedule entry deleted"})
}

// Upcoming godoc
// @Summary Upcoming planned brews
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum rows (default 5)"
// @Success 200 {array} ScheduleResponse
// @Router /schedule/upcoming [get]
func (h *ScheduleHandler) Upcoming(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	entries, err := h.scheduleService.Upcoming(middleware.GetUserID(c), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, scheduleResponses(entries))
}

// Stats godoc
// @Summary Schedule statistics
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.ScheduleStats
// @Router /schedule/stats [get]
func (h *ScheduleHandler) Stats(c *gin.Context) {
	stats, err := h.scheduleService.Stats(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
