package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/brewlog/internal/analytics"
	"github.com/h4ks-com/brewlog/internal/middleware"
	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/h4ks-com/brewlog/internal/services"
)

type InventoryHandler struct {
	inventoryService *services.InventoryService
}

func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

type LotRequest struct {
	CoffeeBeanID    uint     `json:"coffee_bean_id" binding:"required"`
	QuantityGrams   *float64 `json:"quantity_grams" binding:"required,gte=0"`
	PurchaseDate    string   `json:"purchase_date" binding:"omitempty,isodate"`
	RoastDate       string   `json:"roast_date" binding:"omitempty,isodate"`
	ExpiryDate      string   `json:"expiry_date" binding:"omitempty,isodate"`
	StorageLocation string   `json:"storage_location" binding:"max=100"`
	Notes           string   `json:"notes"`
}

type AdjustRequest struct {
	Adjustment *float64 `json:"adjustment" binding:"required"`
	Reason     string   `json:"reason" binding:"max=200"`
}

type LotResponse struct {
	ID              uint    `json:"id"`
	CoffeeBeanID    uint    `json:"coffee_bean_id"`
	BeanName        string  `json:"bean_name,omitempty"`
	QuantityGrams   float64 `json:"quantity_grams"`
	PurchaseDate    *string `json:"purchase_date"`
	RoastDate       *string `json:"roast_date"`
	ExpiryDate      *string `json:"expiry_date"`
	StorageLocation string  `json:"storage_location"`
	Notes           string  `json:"notes"`
	CreatedAt       string  `json:"created_at"`
}

type AdjustResponse struct {
	Lot     LotResponse `json:"lot"`
	Clamped bool        `json:"clamped"`
}

func (r LotRequest) input() services.LotInput {
	return services.LotInput{
		CoffeeBeanID:    r.CoffeeBeanID,
		QuantityGrams:   r.QuantityGrams,
		PurchaseDate:    r.PurchaseDate,
		RoastDate:       r.RoastDate,
		ExpiryDate:      r.ExpiryDate,
		StorageLocation: r.StorageLocation,
		Notes:           r.Notes,
	}
}

func newLotResponse(l models.InventoryLot) LotResponse {
	return LotResponse{
		ID:              l.ID,
		CoffeeBeanID:    l.CoffeeBeanID,
		BeanName:        l.CoffeeBean.Name,
		QuantityGrams:   l.QuantityGrams,
		PurchaseDate:    optionalDate(l.PurchaseDate),
		RoastDate:       optionalDate(l.RoastDate),
		ExpiryDate:      optionalDate(l.ExpiryDate),
		StorageLocation: l.StorageLocation,
		Notes:           l.Notes,
		CreatedAt:       l.CreatedAt.UTC().Format(timestampLayout),
	}
}

func lotResponses(lots []models.InventoryLot) []LotResponse {
	out := make([]LotResponse, len(lots))
	for i, l := range lots {
		out[i] = newLotResponse(l)
	}
	return out
}

// ListLots godoc
// @Summary List inventory lots
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {array} LotResponse
// @Router /inventory [get]
func (h *InventoryHandler) ListLots(c *gin.Context) {
	lots, err := h.inventoryService.List(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lotResponses(lots))
}

// CreateLot godoc
// @Summary Add inventory lot
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body LotRequest true "Lot"
// @Success 201 {object} LotResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventory [post]
func (h *InventoryHandler) CreateLot(c *gin.Context) {
	var req LotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	lot, err := h.inventoryService.Create(middleware.GetUserID(c), req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newLotResponse(*lot))
}

// GetLot godoc
// @Summary Get inventory lot
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lot ID"
// @Success 200 {object} LotResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventory/{id} [get]
func (h *InventoryHandler) GetLot(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	lot, err := h.inventoryService.Get(middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newLotResponse(*lot))
}

// UpdateLot godoc
// @Summary Update inventory lot
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lot ID"
// @Param request body LotRequest true "Lot"
// @Success 200 {object} LotResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventory/{id} [put]
func (h *InventoryHandler) UpdateLot(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req LotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	lot, err := h.inventoryService.Update(middleware.GetUserID(c), id, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newLotResponse(*lot))
}

// DeleteLot godoc
// @Summary Delete inventory lot
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lot ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventory/{id} [delete]
func (h *InventoryHandler) DeleteLot(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	if err := h.inventoryService.Delete(middleware.GetUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "inventory lot deleted"})
}

// AdjustLot godoc
// @Summary Adjust lot quantity
// @Description Apply a signed gram delta. The quantity is clamped at zero and clamped reports whether that happened.
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lot ID"
// @Param request body AdjustRequest true "Adjustment"
// @Success 200 {object} AdjustResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventory/{id}/adjust [post]
func (h *InventoryHandler) AdjustLot(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	res, err := h.inventoryService.Adjust(middleware.GetUserID(c), id, *req.Adjustment, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, AdjustResponse{Lot: newLotResponse(*res.Lot), Clamped: res.Clamped})
}

// Summary godoc
// @Summary Inventory summary
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} analytics.InventorySummary
// @Router /inventory/summary [get]
func (h *InventoryHandler) Summary(c *gin.Context) {
	summary, err := h.inventoryService.Summary(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// LowStock godoc
// @Summary Low-stock beans
// @Description Beans with lots whose combined stock is under 500 g, smallest first
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {array} analytics.BeanStock
// @Router /inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *gin.Context) {
	stock, err := h.inventoryService.LowStock(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stock)
}

// ByOrigin godoc
// @Summary Inventory by origin
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {array} analytics.OriginRollup
// @Router /inventory/by-origin [get]
func (h *InventoryHandler) ByOrigin(c *gin.Context) {
	rollup, err := h.inventoryService.ByOrigin(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if rollup == nil {
		rollup = []analytics.OriginRollup{}
	}
	c.JSON(http.StatusOK, rollup)
}

// ByBean godoc
// @Summary Lots of one bean
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bean ID"
// @Success 200 {array} LotResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventory/bean/{id} [get]
func (h *InventoryHandler) ByBean(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	lots, err := h.inventoryService.ListByBean(middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lotResponses(lots))
}
