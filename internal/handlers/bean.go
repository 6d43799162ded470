package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/brewlog/internal/analytics"
	"github.com/h4ks-com/brewlog/internal/middleware"
	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/h4ks-com/brewlog/internal/repository"
	"github.com/h4ks-com/brewlog/internal/services"
)

type BeanHandler struct {
	beanService *services.BeanService
}

func NewBeanHandler(beanService *services.BeanService) *BeanHandler {
	return &BeanHandler{beanService: beanService}
}

type BeanRequest struct {
	Name          string   `json:"name" binding:"required,max=200"`
	Origin        string   `json:"origin" binding:"max=100"`
	RoastLevel    string   `json:"roast_level" binding:"omitempty,roastlevel"`
	ProcessMethod string   `json:"process_method"`
	Altitude      string   `json:"altitude"`
	Varietal      string   `json:"varietal"`
	Description   string   `json:"description"`
	Supplier      string   `json:"supplier"`
	PhotoURL      string   `json:"photo_url" binding:"omitempty,url"`
	BuyingDate    string   `json:"buying_date" binding:"omitempty,isodate"`
	BuyingPlace   string   `json:"buying_place"`
	BuyingPrice   *float64 `json:"buying_price" binding:"omitempty,gte=0"`
	Currency      string   `json:"currency" binding:"omitempty,currency"`
	AmountGrams   *float64 `json:"amount_grams" binding:"omitempty,gte=0"`
	RoastDate     string   `json:"roast_date" binding:"omitempty,isodate"`
	BestByDate    string   `json:"best_by_date" binding:"omitempty,isodate"`
}

type BeanResponse struct {
	ID             uint     `json:"id"`
	Name           string   `json:"name"`
	Origin         string   `json:"origin"`
	RoastLevel     string   `json:"roast_level"`
	ProcessMethod  string   `json:"process_method"`
	Altitude       string   `json:"altitude"`
	Varietal       string   `json:"varietal"`
	Description    string   `json:"description"`
	Supplier       string   `json:"supplier"`
	PhotoURL       string   `json:"photo_url"`
	BuyingDate     *string  `json:"buying_date"`
	BuyingPlace    string   `json:"buying_place"`
	BuyingPrice    *float64 `json:"buying_price"`
	Currency       string   `json:"currency"`
	AmountGrams    *float64 `json:"amount_grams"`
	RoastDate      *string  `json:"roast_date"`
	BestByDate     *string  `json:"best_by_date"`
	PricePerGram   float64  `json:"price_per_gram"`
	TotalCost      float64  `json:"total_cost"`
	CupsBrewed     int      `json:"cups_brewed"`
	CostPerCup     float64  `json:"cost_per_cup"`
	TotalInventory float64  `json:"total_inventory"`
	LotCount       int64    `json:"lot_count"`
	TastingCount   int64    `json:"tasting_count"`
	AvgRating      *float64 `json:"avg_rating"`
	IsLowStock     bool     `json:"is_low_stock"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

func (r BeanRequest) input() services.BeanInput {
	return services.BeanInput{
		Name:          r.Name,
		Origin:        r.Origin,
		RoastLevel:    r.RoastLevel,
		ProcessMethod: r.ProcessMethod,
		Altitude:      r.Altitude,
		Varietal:      r.Varietal,
		Description:   r.Description,
		Supplier:      r.Supplier,
		PhotoURL:      r.PhotoURL,
		BuyingDate:    r.BuyingDate,
		BuyingPlace:   r.BuyingPlace,
		BuyingPrice:   r.BuyingPrice,
		Currency:      r.Currency,
		AmountGrams:   r.AmountGrams,
		RoastDate:     r.RoastDate,
		BestByDate:    r.BestByDate,
	}
}

func newBeanResponse(b models.BeanSummary) BeanResponse {
	return BeanResponse{
		ID:             b.ID,
		Name:           b.Name,
		Origin:         b.Origin,
		RoastLevel:     string(b.RoastLevel),
		ProcessMethod:  b.ProcessMethod,
		Altitude:       b.Altitude,
		Varietal:       b.Varietal,
		Description:    b.Description,
		Supplier:       b.Supplier,
		PhotoURL:       b.PhotoURL,
		BuyingDate:     optionalDate(b.BuyingDate),
		BuyingPlace:    b.BuyingPlace,
		BuyingPrice:    nullMoney(b.BuyingPrice),
		Currency:       string(b.Currency),
		AmountGrams:    b.AmountGrams,
		RoastDate:      optionalDate(b.RoastDate),
		BestByDate:     optionalDate(b.BestByDate),
		PricePerGram:   money(b.PricePerGram),
		TotalCost:      money(b.TotalCost),
		CupsBrewed:     b.CupsBrewed,
		CostPerCup:     money(b.CostPerCup),
		TotalInventory: b.TotalInventory,
		LotCount:       b.LotCount,
		TastingCount:   b.TastingCount,
		AvgRating:      b.AvgRating,
		IsLowStock:     analytics.IsLowStock(b.TotalInventory),
		CreatedAt:      b.CreatedAt.UTC().Format(timestampLayout),
		UpdatedAt:      b.UpdatedAt.UTC().Format(timestampLayout),
	}
}

// ListBeans godoc
// @Summary List coffee beans
// @Description List the caller's beans, newest first, with inventory and tasting aggregates
// @Tags beans
// @Produce json
// @Security BearerAuth
// @Param roast_level query string false "Roast level filter"
// @Param origin query string false "Origin substring filter (case-insensitive)"
// @Success 200 {array} BeanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /beans [get]
func (h *BeanHandler) ListBeans(c *gin.Context) {
	beans, err := h.beanService.List(middleware.GetUserID(c), repository.BeanFilter{
		RoastLevel: c.Query("roast_level"),
		Origin:     c.Query("origin"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]BeanResponse, len(beans))
	for i, b := range beans {
		response[i] = newBeanResponse(b)
	}
	c.JSON(http.StatusOK, response)
}

// CreateBean godoc
// @Summary Create coffee bean
// @Tags beans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BeanRequest true "Bean"
// @Success 201 {object} BeanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /beans [post]
func (h *BeanHandler) CreateBean(c *gin.Context) {
	var req BeanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	userID := middleware.GetUserID(c)
	bean, err := h.beanService.Create(userID, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondBean(c, http.StatusCreated, userID, bean.ID)
}

// GetBean godoc
// @Summary Get coffee bean
// @Tags beans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bean ID"
// @Success 200 {object} BeanResponse
// @Failure 404 {object} ErrorResponse
// @Router /beans/{id} [get]
func (h *BeanHandler) GetBean(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	h.respondBean(c, http.StatusOK, middleware.GetUserID(c), id)
}

// UpdateBean godoc
// @Summary Update coffee bean
// @Description Replace the editable fields. price_per_gram is recomputed and a currency change is applied to the bean's cost entries.
// @Tags beans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bean ID"
// @Param request body BeanRequest true "Bean"
// @Success 200 {object} BeanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /beans/{id} [put]
func (h *BeanHandler) UpdateBean(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req BeanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	userID := middleware.GetUserID(c)
	if _, err := h.beanService.Update(userID, id, req.input()); err != nil {
		respondError(c, err)
		return
	}
	h.respondBean(c, http.StatusOK, userID, id)
}

// DeleteBean godoc
// @Summary Delete coffee bean
// @Description Delete a bean with its lots, tastings, schedule, cost entries and brew logs
// @Tags beans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bean ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /beans/{id} [delete]
func (h *BeanHandler) DeleteBean(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	if err := h.beanService.Delete(middleware.GetUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "coffee bean deleted"})
}

func (h *BeanHandler) respondBean(c *gin.Context, status int, userID, id uint) {
	summary, err := h.beanService.Get(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, newBeanResponse(*summary))
}
