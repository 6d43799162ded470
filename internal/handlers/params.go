package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/h4ks-com/brewlog/internal/services"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const timestampLayout = time.RFC3339

type idParam struct {
	ID uint `uri:"id" binding:"required"`
}

func bindID(c *gin.Context) (uint, bool) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return p.ID, true
}

// queryUint reads an optional positive integer query parameter. A malformed
// value is reported as a validation error.
func queryUint(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		verr := &services.ValidationError{}
		verr.Add(name, "must be a positive integer")
		respondError(c, verr)
		return 0, false
	}
	return uint(v), true
}

func queryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		verr := &services.ValidationError{}
		verr.Add(name, "must be an integer")
		respondError(c, verr)
		return 0, false
	}
	return v, true
}

func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func nullMoney(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	v := d.Decimal.InexactFloat64()
	return &v
}

func moneyByCurrency(totals map[models.Currency]decimal.Decimal) map[string]float64 {
	out := make(map[string]float64, len(totals))
	for cur, total := range totals {
		out[string(cur)] = money(total)
	}
	return out
}

func optionalDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := models.FormatDate(d)
	return &s
}

func date(d datatypes.Date) string {
	return models.FormatDate(&d)
}
