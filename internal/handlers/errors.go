package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/h4ks-com/brewlog/internal/logger"
	"github.com/h4ks-com/brewlog/internal/middleware"
	"github.com/h4ks-com/brewlog/internal/services"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error  string                `json:"error"`
	Fields []services.FieldError `json:"fields,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

var notFound = []error{
	services.ErrUserNotFound,
	services.ErrBeanNotFound,
	services.ErrLotNotFound,
	services.ErrTastingNotFound,
	services.ErrScheduleNotFound,
	services.ErrCostEntryNotFound,
	services.ErrBrewLogNotFound,
	services.ErrTokenNotFound,
}

// respondError maps service errors onto HTTP statuses. Anything it does not
// recognise is logged and reported as a bare 500.
func respondError(c *gin.Context, err error) {
	if verr, ok := services.IsValidation(err); ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Fields: verr.Fields})
		return
	}
	for _, target := range notFound {
		if errors.Is(err, target) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: target.Error()})
			return
		}
	}
	if errors.Is(err, services.ErrInvalidTransition) {
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		return
	}

	c.Error(err)
	logger.Error("request failed",
		zap.Error(err),
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.String("route", c.FullPath()))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondBindError reports binding failures in the same shape as service
// validation errors.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  "validation failed",
			Fields: []services.FieldError{{Field: "request", Message: err.Error()}},
		})
		return
	}

	fields := make([]services.FieldError, len(verrs))
	for i, fe := range verrs {
		fields[i] = services.FieldError{Field: fieldName(fe), Message: describe(fe)}
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Fields: fields})
}

func fieldName(fe validator.FieldError) string {
	if name := fe.Field(); name != "" {
		return name
	}
	return strings.ToLower(fe.StructField())
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	case "roastlevel":
		return "must be one of Light, Medium, Medium-Dark, Dark"
	case "currency":
		return "must be one of USD, HKD, JPY"
	case "isodate":
		return "must be a date in YYYY-MM-DD format"
	case "clock":
		return "must be a time in HH:MM format"
	default:
		return "is invalid"
	}
}
