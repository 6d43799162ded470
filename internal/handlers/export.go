package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/brewlog/internal/middleware"
	"github.com/h4ks-com/brewlog/internal/services"
)

type ExportHandler struct {
	exportService *services.ExportService
}

func NewExportHandler(exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

type VerifyExportResponse struct {
	Valid bool `json:"valid"`
}

// ExportJournal godoc
// @Summary Export journal
// @Description Export every bean with its lots, tastings, costs and brews, signed with HMAC-SHA256
// @Tags export
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.JournalExport
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /export [get]
func (h *ExportHandler) ExportJournal(c *gin.Context) {
	export, err := h.exportService.ExportJournal(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, export)
}

// VerifyExport godoc
// @Summary Verify journal export signature
// @Description Verify the signature of a previously exported journal
// @Tags export
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.JournalExport true "Export data with signature"
// @Success 200 {object} VerifyExportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /export/verify [post]
func (h *ExportHandler) VerifyExport(c *gin.Context) {
	var exportData services.JournalExport
	if err := c.ShouldBindJSON(&exportData); err != nil {
		respondBindError(c, err)
		return
	}

	valid, err := h.exportService.VerifyExportData(&exportData)
	if err != nil {
		if errors.Is(err, services.ErrInvalidExport) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, VerifyExportResponse{Valid: valid})
}
