package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/brewlog/internal/middleware"
	"github.com/h4ks-com/brewlog/internal/services"
)

type TokenHandler struct {
	tokenService *services.TokenService
}

func NewTokenHandler(tokenService *services.TokenService) *TokenHandler {
	return &TokenHandler{tokenService: tokenService}
}

type CreateTokenRequest struct {
	Name      string `json:"name" binding:"max=100"`
	ExpiresIn string `json:"expires_in" binding:"required"`
}

type CreateTokenResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

type TokenListResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	ExpiresAt string `json:"expires_at"`
	CreatedAt string `json:"created_at"`
}

// CreateToken godoc
// @Summary Create API token
// @Description Create a new API token with specified expiration
// @Tags tokens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTokenRequest true "Token expiration (e.g., 24h, 7d, 30d)"
// @Success 201 {object} CreateTokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tokens [post]
func (h *TokenHandler) CreateToken(c *gin.Context) {
	var req CreateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	duration, err := services.ParseExpiry(req.ExpiresIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  "validation failed",
			Fields: []services.FieldError{{Field: "expires_in", Message: "use a duration like 24h, 7d or 30d"}},
		})
		return
	}

	token, apiToken, err := h.tokenService.GenerateNamedToken(middleware.GetUsername(c), req.Name, duration)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateTokenResponse{
		ID:        apiToken.ID,
		Name:      apiToken.Name,
		Token:     token,
		ExpiresAt: apiToken.ExpiresAt.Format(timestampLayout),
	})
}

// ListTokens godoc
// @Summary List API tokens
// @Description List the live API tokens of the authenticated user
// @Tags tokens
// @Produce json
// @Security BearerAuth
// @Success 200 {array} TokenListResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tokens [get]
func (h *TokenHandler) ListTokens(c *gin.Context) {
	tokens, err := h.tokenService.ListUserTokens(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]TokenListResponse, len(tokens))
	for i, token := range tokens {
		response[i] = TokenListResponse{
			ID:        token.ID,
			Name:      token.Name,
			ExpiresAt: token.ExpiresAt.Format(timestampLayout),
			CreatedAt: token.CreatedAt.Format(timestampLayout),
		}
	}

	c.JSON(http.StatusOK, response)
}

// DeleteToken godoc
// @Summary Delete API token
// @Description Revoke an API token by ID
// @Tags tokens
// @Produce json
// @Security BearerAuth
// @Param id path int true "Token ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tokens/{id} [delete]
func (h *TokenHandler) DeleteToken(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := h.tokenService.DeleteToken(middleware.GetUserID(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "token deleted successfully"})
}
