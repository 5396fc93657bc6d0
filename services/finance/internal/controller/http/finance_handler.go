package http

import (
	"net/http"

	"campushub/pkg/apperrors"
	"campushub/pkg/logger"
	"campushub/services/finance/internal/usecase"

	"github.com/gin-gonic/gin"
)

type FinanceHandler struct {
	financeUseCase usecase.FinanceUseCase
	logger         *logger.Logger
}

func NewFinanceHandler(financeUseCase usecase.FinanceUseCase, logger *logger.Logger) *FinanceHandler {
	return &FinanceHandler{
		financeUseCase: financeUseCase,
		logger:         logger,
	}
}

type tradeRequest struct {
	Symbol string `json:"symbol" binding:"required"`
	Shares int    `json:"shares" binding:"required"`
}

// Quote godoc
// @Summary      Look up a stock quote
// @Tags         finance
// @Produce      json
// @Security     BearerAuth
// @Param        symbol path string true "Stock symbol"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /quote/{symbol} [get]
func (h *FinanceHandler) Quote(c *gin.Context) {
	quote, err := h.financeUseCase.Quote(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		status := apperrors.StatusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Quote lookup failed: %v", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"quote": quote})
}

// Buy godoc
// @Summary      Buy shares at the current quote
// @Tags         finance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body tradeRequest true "Symbol and share count"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /buy [post]
func (h *FinanceHandler) Buy(c *gin.Context) {
	var req tradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	transaction, err := h.financeUseCase.Buy(c.Request.Context(), userID, req.Symbol, req.Shares)
	if err != nil {
		status := apperrors.StatusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Buy failed: %v", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// Sell godoc
// @Summary      Sell shares at the current quote
// @Tags         finance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body tradeRequest true "Symbol and share count"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /sell [post]
func (h *FinanceHandler) Sell(c *gin.Context) {
	var req tradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	transaction, err := h.financeUseCase.Sell(c.Request.Context(), userID, req.Symbol, req.Shares)
	if err != nil {
		status := apperrors.StatusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Sell failed: %v", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// Portfolio godoc
// @Summary      Current holdings, cash and account total
// @Tags         finance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /portfolio [get]
func (h *FinanceHandler) Portfolio(c *gin.Context) {
	userID := c.GetString("user_id")

	portfolio, err := h.financeUseCase.Portfolio(c.Request.Context(), userID)
	if err != nil {
		status := apperrors.StatusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Portfolio load failed: %v", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, portfolio)
}

// History godoc
// @Summary      Full trade history, newest first
// @Tags         finance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /history [get]
func (h *FinanceHandler) History(c *gin.Context) {
	userID := c.GetString("user_id")

	transactions, err := h.financeUseCase.History(userID)
	if err != nil {
		c.JSON(apperrors.StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}
