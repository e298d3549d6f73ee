package handlers

import (
	"context"
	"net/http"

	"github.com/gdghack/stockwise/internal/domain"
	"github.com/gdghack/stockwise/internal/service"
	"github.com/gin-gonic/gin"
)

type RecommendHandler struct {
	service *service.RecommendationService
}

func NewRecommendHandler(service *service.RecommendationService) *RecommendHandler {
	return &RecommendHandler{service: service}
}

type stockRecommendRequest struct {
	ItemID       int64   `json:"itemId"`
	SellingPrice float64 `json:"sellingPrice"`
	IsFestival   bool    `json:"isFestival"`
}

type budgetRequest struct {
	Budget     *float64 `json:"budget"`
	IsFestival bool     `json:"isFestival"`
}

func (h *RecommendHandler) Stock(c *gin.Context) {
	var req stockRecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "field": "body"})
		return
	}
	if req.ItemID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemId is required", "field": "itemId"})
		return
	}

	rec, err := h.service.RecommendStock(c.Request.Context(), req.ItemID, req.SellingPrice, req.IsFestival)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Cash allocates the budget all-or-nothing: an item either gets its full
// restock or nothing.
func (h *RecommendHandler) Cash(c *gin.Context) {
	h.allocate(c, h.service.RecommendCashPlan)
}

// OptimizeBudget allocates with partial fills, spending down the budget on
// the most urgent items first.
func (h *RecommendHandler) OptimizeBudget(c *gin.Context) {
	h.allocate(c, h.service.OptimizeBudget)
}

// Plans lists the archived plan snapshots, newest keys included.
func (h *RecommendHandler) Plans(c *gin.Context) {
	keys, err := h.service.ArchivedPlans(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": keys})
}

func (h *RecommendHandler) allocate(c *gin.Context, fn func(ctx context.Context, budget float64, festival bool) (domain.BudgetPlan, error)) {
	var req budgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "field": "body"})
		return
	}
	if req.Budget == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "budget is required", "field": "budget"})
		return
	}

	plan, err := fn(c.Request.Context(), *req.Budget, req.IsFestival)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}
