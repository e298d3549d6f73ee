package handlers

import (
	"net/http"

	"github.com/gdghack/stockwise/internal/service"
	"github.com/gin-gonic/gin"
)

type DemandHandler struct {
	service *service.InventoryService
}

func NewDemandHandler(service *service.InventoryService) *DemandHandler {
	return &DemandHandler{service: service}
}

type addDemandRequest struct {
	ItemID   int64    `json:"itemId"`
	Quantity *float64 `json:"quantity"`
}

type editDemandRequest struct {
	ItemID   int64    `json:"itemId"`
	Week     int      `json:"week"`
	Quantity *float64 `json:"quantity"`
}

func (h *DemandHandler) History(c *gin.Context) {
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	entries, err := h.service.DemandHistory(c.Request.Context(), itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *DemandHandler) Add(c *gin.Context) {
	var req addDemandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "field": "body"})
		return
	}
	if req.ItemID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemId is required", "field": "itemId"})
		return
	}
	if req.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required", "field": "quantity"})
		return
	}

	entries, err := h.service.AddDemand(c.Request.Context(), req.ItemID, *req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *DemandHandler) Edit(c *gin.Context) {
	var req editDemandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "field": "body"})
		return
	}
	if req.ItemID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemId is required", "field": "itemId"})
		return
	}
	if req.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required", "field": "quantity"})
		return
	}

	entries, err := h.service.EditDemand(c.Request.Context(), req.ItemID, req.Week, *req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
