package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gdghack/stockwise/internal/domain"
	"github.com/gdghack/stockwise/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ItemHandler struct {
	service *service.InventoryService
}

func NewItemHandler(service *service.InventoryService) *ItemHandler {
	return &ItemHandler{service: service}
}

type createItemRequest struct {
	Name         string  `json:"name"`
	Stock        *int    `json:"stock"`
	Category     string  `json:"category"`
	CostPrice    float64 `json:"unit_price"`
	SellingPrice float64 `json:"selling_price"`
	Unit         string  `json:"unit"`
}

type updateItemRequest struct {
	Name         *string  `json:"name"`
	Stock        *int     `json:"stock"`
	Category     *string  `json:"category"`
	CostPrice    *float64 `json:"unit_price"`
	SellingPrice *float64 `json:"selling_price"`
	Unit         *string  `json:"unit"`
}

func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.service.ListItems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) Create(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "field": "body"})
		return
	}
	if req.Stock == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "stock is required", "field": "stock"})
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), domain.Item{
		Name:         req.Name,
		Stock:        *req.Stock,
		Category:     req.Category,
		CostPrice:    req.CostPrice,
		SellingPrice: req.SellingPrice,
		Unit:         req.Unit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// Update applies only the fields present in the request body.
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "field": "body"})
		return
	}

	item, err := h.service.GetItem(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Stock != nil {
		item.Stock = *req.Stock
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.CostPrice != nil {
		item.CostPrice = *req.CostPrice
	}
	if req.SellingPrice != nil {
		item.SellingPrice = *req.SellingPrice
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}

	updated, err := h.service.UpdateItem(c.Request.Context(), item)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id", "field": name})
		return 0, false
	}
	return id, true
}

// respondError maps domain errors onto HTTP statuses: unknown IDs are 404,
// validation failures are 400 with the failing field, anything else is a
// logged 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
	case errors.Is(err, domain.ErrWeekNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Week not found"})
	default:
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error(), "field": ve.Field})
			return
		}
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
