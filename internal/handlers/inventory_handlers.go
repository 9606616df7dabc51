package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type addProductRequest struct {
	ID       string          `json:"id" binding:"required"`
	Name     string          `json:"name" binding:"required"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}

// AddProduct inserts a new product.
// POST /v1/products
func (h *Handlers) AddProduct(c *gin.Context) {
	var req addProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
		return
	}
	if !h.Store.Add(req.ID, req.Name, req.Quantity, req.Price, req.Category) {
		c.JSON(http.StatusConflict, gin.H{"error": "Product ID already exists"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product added", "id": req.ID})
}

type quantityRequest struct {
	Change int `json:"change" binding:"required"`
}

// UpdateQuantity adjusts a product's quantity by a signed delta.
// PATCH /v1/products/:id/quantity
func (h *Handlers) UpdateQuantity(c *gin.Context) {
	id := c.Param("id")
	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if !h.Store.UpdateQuantity(id, req.Change) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	p, _ := h.Store.Get(id)
	c.JSON(http.StatusOK, gin.H{"message": "Quantity updated", "quantity": p.Quantity})
}

type sellRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// SellProduct records a sale. Overselling is refused.
// POST /v1/products/:id/sell
func (h *Handlers) SellProduct(c *gin.Context) {
	id := c.Param("id")
	var req sellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if _, ok := h.Store.Get(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if !h.Store.Sell(id, req.Quantity) {
		c.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock"})
		return
	}
	p, _ := h.Store.Get(id)
	c.JSON(http.StatusOK, gin.H{"message": "Sale recorded", "quantity": p.Quantity})
}

// DeleteProduct removes a product.
// DELETE /v1/products/:id
func (h *Handlers) DeleteProduct(c *gin.Context) {
	if !h.Store.Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// GetProducts returns a snapshot of all records keyed by ID.
// GET /v1/products
func (h *Handlers) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Products())
}

// GetStatus returns the aggregate inventory snapshot.
// GET /v1/status
func (h *Handlers) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Status())
}

// GetActivities returns the most recent activity entries, newest first.
// GET /v1/activities?limit=n
func (h *Handlers) GetActivities(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = n
	}
	c.JSON(http.StatusOK, h.Store.RecentActivities(limit))
}
