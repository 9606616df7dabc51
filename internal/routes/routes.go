package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salman854/inventory-agents/internal/handlers"
)

// SetupRouter wires the inspection API. The surface is optional; it is
// only mounted when an HTTP address is configured.
func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	v1 := router.Group("/v1")
	{
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Inventory ---
		v1.GET("/products", h.GetProducts)
		v1.POST("/products", h.AddProduct)
		v1.PATCH("/products/:id/quantity", h.UpdateQuantity)
		v1.POST("/products/:id/sell", h.SellProduct)
		v1.DELETE("/products/:id", h.DeleteProduct)

		// --- Aggregates ---
		v1.GET("/status", h.GetStatus)
		v1.GET("/activities", h.GetActivities)

		// --- Notifications & reports ---
		v1.POST("/notifications/activity", h.NotifyActivity)
		v1.POST("/notifications/suggestions", h.SuggestActions)
		v1.POST("/reports/daily", h.SendDailyReport)
		v1.POST("/reports/weekly", h.SendWeeklyReport)
	}

	return router
}
