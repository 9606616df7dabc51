package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NotifyActivity relays the recent-activity summary over WhatsApp.
// POST /v1/notifications/activity
func (h *Handlers) NotifyActivity(c *gin.Context) {
	if !h.WhatsApp.NotifyActivity(c.Request.Context()) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Notification channel unavailable"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Activity notification sent"})
}

// SuggestActions relays AI management suggestions over WhatsApp.
// POST /v1/notifications/suggestions
func (h *Handlers) SuggestActions(c *gin.Context) {
	if !h.WhatsApp.SuggestActions(c.Request.Context()) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Notification channel unavailable"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Suggestions sent"})
}

// SendDailyReport triggers the daily report email on demand.
// POST /v1/reports/daily
func (h *Handlers) SendDailyReport(c *gin.Context) {
	if !h.Email.SendDailyReport(c.Request.Context()) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Report could not be sent"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Daily report sent"})
}

// SendWeeklyReport triggers the spreadsheet report email on demand.
// POST /v1/reports/weekly
func (h *Handlers) SendWeeklyReport(c *gin.Context) {
	if !h.Email.SendWeeklyReport(c.Request.Context()) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Report could not be sent"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Weekly report sent"})
}
