package handlers

import (
	"net/http"
	"time"

	"canteen-api/config"
	"canteen-api/models"

	"github.com/gin-gonic/gin"
)

// EarningsReport sums the earnings ledger for the current day, month, and
// year on the server-local clock. Periods with no rows report zero.
func EarningsReport(c *gin.Context) {
	now := time.Now()

	daily, err := models.DailyEarnings(config.DB, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute earnings"})
		return
	}
	monthly, err := models.MonthlyEarnings(config.DB, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute earnings"})
		return
	}
	yearly, err := models.YearlyEarnings(config.DB, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute earnings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"today_earnings":   daily,
		"monthly_earnings": monthly,
		"yearly_earnings":  yearly,
	})
}
