package handlers

import (
	"net/http"

	"canteen-api/config"
	"canteen-api/models"

	"github.com/gin-gonic/gin"
)

// ── Dashboard ───────────────────────────────────────────────────────────────

// openStatuses are the orders still in flight that staff act on
var openStatuses = []models.OrderStatus{
	models.StatusOrdered,
	models.StatusConfirmed,
	models.StatusPrepared,
}

// StaffDashboard lists the stocked menu and every open order.
// The menu list is filtered on stock only: zero-stock items never surface
// here even when their availability flag is still set.
func StaffDashboard(c *gin.Context) {
	var menuItems []models.MenuItem
	config.DB.Where("quantity > 0").Find(&menuItems)

	var orders []models.Order
	config.DB.Preload("Items.MenuItem").Preload("User").
		Where("status IN ?", openStatuses).
		Order("ordered_at asc").
		Find(&orders)

	c.JSON(http.StatusOK, gin.H{
		"menu_items": menuItems,
		"orders":     orders,
	})
}

type DashboardActionRequest struct {
	Action  string `json:"action" binding:"required"`
	ItemID  uint   `json:"item_id"`
	OrderID uint   `json:"order_id"`
}

// StaffDashboardAction dispatches the dashboard's POST actions: toggling a
// menu item's availability or advancing an order through fulfillment.
func StaffDashboardAction(c *gin.Context) {
	var req DashboardActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.Action {
	case "toggle_availability":
		var item models.MenuItem
		if err := config.DB.First(&item, req.ItemID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		if err := item.ToggleAvailability(config.DB); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Availability updated", "item": item})
	case "confirm":
		advanceOrder(c, req.OrderID, models.StatusConfirmed)
	case "accept":
		acceptOrderByID(c, req.OrderID)
	case "mark_delivered":
		deliverOrderByID(c, req.OrderID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown action: " + req.Action})
	}
}

// ── Menu management ─────────────────────────────────────────────────────────

type CreateMenuItemRequest struct {
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Available bool    `json:"available"`
}

// AddMenuItem creates a menu item. Beyond type binding there is no
// sign validation on price or quantity at this layer.
func AddMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.MenuItem{
		Name:      req.Name,
		Price:     req.Price,
		Quantity:  req.Quantity,
		Available: req.Available,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added successfully!", "item": item})
}

// ToggleAvailability flips a menu item's customer visibility flag
func ToggleAvailability(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("itemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if err := item.ToggleAvailability(config.DB); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability updated", "item": item})
}
