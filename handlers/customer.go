package handlers

import (
	"fmt"
	"net/http"

	"canteen-api/config"
	"canteen-api/middleware"
	"canteen-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserDashboard shows the customer-visible menu, the caller's orders, and
// their cart with its running total. Menu visibility needs both the
// availability flag and stock on hand.
func UserDashboard(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var menuItems []models.MenuItem
	config.DB.Where("available = ? AND quantity > 0", true).Find(&menuItems)

	var orders []models.Order
	config.DB.Preload("Items.MenuItem").
		Where("user_id = ?", userID).
		Order("ordered_at desc").
		Find(&orders)

	var cartItems []models.CartItem
	config.DB.Preload("MenuItem").Where("user_id = ?", userID).Find(&cartItems)

	c.JSON(http.StatusOK, gin.H{
		"menu_items":   menuItems,
		"orders":       orders,
		"cart_items":   cartItems,
		"total_amount": models.CartTotal(cartItems),
	})
}

// ── Cart ────────────────────────────────────────────────────────────────────

type AddToCartRequest struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

// AddToCart upserts a cart row for (user, item): an existing row has its
// quantity incremented, otherwise a new row is created. No check against
// current stock happens here.
func AddToCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var item models.MenuItem
	if err := config.DB.First(&item, req.ItemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var cartItem models.CartItem
	err := config.DB.Where("user_id = ? AND menu_item_id = ?", userID, item.ID).First(&cartItem).Error
	switch {
	case err == nil:
		if err := config.DB.Model(&cartItem).
			Update("quantity", gorm.Expr("quantity + ?", req.Quantity)).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
	case err == gorm.ErrRecordNotFound:
		cartItem = models.CartItem{
			UserID:     userID,
			MenuItemID: item.ID,
			Quantity:   req.Quantity,
		}
		if err := config.DB.Create(&cartItem).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
			return
		}
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item added to cart", "cart_item_id": cartItem.ID})
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem overwrites a cart row's quantity. Non-positive quantities
// are a validation error and leave the row untouched.
func UpdateCartItem(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var cartItem models.CartItem
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&cartItem).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in cart."})
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity."})
		return
	}

	if err := config.DB.Model(&cartItem).Update("quantity", req.Quantity).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart item updated successfully."})
}

// RemoveFromCart deletes one cart row. A row that does not exist or belongs
// to someone else just reports not found.
func RemoveFromCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var cartItem models.CartItem
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&cartItem).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in cart."})
		return
	}

	config.DB.Delete(&cartItem)
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart."})
}

// ClearCart empties the caller's cart — the only "cancel" that exists, and
// it only works before checkout.
func ClearCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	config.DB.Where("user_id = ?", userID).Delete(&models.CartItem{})
	c.JSON(http.StatusOK, gin.H{"message": "Your cart has been cleared."})
}

// ── Checkout ────────────────────────────────────────────────────────────────

// CheckoutSummary renders the pre-confirmation view of the cart
func CheckoutSummary(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var cartItems []models.CartItem
	config.DB.Preload("MenuItem").Where("user_id = ?", userID).Find(&cartItems)

	c.JSON(http.StatusOK, gin.H{
		"cart_items":   cartItems,
		"total_amount": models.CartTotal(cartItems),
	})
}

// Checkout turns the caller's cart into an order in one transaction: the
// order is created directly as confirmed with the cart's total, each cart
// line becomes an order line freezing quantity and line price, and the cart
// rows are deleted. Stock is untouched until staff accept the order.
func Checkout(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var cartItems []models.CartItem
	config.DB.Preload("MenuItem").Where("user_id = ?", userID).Find(&cartItems)
	if len(cartItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		return
	}

	order := models.Order{
		UserID:     userID,
		TotalPrice: models.CartTotal(cartItems),
		Status:     models.StatusConfirmed,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, item := range cartItems {
			line := models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: item.MenuItemID,
				Quantity:   item.Quantity,
				TotalPrice: item.MenuItem.Price * float64(item.Quantity),
				Name:       item.MenuItem.Name,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.CartItem{}, item.ID).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Order Confirmed!",
		"order_id":    order.ID,
		"redirect_to": fmt.Sprintf("/api/orders/%d/confirmation", order.ID),
	})
}

// OrderConfirmation renders an order with its lines and computed total
func OrderConfirmation(c *gin.Context) {
	var order models.Order
	if err := config.DB.Preload("Items.MenuItem").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var total float64
	for _, line := range order.Items {
		total += line.TotalPrice
	}

	c.JSON(http.StatusOK, gin.H{
		"order_status": "Order Confirmed!",
		"order":        order,
		"order_items":  order.Items,
		"total_price":  total,
	})
}
