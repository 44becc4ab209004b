package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"canteen-api/config"
	"canteen-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutAllOrNothing(t *testing.T) {
	r := setupTest(t)
	token := registerUser(t, r, "asha", models.RoleCustomer)
	tea := createMenuItem(t, "Tea", 10, 5, true)
	samosa := createMenuItem(t, "Samosa", 15, 20, true)
	addToCart(t, r, token, tea.ID, 2)
	addToCart(t, r, token, samosa.ID, 4)

	orderID := checkout(t, r, token)

	var order models.Order
	require.NoError(t, config.DB.Preload("Items").First(&order, orderID).Error)
	assert.Equal(t, models.StatusConfirmed, order.Status, "checkout creates orders directly as confirmed")
	require.Len(t, order.Items, 2)

	var lineSum float64
	for _, line := range order.Items {
		lineSum += line.TotalPrice
	}
	assert.Equal(t, 80.0, order.TotalPrice)
	assert.Equal(t, order.TotalPrice, lineSum)

	// cart must not outlive checkout
	var count int64
	config.DB.Model(&models.CartItem{}).Count(&count)
	assert.Zero(t, count)

	// no stock moves until staff accept the order
	var fresh models.MenuItem
	require.NoError(t, config.DB.First(&fresh, tea.ID).Error)
	assert.Equal(t, 5, fresh.Quantity)
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	r := setupTest(t)
	token := registerUser(t, r, "asha", models.RoleCustomer)

	rec := doJSON(t, r, http.MethodPost, "/api/customer/checkout", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	config.DB.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestCheckoutSnapshotsPricing(t *testing.T) {
	r := setupTest(t)
	token := registerUser(t, r, "asha", models.RoleCustomer)
	tea := createMenuItem(t, "Tea", 10, 5, true)
	addToCart(t, r, token, tea.ID, 2)
	orderID := checkout(t, r, token)

	// a later price change must not leak into the placed order
	require.NoError(t, config.DB.Model(&models.MenuItem{}).
		Where("id = ?", tea.ID).Update("price", 99).Error)

	var line models.OrderItem
	require.NoError(t, config.DB.Where("order_id = ?", orderID).First(&line).Error)
	assert.Equal(t, 20.0, line.TotalPrice)
	assert.Equal(t, "Tea", line.Name)
}

func TestCheckoutSummary(t *testing.T) {
	r := setupTest(t)
	token := registerUser(t, r, "asha", models.RoleCustomer)
	tea := createMenuItem(t, "Tea", 10, 5, true)
	addToCart(t, r, token, tea.ID, 3)

	rec := doJSON(t, r, http.MethodGet, "/api/customer/checkout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		CartItems   []models.CartItem `json:"cart_items"`
		TotalAmount float64           `json:"total_amount"`
	}
	require.NoError(t, jsonUnmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.CartItems, 1)
	assert.Equal(t, 30.0, resp.TotalAmount)
}

func TestOrderConfirmationPage(t *testing.T) {
	r := setupTest(t)
	token := registerUser(t, r, "asha", models.RoleCustomer)
	tea := createMenuItem(t, "Tea", 10, 5, true)
	addToCart(t, r, token, tea.ID, 2)
	orderID := checkout(t, r, token)

	rec := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/orders/%d/confirmation", orderID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		OrderStatus string       `json:"order_status"`
		Order       models.Order `json:"order"`
		TotalPrice  float64      `json:"total_price"`
	}
	require.NoError(t, jsonUnmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Order Confirmed!", resp.OrderStatus)
	assert.Equal(t, 20.0, resp.TotalPrice)

	rec = doJSON(t, r, http.MethodGet, "/api/orders/424242/confirmation", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
