package handlers_test

import (
	"net/http"
	"testing"

	"canteen-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRoutesByRole(t *testing.T) {
	r := setupTest(t)
	registerUser(t, r, "owner", models.RoleStaff)
	registerUser(t, r, "asha", models.RoleCustomer)

	cases := []struct {
		email    string
		redirect string
	}{
		{"owner@campus.edu", "/api/staff/dashboard"},
		{"asha@campus.edu", "/api/customer/dashboard"},
	}
	for _, tc := range cases {
		rec := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
			"email":    tc.email,
			"password": "secret123",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp struct {
			Token      string `json:"token"`
			RedirectTo string `json:"redirect_to"`
		}
		require.NoError(t, jsonUnmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, tc.redirect, resp.RedirectTo)
	}
}

func TestLoginBadPassword(t *testing.T) {
	r := setupTest(t)
	registerUser(t, r, "asha", models.RoleCustomer)

	rec := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "asha@campus.edu",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	r := setupTest(t)

	rec := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "dave",
		"email":    "dave@campus.edu",
		"password": "secret123",
		"role":     "driver",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid role")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupTest(t)
	registerUser(t, r, "asha", models.RoleCustomer)

	rec := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "asha-again",
		"email":    "asha@campus.edu",
		"password": "secret123",
		"role":     models.RoleCustomer,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogoutNeedsConfirmation(t *testing.T) {
	r := setupTest(t)
	token := registerUser(t, r, "asha", models.RoleCustomer)

	rec := doJSON(t, r, http.MethodPost, "/api/auth/logout", token, gin.H{"confirm": "no"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Logout not confirmed")

	rec = doJSON(t, r, http.MethodPost, "/api/auth/logout", token, gin.H{"confirm": "yes"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Logged out successfully")
}

func TestProfileRequiresToken(t *testing.T) {
	r := setupTest(t)

	rec := doJSON(t, r, http.MethodGet, "/api/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := registerUser(t, r, "asha", models.RoleCustomer)
	rec = doJSON(t, r, http.MethodGet, "/api/profile", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
