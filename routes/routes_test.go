package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sostinewaliaula/rental-management-system/config"
	"github.com/sostinewaliaula/rental-management-system/models"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	err = db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Floor{},
		&models.Unit{},
		&models.Tenant{},
		&models.Payment{},
		&models.MaintenanceRequest{},
	)
	assert.NoError(t, err)

	cfg := &config.Config{JWTSecretKey: "test_secret"}
	return SetupRouter(db, cfg), db
}

func TestPingIsPublic(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	router, _ := setupTestRouter(t)

	for _, path := range []string{"/api/tenants", "/api/properties", "/api/payments", "/api/users"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestLoginAndAccessProtectedRoute(t *testing.T) {
	router, db := setupTestRouter(t)

	// the model hook hashes the password on create
	admin := models.User{
		Name:     "Administrator",
		Email:    "admin@example.com",
		Password: "Admin@123",
		Role:     models.RoleAdmin,
	}
	assert.NoError(t, db.Create(&admin).Error)

	body, _ := json.Marshal(map[string]string{
		"email":    "admin@example.com",
		"password": "Admin@123",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Data.Token)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/tenants", nil)
	req.Header.Set("Authorization", "Bearer "+envelope.Data.Token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router, _ := setupTestRouter(t)

	body, _ := json.Marshal(map[string]string{
		"email":    "nobody@example.com",
		"password": "wrong",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTenantRoleCannotManageProperties(t *testing.T) {
	router, db := setupTestRouter(t)

	tenant := models.User{
		Name:     "Tina Tenant",
		Email:    "tina@example.com",
		Password: "Tenant@123456",
		Role:     models.RoleTenant,
	}
	assert.NoError(t, db.Create(&tenant).Error)

	body, _ := json.Marshal(map[string]string{
		"email":    "tina@example.com",
		"password": "Tenant@123456",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/properties", nil)
	req.Header.Set("Authorization", "Bearer "+envelope.Data.Token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
