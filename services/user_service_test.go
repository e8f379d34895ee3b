package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sostinewaliaula/rental-management-system/models"
	"github.com/sostinewaliaula/rental-management-system/utils"
)

func TestCreateUserHashesPassword(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db, testConfig())

	user := models.User{
		Name:     "Larry Landlord",
		Email:    "larry@example.com",
		Password: "Secret@123",
		Role:     models.RoleLandlord,
	}
	assert.NoError(t, service.CreateUser(&user))

	var stored models.User
	assert.NoError(t, db.First(&stored, user.ID).Error)
	assert.NotEqual(t, "Secret@123", stored.Password)
	assert.True(t, utils.CheckPasswordHash("Secret@123", stored.Password))
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db, testConfig())

	first := models.User{Name: "A", Email: "dup@example.com", Password: "Secret@123", Role: models.RoleLandlord}
	assert.NoError(t, service.CreateUser(&first))

	second := models.User{Name: "B", Email: "dup@example.com", Password: "Secret@456", Role: models.RoleTenant}
	assert.ErrorIs(t, service.CreateUser(&second), ErrEmailTaken)
}

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db, testConfig())

	user := models.User{Name: "A", Email: "a@example.com", Password: "Secret@123", Role: models.RoleAdmin}
	assert.NoError(t, service.CreateUser(&user))

	found, err := service.Authenticate("a@example.com", "Secret@123")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = service.Authenticate("a@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidLogin)
	_, err = service.Authenticate("nobody@example.com", "Secret@123")
	assert.ErrorIs(t, err, ErrInvalidLogin)
	_, err = service.Authenticate("", "")
	assert.ErrorIs(t, err, ErrInvalidLogin)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db, testConfig())

	user := models.User{Name: "A", Email: "a@example.com", Password: "Secret@123", Role: models.RoleAdmin}
	assert.NoError(t, service.CreateUser(&user))

	updated, err := service.UpdateUser(user.ID, map[string]interface{}{"password": "New@456"})
	assert.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("New@456", updated.Password))
}

func TestUpdateUserEmailStaysUnique(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db, testConfig())

	a := models.User{Name: "A", Email: "a@example.com", Password: "Secret@123", Role: models.RoleAdmin}
	b := models.User{Name: "B", Email: "b@example.com", Password: "Secret@123", Role: models.RoleTenant}
	assert.NoError(t, service.CreateUser(&a))
	assert.NoError(t, service.CreateUser(&b))

	_, err := service.UpdateUser(b.ID, map[string]interface{}{"email": "a@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestDeleteUser(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db, testConfig())

	user := models.User{Name: "A", Email: "a@example.com", Password: "Secret@123", Role: models.RoleAdmin}
	assert.NoError(t, service.CreateUser(&user))
	assert.NoError(t, service.DeleteUser(user.ID))
	assert.ErrorIs(t, service.DeleteUser(user.ID), ErrUserNotFound)
}
