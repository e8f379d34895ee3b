package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sostinewaliaula/rental-management-system/config"
	"github.com/sostinewaliaula/rental-management-system/models"
	"github.com/sostinewaliaula/rental-management-system/utils"
)

// InterfaceUserService defines the user account service interface
type InterfaceUserService interface {
	Authenticate(email, password string) (*models.User, error)
	GetAllUsers(page int, pageSize int) ([]models.User, int64, error)
	GetUserByID(id uint) (*models.User, error)
	CreateUser(user *models.User) error
	UpdateUser(id uint, updates map[string]interface{}) (*models.User, error)
	DeleteUser(id uint) error
}

// UserService provides login account services
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService creates a new user service
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// 1 Authenticate verifies a user's email and password
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidLogin
	}
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidLogin
		}
		return nil, persistenceError(err)
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidLogin
	}
	return &user, nil
}

// 2 GetAllUsers returns all user accounts
func (s *UserService) GetAllUsers(page int, pageSize int) ([]models.User, int64, error) {
	var users []models.User
	var total int64
	if err := s.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, persistenceError(err)
	}
	if err := s.DB.Offset((page - 1) * pageSize).Limit(pageSize).Find(&users).Error; err != nil {
		return nil, 0, persistenceError(err)
	}
	return users, total, nil
}

// 3 GetUserByID returns a user by ID
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, persistenceError(err)
	}
	return &user, nil
}

// 4 CreateUser creates a new login account
func (s *UserService) CreateUser(user *models.User) error {
	if user.Name == "" || user.Email == "" || user.Password == "" || user.Role == "" {
		return ErrMissingFields
	}

	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return persistenceError(err)
	}
	if count > 0 {
		return ErrEmailTaken
	}

	if err := s.DB.Create(user).Error; err != nil {
		return persistenceError(err)
	}
	return nil
}

// 5 UpdateUser updates a user account
func (s *UserService) UpdateUser(id uint, updates map[string]interface{}) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	// Email changes must stay unique
	if email, ok := updates["email"].(string); ok && email != user.Email {
		var count int64
		if err := s.DB.Model(&models.User{}).Where("email = ? AND id != ?", email, id).Count(&count).Error; err != nil {
			return nil, persistenceError(err)
		}
		if count > 0 {
			return nil, ErrEmailTaken
		}
	}

	// Password updates are hashed here; map updates bypass the model hooks
	if password, ok := updates["password"].(string); ok {
		hashed, err := utils.HashPassword(password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hashed
	}

	if err := s.DB.Model(user).Updates(updates).Error; err != nil {
		return nil, persistenceError(err)
	}

	return s.GetUserByID(id)
}

// 6 DeleteUser removes a user account
func (s *UserService) DeleteUser(id uint) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(user).Error; err != nil {
		return persistenceError(err)
	}
	return nil
}
