package store

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/neosburritos/burrito-api/models"
)

// AuthResult is the outcome of a login attempt. User is set only on success.
type AuthResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *models.User `json:"user,omitempty"`
}

// RegisterResult carries the new user's id, zero on failure.
type RegisterResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  uint   `json:"user_id"`
}

// UpdateResult is the outcome of a profile edit.
type UpdateResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UserStore handles authentication, registration and profile management.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Authenticate checks an email/password pair against the stored bcrypt hash.
// Inactive accounts fail with the same message shape as bad credentials.
func (s *UserStore) Authenticate(email, password string) AuthResult {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("error during authentication for %s: %v", email, err)
			return AuthResult{Message: "Database error during authentication"}
		}
		return AuthResult{Message: "Invalid email or password"}
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthResult{Message: "Invalid email or password"}
	}
	if !user.IsActive {
		return AuthResult{Message: "Account is inactive"}
	}

	return AuthResult{Success: true, Message: "Login successful", User: &user}
}

// Register creates a new user with a bcrypt-hashed password.
func (s *UserStore) Register(name, email, password string, role models.Role, phone, address string) RegisterResult {
	var existing int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		log.Printf("error during registration for %s: %v", email, err)
		return RegisterResult{Message: "Database error during registration"}
	}
	if existing > 0 {
		return RegisterResult{Message: "Email already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("error hashing password for %s: %v", email, err)
		return RegisterResult{Message: "Database error during registration"}
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Phone:        phone,
		Address:      address,
		IsActive:     true,
	}
	if err := s.db.Create(&user).Error; err != nil {
		log.Printf("error during registration for %s: %v", email, err)
		return RegisterResult{Message: "Database error during registration"}
	}

	return RegisterResult{Success: true, Message: "Registration successful", UserID: user.ID}
}

// UpdateProfile edits the mutable contact fields of a user.
func (s *UserStore) UpdateProfile(userID uint, name, phone, address string) UpdateResult {
	res := s.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"name":    name,
		"phone":   phone,
		"address": address,
	})
	if res.Error != nil {
		log.Printf("error updating profile for user %d: %v", userID, res.Error)
		return UpdateResult{Message: "Database error during profile update"}
	}
	if res.RowsAffected == 0 {
		return UpdateResult{Message: "User not found"}
	}
	return UpdateResult{Success: true, Message: "Profile updated successfully"}
}

// GetByID loads a user, or nil when absent.
func (s *UserStore) GetByID(userID uint) *models.User {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("error getting user %d: %v", userID, err)
		}
		return nil
	}
	return &user
}

// ListUsers returns every user, newest first (admin view).
func (s *UserStore) ListUsers() []models.User {
	users := []models.User{}
	if err := s.db.Order("created_at desc").Find(&users).Error; err != nil {
		log.Printf("error listing users: %v", err)
		return []models.User{}
	}
	return users
}

// SetActive toggles an account's active flag (admin action).
func (s *UserStore) SetActive(userID uint, active bool) bool {
	res := s.db.Model(&models.User{}).Where("id = ?", userID).Update("is_active", active)
	if res.Error != nil {
		log.Printf("error toggling user %d: %v", userID, res.Error)
		return false
	}
	return res.RowsAffected > 0
}

// SetRole changes an account's role (admin action).
func (s *UserStore) SetRole(userID uint, role models.Role) bool {
	switch role {
	case models.RoleAdmin, models.RoleStaff, models.RoleCustomer:
	default:
		return false
	}
	res := s.db.Model(&models.User{}).Where("id = ?", userID).Update("role", role)
	if res.Error != nil {
		log.Printf("error changing role for user %d: %v", userID, res.Error)
		return false
	}
	return res.RowsAffected > 0
}
