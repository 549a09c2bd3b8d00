package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/v322/healthsync/internal/config"
	dbpkg "github.com/v322/healthsync/internal/db"
	"github.com/v322/healthsync/internal/httperr"
	"github.com/v322/healthsync/internal/ids"
	"github.com/v322/healthsync/internal/middleware"
	"github.com/v322/healthsync/internal/models"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`

	Gender      string `json:"gender"`
	Address     string `json:"address"`
	DateOfBirth string `json:"date_of_birth"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// --------- Handlers ---------

// Register creates a patient account: a login user plus the patient record
// sharing the same PAT- id.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_registered", "Email already registered.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Failed to register.")
		return
	}

	patientID := ids.New(ids.PrefixPatient)

	err = h.db.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			ID:           patientID,
			Name:         req.Name,
			Email:        email,
			PasswordHash: string(hash),
			Phone:        req.Phone,
			Role:         models.RolePatient,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		patient := models.Patient{
			ID:               patientID,
			Name:             req.Name,
			Email:            email,
			Phone:            req.Phone,
			Gender:           req.Gender,
			Address:          req.Address,
			DateOfBirth:      req.DateOfBirth,
			RegistrationDate: time.Now().Format("2006-01-02"),
		}
		return tx.Create(&patient).Error
	})
	if err != nil {
		// the Count pre-check can race a concurrent registration; the unique
		// index on users.email is authoritative
		if dbpkg.IsUniqueViolation(err) {
			httperr.BadRequest(c, "email_already_registered", "Email already registered.")
			return
		}
		httperr.Internal(c, "failed_to_register", "Failed to register.")
		return
	}

	token, err := h.signToken(patientID, models.RolePatient, email)
	if err != nil {
		httperr.Internal(c, "failed_to_sign_token", "Failed to register.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user": gin.H{
			"id":    patientID,
			"name":  req.Name,
			"email": email,
			"role":  models.RolePatient,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
		return
	}

	token, err := h.signToken(user.ID, user.Role, user.Email)
	if err != nil {
		httperr.Internal(c, "failed_to_sign_token", "Failed to login.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var user models.User
	if err := h.db.Where("id = ?", userID).First(&user).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var user models.User
	if err := h.db.Where("id = ?", userID).First(&user).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Current password is incorrect.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Failed to change password.")
		return
	}

	user.PasswordHash = string(hash)
	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_change_password", "Failed to change password.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *AuthHandler) signToken(userID, role, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"role":  role,
		"email": email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
