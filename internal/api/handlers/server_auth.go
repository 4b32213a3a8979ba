package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	entuser "procureflow.io/procureflow/ent/user"
	"procureflow.io/procureflow/internal/api/middleware"
	apperrors "procureflow.io/procureflow/internal/pkg/errors"
	"procureflow.io/procureflow/internal/pkg/logger"
)

const passwordHashCost = 12

// Login handles POST /auth/login.
func (s *Server) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: apperrors.CodeValidationFailed})
		return
	}

	user, err := s.client.User.Query().
		Where(entuser.EmailEQ(input.Email)).
		Where(entuser.EnabledEQ(true)).
		Only(c.Request.Context())
	if err != nil {
		logger.Warn("login failed: invalid credentials")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Code: apperrors.CodeAuthFailed})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		logger.Warn("login failed: invalid credentials")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Code: apperrors.CodeAuthFailed})
		return
	}

	token, expiresAt, err := middleware.GenerateToken(s.jwtCfg, user.ID, user.FullName, user.Role.String())
	if err != nil {
		logger.Error("failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	now := time.Now()
	if err := s.client.User.UpdateOneID(user.ID).SetLastLoginAt(now).Exec(c.Request.Context()); err != nil {
		logger.Warn("failed to update last_login_at", zap.Error(err), zap.String("user_id", user.ID))
	}

	if s.audit != nil {
		if err := s.audit.LogAction(c.Request.Context(), "user.login", "user", user.ID, user.ID, nil); err != nil {
			logger.Warn("audit log write failed",
				zap.Error(err),
				zap.String("action", "user.login"),
				zap.String("user_id", user.ID),
			)
		}
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// GetCurrentUser handles GET /auth/me.
func (s *Server) GetCurrentUser(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Code: "UNAUTHORIZED"})
		return
	}

	user, err := s.client.User.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Code: "USER_NOT_FOUND"})
		return
	}

	c.JSON(http.StatusOK, UserInfo{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role.String(),
	})
}

// HashPassword hashes a password using bcrypt (used by seed command).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// GenerateUserID creates a new user ID.
func GenerateUserID() string {
	id, _ := uuid.NewV7()
	return id.String()
}
