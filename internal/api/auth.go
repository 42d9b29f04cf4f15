package api

import (
	"errors"
	"net/http"
	"strings"

	"devdir/server/internal/auth"
	"devdir/server/internal/messages"
	"devdir/server/internal/middleware"
	"devdir/server/internal/models"
	"devdir/server/internal/session"
	"devdir/server/internal/validate"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SignUpRequest represents the sign-up body
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp registers a new user
func (h *Handler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": messages.InvalidName})
		return
	}

	if !validate.IsValidString(req.Name) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": messages.InvalidName})
		return
	}
	if !validate.IsValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": messages.InvalidEmail})
		return
	}
	if !validate.IsValidString(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": messages.InvalidPassword})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.log.Error("password hashing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": messages.UnexpectedDB})
		return
	}

	user := models.User{
		ID:       uuid.New().String(),
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Password: hash,
	}

	if err := h.db.Create(&user).Error; err != nil {
		// Email uniqueness is enforced by the database, not by validation.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": messages.EmailTaken})
			return
		}
		h.log.Error("user creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": messages.UnexpectedDB})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":   user.ID,
		"name": user.Name,
	})
}

// SignInRequest represents the sign-in body
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignIn verifies credentials and issues the session cookie
func (h *Handler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": messages.InvalidEmail})
		return
	}

	if !validate.IsValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": messages.InvalidEmail})
		return
	}
	if !validate.IsValidString(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": messages.InvalidPassword})
		return
	}

	var user models.User
	if err := h.db.First(&user, "email = ?", strings.TrimSpace(req.Email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": messages.InvalidSignIn})
			return
		}
		h.log.Error("sign-in lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": messages.UnexpectedDB})
		return
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": messages.InvalidSignIn})
		return
	}

	token, err := h.codec.Encode(session.Identity{ID: user.ID})
	if err != nil {
		h.log.Error("session encoding failed", zap.String("user_id", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": messages.UnexpectedDB})
		return
	}

	c.SetCookie(middleware.CookieName, token, int(h.sessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"msg": messages.UserLogged})
}

// SignOut clears the session cookie. The token is self-contained, so there is
// nothing to revoke server side.
func (h *Handler) SignOut(c *gin.Context) {
	c.SetCookie(middleware.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"msg": messages.UserLoggedOut})
}
