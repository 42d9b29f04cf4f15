package api

import (
	"errors"
	"time"

	"devdir/server/internal/messages"
	"devdir/server/internal/middleware"
	"devdir/server/internal/models"
	"devdir/server/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler contains the API handlers
type Handler struct {
	db         *gorm.DB
	codec      *session.Codec
	log        *zap.Logger
	sessionTTL time.Duration
}

// NewHandler creates a new API handler
func NewHandler(db *gorm.DB, codec *session.Codec, log *zap.Logger, sessionTTL time.Duration) *Handler {
	return &Handler{
		db:         db,
		codec:      codec,
		log:        log,
		sessionTTL: sessionTTL,
	}
}

// CurrentUser returns the user attached by the auth middleware, or nil when
// the route is not behind it.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(middleware.UserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

// errCategory maps a persistence failure to the category name exposed in 500
// bodies. Driver detail never leaves the process.
func errCategory(err error) string {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return messages.CategoryUniqueViolation
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return messages.CategoryForeignKeyViolation
	default:
		return messages.CategoryDatabase
	}
}
