package middleware

import (
	"errors"
	"net/http"

	"devdir/server/internal/messages"
	"devdir/server/internal/models"
	"devdir/server/internal/session"
	"devdir/server/internal/validate"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserKey is the context key the resolved user is attached under.
const UserKey = "user"

// CookieName is the session cookie read by RequireUser.
const CookieName = "session"

// RequireUser authenticates the request from its session cookie. The cookie is
// decoded by the codec and the embedded id resolved against the users table
// (password and audit timestamps excluded, skills preloaded with id and name
// only). Every authentication failure answers 401 with the same fixed message;
// a database failure answers 500 and is logged.
func RequireUser(db *gorm.DB, codec *session.Codec, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(CookieName)
		if err != nil || !validate.IsValidString(cookie) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": messages.InvalidLogin})
			return
		}

		identity := codec.Decode(cookie)
		if identity == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": messages.InvalidLogin})
			return
		}

		var user models.User
		err = db.Select("id", "name", "email").
			Preload("Skills", func(tx *gorm.DB) *gorm.DB {
				return tx.Select("skills.id", "skills.name")
			}).
			First(&user, "id = ?", identity.ID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": messages.InvalidLogin})
				return
			}
			log.Error("session user lookup failed", zap.String("user_id", identity.ID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": messages.UnexpectedDB})
			return
		}

		c.Set(UserKey, &user)
		c.Next()
	}
}
