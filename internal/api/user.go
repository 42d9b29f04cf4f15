package api

import (
	"net/http"

	"devdir/server/internal/messages"

	"github.com/gin-gonic/gin"
)

// UserInfo returns the authenticated user's profile as resolved by the auth
// middleware: id, name, email and skills, never the password hash.
func (h *Handler) UserInfo(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": messages.InvalidLogin})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": user})
}
