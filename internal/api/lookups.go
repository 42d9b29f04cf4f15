package api

import (
	"net/http"
	"strings"

	"devdir/server/internal/messages"
	"devdir/server/internal/models"
	"devdir/server/internal/validate"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NameRequest represents the body of the simple lookup-entity creators
type NameRequest struct {
	Name string `json:"name"`
}

// CreateSkill creates a new skill
func (h *Handler) CreateSkill(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil || !validate.IsValidString(req.Name) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": messages.InvalidName})
		return
	}

	skill := models.Skill{ID: uuid.New().String(), Name: strings.TrimSpace(req.Name)}
	if err := h.db.Create(&skill).Error; err != nil {
		h.log.Error("skill creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": messages.UnexpectedDB})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": skill})
}

// ListSkills returns the full skill table
func (h *Handler) ListSkills(c *gin.Context) {
	var skills []models.Skill
	if err := h.db.Find(&skills).Error; err != nil {
		h.log.Error("skill listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": messages.UnexpectedDB})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": skills})
}

// CreateTag creates a new tag
func (h *Handler) CreateTag(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil || !validate.IsValidString(req.Name) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": messages.InvalidName})
		return
	}

	tag := models.Tag{ID: uuid.New().String(), Name: strings.TrimSpace(req.Name)}
	if err := h.db.Create(&tag).Error; err != nil {
		h.log.Error("tag creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": messages.UnexpectedDB})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": tag})
}

// ListTags returns the full tag table
func (h *Handler) ListTags(c *gin.Context) {
	var tags []models.Tag
	if err := h.db.Find(&tags).Error; err != nil {
		h.log.Error("tag listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": messages.UnexpectedDB})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": tags})
}

// CreateTechnology creates a new technology
func (h *Handler) CreateTechnology(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil || !validate.IsValidString(req.Name) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": messages.InvalidName})
		return
	}

	technology := models.Technology{ID: uuid.New().String(), Name: strings.TrimSpace(req.Name)}
	if err := h.db.Create(&technology).Error; err != nil {
		h.log.Error("technology creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": messages.UnexpectedDB})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": technology})
}

// ListTechnologies returns the full technology table
func (h *Handler) ListTechnologies(c *gin.Context) {
	var technologies []models.Technology
	if err := h.db.Find(&technologies).Error; err != nil {
		h.log.Error("technology listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": messages.UnexpectedDB})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": technologies})
}
