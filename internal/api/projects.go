package api

import (
	"errors"
	"net/http"
	"strings"

	"devdir/server/internal/messages"
	"devdir/server/internal/models"
	"devdir/server/internal/validate"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProjectRequest represents the create/update project body. For tags and
// skills a nil slice means the field was absent; an empty slice clears the
// association set.
type ProjectRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Skills      []string `json:"skills"`
}

// CreateProject creates a project and associates the supplied tag/skill sets
// plus the creating user
func (h *Handler) CreateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": messages.InvalidName})
		return
	}

	if !validate.IsValidString(req.Name) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": messages.InvalidName})
		return
	}
	if !validate.IsValidString(req.Description) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": messages.InvalidDescription})
		return
	}
	if req.Tags != nil && !validate.IsValidUUIDSlice(req.Tags) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": messages.InvalidTags})
		return
	}
	if req.Skills != nil && !validate.IsValidUUIDSlice(req.Skills) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": messages.InvalidSkills})
		return
	}

	project := models.Project{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
	}

	if err := h.db.Create(&project).Error; err != nil {
		h.log.Error("project creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": errCategory(err)})
		return
	}

	if req.Tags != nil {
		if err := h.replaceTags(&project, req.Tags); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": errCategory(err)})
			return
		}
	}
	if req.Skills != nil {
		if err := h.replaceSkills(&project, req.Skills); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": errCategory(err)})
			return
		}
	}

	if user := CurrentUser(c); user != nil {
		if err := h.db.Model(&project).Omit("Users.*").Association("Users").Append(&models.User{ID: user.ID}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": errCategory(err)})
			return
		}
	}

	var created models.Project
	if err := h.db.Preload("Tags").Preload("Skills").First(&created, "id = ?", project.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": errCategory(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": created})
}

// ListProjects returns every project with its tag and skill sets
func (h *Handler) ListProjects(c *gin.Context) {
	var projects []models.Project
	if err := h.db.Preload("Tags").Preload("Skills").Find(&projects).Error; err != nil {
		h.log.Error("project listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": messages.UnexpectedDB})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": projects})
}

// GetProject returns a single project with its tag and skill sets
func (h *Handler) GetProject(c *gin.Context) {
	projectID := c.Param("projectId")
	if !validate.IsValidUUID(projectID) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": messages.InvalidProjectID})
		return
	}

	var project models.Project
	if err := h.db.Preload("Tags").Preload("Skills").First(&project, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": messages.ProjectNotFound})
			return
		}
		h.log.Error("project fetch failed", zap.String("project_id", projectID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": messages.UnexpectedDB})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": project})
}

// UpdateProject applies a partial update to name/description and replaces the
// tag/skill association sets wholesale when the corresponding arrays are
// supplied. Absent or invalid scalar fields are left untouched.
func (h *Handler) UpdateProject(c *gin.Context) {
	projectID := c.Param("projectId")
	if !validate.IsValidUUID(projectID) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": messages.InvalidProjectID})
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": messages.InvalidBody})
		return
	}

	var project models.Project
	if err := h.db.First(&project, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": messages.ProjectNotFound})
			return
		}
		h.log.Error("project lookup failed", zap.String("project_id", projectID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": errCategory(err)})
		return
	}

	updates := map[string]any{}
	if validate.IsValidString(req.Name) {
		project.Name = strings.TrimSpace(req.Name)
		updates["name"] = project.Name
	}
	if validate.IsValidString(req.Description) {
		project.Description = strings.TrimSpace(req.Description)
		updates["description"] = project.Description
	}
	if len(updates) > 0 {
		if err := h.db.Model(&project).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": errCategory(err)})
			return
		}
	}

	resp := gin.H{"msg": &project}

	if req.Tags != nil {
		if err := h.replaceTags(&project, req.Tags); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": errCategory(err)})
			return
		}
		if err := h.db.Model(&project).Association("Tags").Find(&project.Tags); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": errCategory(err)})
			return
		}
		resp["savedTags"] = project.Tags
	}

	if req.Skills != nil {
		if err := h.replaceSkills(&project, req.Skills); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": errCategory(err)})
			return
		}
		if err := h.db.Model(&project).Association("Skills").Find(&project.Skills); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": errCategory(err)})
			return
		}
		resp["savedSkills"] = project.Skills
	}

	c.JSON(http.StatusOK, resp)
}

// replaceTags swaps the project's tag set for exactly ids. The referenced
// rows must already exist: gorm would otherwise upsert the primary-key-only
// records and fabricate empty-named tags, so the write is restricted to the
// join table and unknown ids fail as a foreign-key violation.
func (h *Handler) replaceTags(project *models.Project, ids []string) error {
	if err := h.verifyIDsExist(&models.Tag{}, ids); err != nil {
		return err
	}
	return h.db.Model(project).Omit("Tags.*").Association("Tags").Replace(tagRefs(ids))
}

// replaceSkills swaps the project's skill set for exactly ids, with the same
// existence guarantee as replaceTags.
func (h *Handler) replaceSkills(project *models.Project, ids []string) error {
	if err := h.verifyIDsExist(&models.Skill{}, ids); err != nil {
		return err
	}
	return h.db.Model(project).Omit("Skills.*").Association("Skills").Replace(skillRefs(ids))
}

// verifyIDsExist checks that every distinct id has a row in the model's
// table, reporting a missing one as a foreign-key violation.
func (h *Handler) verifyIDsExist(model any, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	distinct := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			distinct = append(distinct, id)
		}
	}

	var count int64
	if err := h.db.Model(model).Where("id IN ?", distinct).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(distinct)) {
		return gorm.ErrForeignKeyViolated
	}
	return nil
}

// tagRefs builds primary-key-only tag records for association writes.
func tagRefs(ids []string) []*models.Tag {
	refs := make([]*models.Tag, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, &models.Tag{ID: id})
	}
	return refs
}

func skillRefs(ids []string) []*models.Skill {
	refs := make([]*models.Skill, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, &models.Skill{ID: id})
	}
	return refs
}
