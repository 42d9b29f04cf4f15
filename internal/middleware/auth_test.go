package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"devdir/server/internal/messages"
	"devdir/server/internal/models"
	"devdir/server/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	return db
}

func newAuthedRouter(db *gorm.DB, codec *session.Codec) *gin.Engine {
	router := gin.New()
	router.GET("/me", RequireUser(db, codec, zap.NewNop()), func(c *gin.Context) {
		v, _ := c.Get(UserKey)
		c.JSON(http.StatusOK, gin.H{"msg": v})
	})
	return router
}

func doGet(router *gin.Engine, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireUserMissingCookie(t *testing.T) {
	db := openTestDB(t)
	codec := session.New("payload", "signing", time.Hour)
	router := newAuthedRouter(db, codec)

	rec := doGet(router, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"msg":%q}`, messages.InvalidLogin), rec.Body.String())
}

func TestRequireUserTamperedCookie(t *testing.T) {
	db := openTestDB(t)
	codec := session.New("payload", "signing", time.Hour)
	router := newAuthedRouter(db, codec)

	token, err := codec.Encode(session.Identity{ID: uuid.New().String()})
	require.NoError(t, err)

	rec := doGet(router, token[:len(token)-2]+"xx")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"msg":%q}`, messages.InvalidLogin), rec.Body.String())
}

func TestRequireUserUnknownUser(t *testing.T) {
	db := openTestDB(t)
	codec := session.New("payload", "signing", time.Hour)
	router := newAuthedRouter(db, codec)

	// A well-formed token for a user that was never created (or was deleted).
	token, err := codec.Encode(session.Identity{ID: uuid.New().String()})
	require.NoError(t, err)

	rec := doGet(router, token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"msg":%q}`, messages.InvalidLogin), rec.Body.String())
}

func TestRequireUserAttachesUserWithoutPassword(t *testing.T) {
	db := openTestDB(t)
	codec := session.New("payload", "signing", time.Hour)
	router := newAuthedRouter(db, codec)

	skill := models.Skill{ID: uuid.New().String(), Name: "Go"}
	require.NoError(t, db.Create(&skill).Error)

	user := models.User{
		ID:       uuid.New().String(),
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "bcrypt-hash",
		Skills:   []models.Skill{skill},
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := codec.Encode(session.Identity{ID: user.ID})
	require.NoError(t, err)

	rec := doGet(router, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Msg map[string]any `json:"msg"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, user.ID, body.Msg["id"])
	assert.Equal(t, "Ada", body.Msg["name"])
	assert.NotContains(t, body.Msg, "password")

	skills, ok := body.Msg["skills"].([]any)
	require.True(t, ok)
	require.Len(t, skills, 1)
	first := skills[0].(map[string]any)
	assert.Equal(t, skill.ID, first["id"])
	assert.Equal(t, "Go", first["name"])
}
