package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"devdir/server/internal/middleware"
	"devdir/server/internal/models"
	"devdir/server/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testPayloadKey = "test-payload-key"
	testSigningKey = "test-signing-key"
	testSessionTTL = time.Hour
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) (*Server, *gorm.DB, *session.Codec) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))

	codec := session.New(testPayloadKey, testSigningKey, testSessionTTL)
	server := NewServer(db, codec, zap.NewNop(), testSessionTTL)
	return server, db, codec
}

// createTestUser inserts a user directly and returns it with a valid session
// cookie value.
func createTestUser(t *testing.T, db *gorm.DB, codec *session.Codec) (models.User, string) {
	t.Helper()

	user := models.User{
		ID:       uuid.New().String(),
		Name:     "Ada",
		Email:    fmt.Sprintf("%s@example.com", uuid.New().String()[:8]),
		Password: "bcrypt-hash",
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := codec.Encode(session.Identity{ID: user.ID})
	require.NoError(t, err)
	return user, token
}

func doJSON(server *Server, method, path, cookie string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: cookie})
	}

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
