package api

import (
	"net/http"
	"time"

	"devdir/server/internal/middleware"
	"devdir/server/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Server wraps the REST API server
type Server struct {
	handler *Handler
	router  *gin.Engine
}

// NewServer creates a new API server
func NewServer(db *gorm.DB, codec *session.Codec, log *zap.Logger, sessionTTL time.Duration) *Server {
	handler := NewHandler(db, codec, log, sessionTTL)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authed := middleware.RequireUser(db, codec, log)

	auth := router.Group("/auth")
	{
		auth.POST("/sign_up", handler.SignUp)
		auth.POST("/sign_in", handler.SignIn)
		auth.GET("/sign_out", authed, handler.SignOut)
	}

	router.POST("/projects", authed, handler.CreateProject)
	router.GET("/projects", handler.ListProjects)
	router.GET("/projects/:projectId", handler.GetProject)
	// The update route carries no auth middleware, matching the original
	// router's contract.
	router.PATCH("/projects/:projectId", handler.UpdateProject)

	router.POST("/skills", handler.CreateSkill)
	router.GET("/skills", handler.ListSkills)

	router.POST("/tags", handler.CreateTag)
	router.GET("/tags", handler.ListTags)

	router.POST("/technologies", handler.CreateTechnology)
	router.GET("/technologies", handler.ListTechnologies)

	router.GET("/user", authed, handler.UserInfo)

	return &Server{
		handler: handler,
		router:  router,
	}
}

// GetRouter returns the underlying router
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
