package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Signup, signin and health checks are public; everything else sits behind
// the bearer-token middleware.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	authController := NewAuthController(cfg.AuthService)
	userController := NewUserController(cfg.UserStore)
	bookmarksController := NewBookmarksController(cfg.BookmarkStore)
	health := NewHealthController(cfg.Database, cfg.Version)

	// Public endpoints
	router.POST("/auth/signup", authController.Signup)
	router.POST("/auth/signin", authController.Signin)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Authenticated endpoints
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.Handler())
	{
		protected.GET("/users/me", userController.GetMe)
		protected.PATCH("/users", userController.UpdateMe)

		protected.POST("/bookmarks", bookmarksController.CreateBookmark)
		protected.GET("/bookmarks", bookmarksController.ListBookmarks)
		protected.GET("/bookmarks/:id", bookmarksController.GetBookmark)
		protected.PATCH("/bookmarks/:id", bookmarksController.UpdateBookmark)
		protected.DELETE("/bookmarks/:id", bookmarksController.DeleteBookmark)
	}

	return router
}
