package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DontEatRice/bookmarks/internal/auth"
	"github.com/DontEatRice/bookmarks/internal/config"
	"github.com/DontEatRice/bookmarks/internal/database"
	"github.com/DontEatRice/bookmarks/internal/database/bookmarks"
	"github.com/DontEatRice/bookmarks/internal/database/users"
	http_controllers "github.com/DontEatRice/bookmarks/internal/http"
)

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run wires the application together and serves HTTP.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting Bookmarks API v%s", version)

	if cfg.Auth.JWTSecret == "" {
		log.Fatalf("JWT_SECRET is not set")
	}

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	usersRepo := users.NewRepository(db.DB)
	bookmarksRepo := bookmarks.NewRepository(db.DB)

	authService := auth.NewService(usersRepo, cfg.Auth)
	authMiddleware := auth.NewMiddleware(usersRepo, cfg.Auth)

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:       db,
		AuthService:    authService,
		AuthMiddleware: authMiddleware,
		UserStore:      usersRepo,
		BookmarkStore:  bookmarksRepo,
		Version:        version,
	})

	Serve(router, cfg)
}
