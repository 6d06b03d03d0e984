// Package auth provides authentication and authorization for the application.
//
// Credentials are verified against bcrypt hashes and sessions are carried by
// short-lived JWT bearer tokens. There is no server-side session state: every
// request is authenticated independently by the middleware.
//
// # Configuration
//
//	JWT_SECRET=<signing secret>  # Required
//	AUTH_TOKEN_EXPIRY=30m        # Access token lifetime
//	AUTH_BCRYPT_COST=12          # bcrypt cost factor
//
// # Usage
//
// Initialize authentication in entrypoint:
//
//	authService := auth.NewService(usersRepo, cfg.Auth)
//	authMiddleware := auth.NewMiddleware(usersRepo, cfg.Auth)
//	protected.Use(authMiddleware.Handler())
//
// Extract the authenticated user in handlers:
//
//	user, ok := auth.GetUser(c)
package auth
