package routers

import (
	"time"

	"counselink-service/internal/app/delivery/http/controllers"
	"counselink-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, mw *middlewares.Middlewares, authController *controllers.AuthController) {
	// Login gets a tighter per-IP budget than the router-wide limit.
	loginLimiter := middlewares.NewRateLimiter(5, time.Second, time.Minute)

	router.Post("/register", authController.Register)
	router.With(loginLimiter.Limit).Post("/login", authController.Login)
	router.With(mw.Authenticate).Post("/logout", authController.Logout)
}
