package routers

import (
	"time"

	"counselink-service/internal/app/delivery/http/controllers"
	"counselink-service/internal/app/delivery/http/middlewares"
	"counselink-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, mw *middlewares.Middlewares, paymentController *controllers.PaymentController) {
	router.With(mw.Authenticate, mw.RequireRoles(constvars.RoleCustomer)).
		Post("/", paymentController.Create)

	// The callback is unauthenticated except for the shared provider
	// token, so it also gets its own per-IP limiter.
	callbackLimiter := middlewares.NewRateLimiter(10, time.Second, time.Minute)
	router.With(callbackLimiter.Limit, mw.VerifyCallbackToken).
		Post("/callback", paymentController.Callback)
}
