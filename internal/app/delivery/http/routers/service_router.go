package routers

import (
	"counselink-service/internal/app/delivery/http/controllers"
	"counselink-service/internal/app/delivery/http/middlewares"
	"counselink-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachServiceRoutes(router chi.Router, mw *middlewares.Middlewares, serviceController *controllers.ServiceController) {
	router.Get("/", serviceController.FindAll)
	router.With(mw.Authenticate, mw.RequireRoles(constvars.RoleAdmin)).
		Post("/", serviceController.Create)
}
