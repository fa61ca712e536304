package routers

import (
	"counselink-service/internal/app/delivery/http/controllers"
	"counselink-service/internal/app/delivery/http/middlewares"
	"counselink-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachSlotRoutes(router chi.Router, mw *middlewares.Middlewares, slotController *controllers.SlotController) {
	router.Get("/", slotController.FindAll)
	router.With(mw.Authenticate, mw.RequireRoles(constvars.RoleConsultant, constvars.RoleAdmin)).
		Post("/", slotController.Create)
	router.With(mw.Authenticate, mw.RequireRoles(constvars.RoleConsultant, constvars.RoleAdmin)).
		Delete("/{slot_id}", slotController.Delete)
}
