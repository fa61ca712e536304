package routers

import (
	"counselink-service/internal/app/delivery/http/controllers"
	"counselink-service/internal/app/delivery/http/middlewares"
	"counselink-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, mw *middlewares.Middlewares, reportController *controllers.ReportController) {
	router.Use(mw.Authenticate)

	router.With(mw.RequireRoles(constvars.RoleConsultant, constvars.RoleAdmin)).
		Post("/", reportController.Submit)
	router.Get("/appointment/{appointment_id}", reportController.FindByAppointment)
}
