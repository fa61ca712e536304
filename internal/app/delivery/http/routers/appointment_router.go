package routers

import (
	"counselink-service/internal/app/delivery/http/controllers"
	"counselink-service/internal/app/delivery/http/middlewares"
	"counselink-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, mw *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Use(mw.Authenticate)

	router.With(mw.RequireRoles(constvars.RoleCustomer)).Post("/", appointmentController.Create)
	router.Get("/", appointmentController.FindAll)
	router.Get("/consultant/{consultant_id}", appointmentController.FindAllByConsultant)
	router.Put("/{appointment_id}/status", appointmentController.UpdateStatus)
	router.Post("/{appointment_id}/reschedule", appointmentController.Reschedule)
	router.With(mw.RequireRoles(constvars.RoleConsultant, constvars.RoleAdmin)).
		Put("/{appointment_id}/meet-link", appointmentController.AttachMeetLink)
}
