package routers

import (
	"time"

	"counselink-service/internal/app/config"
	"counselink-service/internal/app/delivery/http/controllers"
	"counselink-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Auth        *controllers.AuthController
	Slot        *controllers.SlotController
	Appointment *controllers.AppointmentController
	Report      *controllers.ReportController
	Payment     *controllers.PaymentController
	Service     *controllers.ServiceController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	ctrl *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id", "X-Callback-Token"},
		ExposedHeaders:   []string{"Link", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(
		internalConfig.App.MaxRequests,
		time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second,
	))
	router.Use(mw.BodyLimit(internalConfig.App.RequestBodyLimitInMegabyte))

	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.Logging(mw.Log))
	router.Use(mw.ErrorHandler)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, mw, ctrl.Auth)
		})

		r.Route("/slots", func(r chi.Router) {
			attachSlotRoutes(r, mw, ctrl.Slot)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, mw, ctrl.Appointment)
		})

		r.Route("/reports", func(r chi.Router) {
			attachReportRoutes(r, mw, ctrl.Report)
		})

		r.Route("/payments", func(r chi.Router) {
			attachPaymentRoutes(r, mw, ctrl.Payment)
		})

		r.Route("/services", func(r chi.Router) {
			attachServiceRoutes(r, mw, ctrl.Service)
		})
	})
}
