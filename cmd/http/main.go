package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"counselink-service/internal/app/config"
	"counselink-service/internal/app/delivery/http/controllers"
	"counselink-service/internal/app/delivery/http/middlewares"
	"counselink-service/internal/app/delivery/http/routers"
	"counselink-service/internal/app/drivers/database"
	"counselink-service/internal/app/drivers/logger"
	"counselink-service/internal/app/drivers/messaging"
	"counselink-service/internal/app/services/core/accounts"
	"counselink-service/internal/app/services/core/appointments"
	"counselink-service/internal/app/services/core/payments"
	"counselink-service/internal/app/services/core/reports"
	"counselink-service/internal/app/services/core/servicecatalog"
	"counselink-service/internal/app/services/core/session"
	"counselink-service/internal/app/services/core/slots"
	"counselink-service/internal/app/services/shared/locker"
	paymentgateway "counselink-service/internal/app/services/shared/payment_gateway"
	"counselink-service/internal/app/services/shared/paymentqueue"
	sharedredis "counselink-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	processLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		processLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)

	queueService, err := paymentqueue.NewService(rabbitConn, zapLogger, 10)
	if err != nil {
		processLog.Fatalf("Failed to set up payment queue: %v", err)
	}

	// Shared services
	redisRepository := sharedredis.NewRedisRepository(redisClient)
	lockerService := locker.NewLockService(redisRepository, zapLogger)
	sessionService := session.NewSessionService(redisRepository, internalConfig)
	gatewayService := paymentgateway.NewGatewayService(internalConfig, zapLogger)

	// Repositories
	dbName := driverConfig.MongoDB.DbName
	accountRepository := accounts.NewAccountMongoRepository(mongoClient, dbName)
	slotRepository := slots.NewSlotMongoRepository(mongoClient, dbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(mongoClient, dbName)
	paymentRepository := payments.NewPaymentMongoRepository(mongoClient, dbName)
	reportRepository := reports.NewReportMongoRepository(mongoClient, dbName)
	serviceRepository := servicecatalog.NewServiceMongoRepository(mongoClient, dbName)

	// Usecases
	authUsecase := accounts.NewAuthUsecase(accountRepository, sessionService, internalConfig, zapLogger)
	slotUsecase := slots.NewSlotUsecase(slotRepository, zapLogger)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository, slotRepository, serviceRepository, lockerService, internalConfig, zapLogger)
	paymentUsecase := payments.NewPaymentUsecase(
		paymentRepository, appointmentRepository, serviceRepository, appointmentUsecase,
		gatewayService, queueService, internalConfig, zapLogger)
	reportUsecase := reports.NewReportUsecase(reportRepository, appointmentRepository, slotRepository, zapLogger)
	serviceUsecase := servicecatalog.NewServiceUsecase(serviceRepository, zapLogger)

	// Background worker
	callbackWorker := payments.NewCallbackWorker(
		paymentUsecase, paymentRepository, queueService, lockerService, internalConfig, zapLogger)
	workerStop := callbackWorker.Start()

	// HTTP delivery
	mw := middlewares.NewMiddlewares(zapLogger, sessionService, internalConfig)
	chiRouter := chi.NewRouter()
	routers.SetupRoutes(chiRouter, internalConfig, mw, &routers.Controllers{
		Auth:        controllers.NewAuthController(zapLogger, authUsecase),
		Slot:        controllers.NewSlotController(zapLogger, slotUsecase),
		Appointment: controllers.NewAppointmentController(zapLogger, appointmentUsecase),
		Report:      controllers.NewReportController(zapLogger, reportUsecase),
		Payment:     controllers.NewPaymentController(zapLogger, paymentUsecase),
		Service:     controllers.NewServiceController(zapLogger, serviceUsecase),
	})

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitConn,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
		WorkerStop: func() {
			workerStop()
			if err := queueService.Close(); err != nil {
				processLog.Errorf("Failed to close payment queue channel: %v", err)
			}
		},
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		processLog.Infof("Server listening on %s", internalConfig.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			processLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	processLog.Info("Waiting for pending requests to finish..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		processLog.Errorf("Server shutdown error: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		processLog.Errorf("Bootstrap shutdown error: %v", err)
	}

	processLog.Info("Server stopped gracefully")
}
