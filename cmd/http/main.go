package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/tahmina28072008-ux/insurance-verification/internal/app/config"
	"github.com/tahmina28072008-ux/insurance-verification/internal/app/delivery/http/controllers"
	"github.com/tahmina28072008-ux/insurance-verification/internal/app/delivery/http/middlewares"
	"github.com/tahmina28072008-ux/insurance-verification/internal/app/delivery/http/routers"
	"github.com/tahmina28072008-ux/insurance-verification/internal/app/drivers/database"
	"github.com/tahmina28072008-ux/insurance-verification/internal/app/drivers/logger"
	"github.com/tahmina28072008-ux/insurance-verification/internal/app/metrics"
	"github.com/tahmina28072008-ux/insurance-verification/internal/app/services/patients"
	"github.com/tahmina28072008-ux/insurance-verification/internal/app/services/verification"
	"github.com/tahmina28072008-ux/insurance-verification/internal/pkg/dto/requests"
	"github.com/tahmina28072008-ux/insurance-verification/internal/pkg/dto/responses"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	// A nil client here means degraded mode: the HTTP surface stays up
	// and every lookup answers with the generic apology.
	mongoDB := database.NewMongoDB(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()
	log.Info("Webhook server listening", zap.String("port", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Printf("Error while closing resources: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	appMetrics := metrics.New()

	// Webhook
	normalizer := requests.NewNormalizer(bootstrap.InternalConfig.Webhook)
	renderer := responses.NewRenderer(bootstrap.InternalConfig.Webhook)

	// Middlewares
	accessLog := logger.NewLogrusLogger(bootstrap.InternalConfig)
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, accessLog, bootstrap.InternalConfig, renderer)

	// Verification
	patientMongoRepository := patients.NewPatientMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
		bootstrap.InternalConfig.Webhook,
	)
	verificationUsecase := verification.NewVerificationUsecase(bootstrap.Logger, patientMongoRepository, appMetrics)
	webhookController := controllers.NewWebhookController(bootstrap.Logger, verificationUsecase, normalizer, renderer)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, webhookController)
}
