package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tahmina28072008-ux/insurance-verification/internal/app/config"
	"github.com/tahmina28072008-ux/insurance-verification/internal/app/delivery/http/controllers"
	"github.com/tahmina28072008-ux/insurance-verification/internal/app/delivery/http/middlewares"
	"github.com/tahmina28072008-ux/insurance-verification/internal/pkg/constvars"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	webhookController *controllers.WebhookController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	if internalConfig.App.Env == constvars.AppEnvDevelopment {
		router.Use(middlewares.RequestLogger)
	}
	router.Use(middlewares.ErrorHandler)

	router.Get("/", webhookController.HandleHome)
	router.Handle("/metrics", promhttp.Handler())

	attachWebhookRoutes(router, webhookController)
}
