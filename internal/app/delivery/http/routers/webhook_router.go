package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/tahmina28072008-ux/insurance-verification/internal/app/delivery/http/controllers"
)

func attachWebhookRoutes(r chi.Router, webhookController *controllers.WebhookController) {
	r.Post("/webhook", webhookController.HandleFulfillment)
}
