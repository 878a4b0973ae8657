package controllers

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/tahmina28072008-ux/insurance-verification/internal/app/contracts"
	"github.com/tahmina28072008-ux/insurance-verification/internal/pkg/constvars"
	"github.com/tahmina28072008-ux/insurance-verification/internal/pkg/dto/requests"
	"github.com/tahmina28072008-ux/insurance-verification/internal/pkg/dto/responses"
	"github.com/tahmina28072008-ux/insurance-verification/internal/pkg/exceptions"
	"github.com/tahmina28072008-ux/insurance-verification/internal/pkg/utils"
	"go.uber.org/zap"
)

type WebhookController struct {
	Log                 *zap.Logger
	VerificationUsecase contracts.VerificationUsecase
	Normalizer          *requests.Normalizer
	Renderer            *responses.Renderer
}

var (
	webhookControllerInstance *WebhookController
	onceWebhookController     sync.Once
)

func NewWebhookController(logger *zap.Logger, verificationUsecase contracts.VerificationUsecase, normalizer *requests.Normalizer, renderer *responses.Renderer) *WebhookController {
	onceWebhookController.Do(func() {
		webhookControllerInstance = &WebhookController{
			Log:                 logger,
			VerificationUsecase: verificationUsecase,
			Normalizer:          normalizer,
			Renderer:            renderer,
		}
	})
	return webhookControllerInstance
}

// HandleHome confirms the service is running.
func (ctrl *WebhookController) HandleHome(w http.ResponseWriter, r *http.Request) {
	utils.WriteTextResponse(w, constvars.StatusOK, constvars.WebhookRunningMessage)
}

// HandleFulfillment processes one fulfillment POST. Every exit writes a
// well-formed envelope with HTTP 200: the prompt for incomplete turns,
// the verification result for complete ones, and the generic apology
// for anything malformed or failing.
func (ctrl *WebhookController) HandleFulfillment(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		ctrl.Log.Error("WebhookController.HandleFulfillment error reading body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(exceptions.ErrReadBody(err)),
		)
		utils.WriteFulfillmentResponse(w, ctrl.Renderer.Apology())
		return
	}
	defer r.Body.Close()

	ctrl.Log.Debug("WebhookController.HandleFulfillment received payload",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.ByteString(constvars.LoggingPayloadKey, raw),
	)

	payload := new(requests.FulfillmentPayload)
	if err := json.Unmarshal(raw, payload); err != nil {
		ctrl.Log.Error("WebhookController.HandleFulfillment error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(exceptions.ErrCannotParseJSON(err)),
		)
		utils.WriteFulfillmentResponse(w, ctrl.Renderer.Apology())
		return
	}

	request := ctrl.Normalizer.Normalize(payload)

	if err := utils.ValidateStruct(request); err != nil {
		// Expected branch for incomplete conversational turns, not an
		// error: prompt for the three fields and issue no query.
		ctrl.Log.Info("WebhookController.HandleFulfillment incomplete request, prompting",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.WriteFulfillmentResponse(w, ctrl.Renderer.Prompt())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result := ctrl.VerificationUsecase.VerifyInsurance(ctx, request)

	ctrl.Log.Info("WebhookController.HandleFulfillment verification finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOutcomeKey, string(result.Outcome)),
	)
	utils.WriteFulfillmentResponse(w, ctrl.Renderer.Result(result, request))
}
