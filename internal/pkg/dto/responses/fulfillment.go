package responses

import (
	"fmt"

	"github.com/tahmina28072008-ux/insurance-verification/internal/app/config"
	"github.com/tahmina28072008-ux/insurance-verification/internal/app/models"
	"github.com/tahmina28072008-ux/insurance-verification/internal/pkg/constvars"
	"github.com/tahmina28072008-ux/insurance-verification/internal/pkg/dto/requests"
)

// FlatFulfillmentResponse is the platform's flat reply envelope.
type FlatFulfillmentResponse struct {
	FulfillmentText string `json:"fulfillmentText"`
}

// StructuredFulfillmentResponse is the nested reply envelope:
// fulfillmentResponse.messages[0].text.text[0] holds the spoken string,
// with an optional routing tag for definite outcomes.
type StructuredFulfillmentResponse struct {
	FulfillmentResponse FulfillmentResponse `json:"fulfillmentResponse"`
}

type FulfillmentResponse struct {
	Messages []FulfillmentMessage `json:"messages"`
	Tag      string               `json:"tag,omitempty"`
}

type FulfillmentMessage struct {
	Text FulfillmentText `json:"text"`
}

type FulfillmentText struct {
	Text []string `json:"text"`
}

// Renderer turns verification outcomes into the deployment's reply
// envelope. The envelope variant is static configuration, like the
// request shape.
type Renderer struct {
	structured bool
	// The fulfillment-info integration also speaks the patient's
	// display name in the confirmation.
	includeDisplayName bool
}

func NewRenderer(webhookConfig config.Webhook) *Renderer {
	return &Renderer{
		structured:         webhookConfig.ResponseEnvelope == constvars.ResponseEnvelopeStructured,
		includeDisplayName: webhookConfig.RequestShape == constvars.RequestShapeFulfillmentInfo,
	}
}

// Prompt is the completeness-failure reply: an expected conversational
// branch, not an error.
func (r *Renderer) Prompt() interface{} {
	return r.envelope(constvars.VerificationPromptMessage, "")
}

// Apology is the generic trouble reply for store faults and malformed
// payloads. It never exposes internal error detail.
func (r *Renderer) Apology() interface{} {
	return r.envelope(constvars.VerificationTroubleMessage, "")
}

func (r *Renderer) Result(result *models.VerificationResult, request *requests.VerificationRequest) interface{} {
	switch result.Outcome {
	case models.OutcomeMatched:
		return r.envelope(r.confirmationText(result, request), constvars.TagValidCode)
	case models.OutcomeNotMatched:
		return r.envelope(constvars.VerificationNotFoundMessage, constvars.TagInvalidCode)
	default:
		return r.Apology()
	}
}

func (r *Renderer) confirmationText(result *models.VerificationResult, request *requests.VerificationRequest) string {
	if r.includeDisplayName && result.DisplayName != "" {
		return fmt.Sprintf(
			constvars.VerificationConfirmedWithNameFormat,
			result.DisplayName,
			request.InsuranceProvider,
			request.PolicyNumber,
		)
	}
	return fmt.Sprintf(
		constvars.VerificationConfirmedFormat,
		request.InsuranceProvider,
		request.PolicyNumber,
	)
}

func (r *Renderer) envelope(text, tag string) interface{} {
	if !r.structured {
		return FlatFulfillmentResponse{FulfillmentText: text}
	}
	return StructuredFulfillmentResponse{
		FulfillmentResponse: FulfillmentResponse{
			Messages: []FulfillmentMessage{
				{Text: FulfillmentText{Text: []string{text}}},
			},
			Tag: tag,
		},
	}
}
