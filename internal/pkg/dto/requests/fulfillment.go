package requests

import (
	"github.com/tahmina28072008-ux/insurance-verification/internal/app/config"
	"github.com/tahmina28072008-ux/insurance-verification/internal/pkg/constvars"
)

// FulfillmentPayload covers the three inbound webhook shapes the dialog
// platform sends. Exactly one of the envelopes is populated per
// deployment; which one is a static configuration choice, never
// detected per request.
type FulfillmentPayload struct {
	QueryResult     *ParameterEnvelope `json:"queryResult,omitempty"`
	SessionInfo     *ParameterEnvelope `json:"sessionInfo,omitempty"`
	FulfillmentInfo *ParameterEnvelope `json:"fulfillmentInfo,omitempty"`
}

type ParameterEnvelope struct {
	Parameters map[string]interface{} `json:"parameters"`
}

// VerificationRequest is the canonical identity tuple extracted from a
// fulfillment payload. It is complete iff all three fields are
// non-empty; incomplete requests never reach the verification service.
type VerificationRequest struct {
	PolicyNumber      string `validate:"required"`
	InsuranceProvider string `validate:"required"`
	DateOfBirth       string `validate:"required"`
}

// Normalizer maps a raw fulfillment payload into a VerificationRequest
// using the deployment's configured shape and parameter-key convention.
type Normalizer struct {
	shape         string
	providerParam string
}

func NewNormalizer(webhookConfig config.Webhook) *Normalizer {
	return &Normalizer{
		shape:         webhookConfig.RequestShape,
		providerParam: webhookConfig.ProviderParam,
	}
}

// Normalize never fails: missing keys yield empty fields, which the
// completeness check downstream turns into a user prompt.
func (n *Normalizer) Normalize(payload *FulfillmentPayload) *VerificationRequest {
	params := n.parameters(payload)
	return &VerificationRequest{
		PolicyNumber:      stringParameter(params, constvars.ParamPolicyNumber),
		InsuranceProvider: stringParameter(params, n.providerParam),
		DateOfBirth:       dateOfBirthParameter(params),
	}
}

func (n *Normalizer) parameters(payload *FulfillmentPayload) map[string]interface{} {
	if payload == nil {
		return nil
	}

	var envelope *ParameterEnvelope
	switch n.shape {
	case constvars.RequestShapeSessionInfo:
		envelope = payload.SessionInfo
	case constvars.RequestShapeFulfillmentInfo:
		envelope = payload.FulfillmentInfo
	default:
		envelope = payload.QueryResult
	}

	if envelope == nil {
		return nil
	}
	return envelope.Parameters
}

func stringParameter(params map[string]interface{}, key string) string {
	value, ok := params[key].(string)
	if !ok {
		return ""
	}
	return value
}

// dateOfBirthParameter accepts either a structured {year, month, day}
// object or a flat pre-formatted string, which passes through unchanged.
func dateOfBirthParameter(params map[string]interface{}) string {
	switch value := params[constvars.ParamDateOfBirth].(type) {
	case string:
		return value
	case map[string]interface{}:
		formatted, ok := FormatDateOfBirth(value)
		if !ok {
			return ""
		}
		return formatted
	default:
		return ""
	}
}
