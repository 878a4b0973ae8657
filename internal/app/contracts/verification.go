package contracts

import (
	"context"

	"github.com/tahmina28072008-ux/insurance-verification/internal/app/models"
	"github.com/tahmina28072008-ux/insurance-verification/internal/pkg/dto/requests"
)

type VerificationUsecase interface {
	// VerifyInsurance expects a complete VerificationRequest; the
	// caller must have run the completeness check first. Store faults
	// are folded into the result as OutcomeQueryFailed, never returned
	// as an error, so a fulfillment reply can always be rendered.
	VerifyInsurance(ctx context.Context, request *requests.VerificationRequest) *models.VerificationResult
}
