package verification

import (
	"context"
	"time"

	"github.com/tahmina28072008-ux/insurance-verification/internal/app/contracts"
	"github.com/tahmina28072008-ux/insurance-verification/internal/app/metrics"
	"github.com/tahmina28072008-ux/insurance-verification/internal/app/models"
	"github.com/tahmina28072008-ux/insurance-verification/internal/pkg/dto/requests"
	"go.uber.org/zap"
)

type VerificationUsecase struct {
	Log               *zap.Logger
	PatientRepository contracts.PatientRepository
	Metrics           *metrics.Metrics
}

func NewVerificationUsecase(logger *zap.Logger, patientRepository contracts.PatientRepository, appMetrics *metrics.Metrics) contracts.VerificationUsecase {
	return &VerificationUsecase{
		Log:               logger,
		PatientRepository: patientRepository,
		Metrics:           appMetrics,
	}
}

// VerifyInsurance runs the read-only exact-match lookup. A store fault
// becomes OutcomeQueryFailed: it is logged, counted, and never retried.
func (uc *VerificationUsecase) VerifyInsurance(ctx context.Context, request *requests.VerificationRequest) *models.VerificationResult {
	start := time.Now()
	patient, err := uc.PatientRepository.FindByInsuranceDetails(
		ctx,
		request.PolicyNumber,
		request.InsuranceProvider,
		request.DateOfBirth,
	)
	uc.Metrics.ObserveLookup(start)

	if err != nil {
		uc.Log.Error("VerificationUsecase.VerifyInsurance store lookup failed",
			zap.Error(err),
		)
		return uc.outcome(&models.VerificationResult{
			Outcome: models.OutcomeQueryFailed,
			Cause:   err,
		})
	}

	if patient == nil {
		return uc.outcome(&models.VerificationResult{Outcome: models.OutcomeNotMatched})
	}

	return uc.outcome(&models.VerificationResult{
		Outcome:     models.OutcomeMatched,
		DisplayName: patient.DisplayName,
	})
}

func (uc *VerificationUsecase) outcome(result *models.VerificationResult) *models.VerificationResult {
	uc.Metrics.IncrementOutcome(string(result.Outcome))
	return result
}
