package verification

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/tahmina28072008-ux/insurance-verification/internal/app/metrics"
	"github.com/tahmina28072008-ux/insurance-verification/internal/app/models"
	"github.com/tahmina28072008-ux/insurance-verification/internal/pkg/dto/requests"
	"go.uber.org/zap"
)

// stubPatientRepository mimics the record store's exact-match contract
// over an in-memory slice and counts queries.
type stubPatientRepository struct {
	records   []models.Patient
	err       error
	callCount int
}

func (s *stubPatientRepository) FindByInsuranceDetails(ctx context.Context, policyNumber, insuranceProvider, dateOfBirth string) (*models.Patient, error) {
	s.callCount++
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.records {
		record := s.records[i]
		if record.PolicyNumber == policyNumber &&
			record.InsuranceProvider == insuranceProvider &&
			record.DateOfBirth == dateOfBirth {
			return &record, nil
		}
	}
	return nil, nil
}

func newTestUsecase(repo *stubPatientRepository) *VerificationUsecase {
	return &VerificationUsecase{
		Log:               zap.NewNop(),
		PatientRepository: repo,
		Metrics:           metrics.NewWith(prometheus.NewRegistry()),
	}
}

func verificationRequest(policy, provider, dob string) *requests.VerificationRequest {
	return &requests.VerificationRequest{
		PolicyNumber:      policy,
		InsuranceProvider: provider,
		DateOfBirth:       dob,
	}
}

func TestVerifyInsuranceExactMatch(t *testing.T) {
	repo := &stubPatientRepository{
		records: []models.Patient{
			{PolicyNumber: "A1", InsuranceProvider: "Acme", DateOfBirth: "1990-01-01", DisplayName: "Jane Roe"},
		},
	}
	usecase := newTestUsecase(repo)

	t.Run("identical three values match", func(t *testing.T) {
		result := usecase.VerifyInsurance(context.Background(), verificationRequest("A1", "Acme", "1990-01-01"))
		assert.Equal(t, models.OutcomeMatched, result.Outcome)
		assert.Equal(t, "Jane Roe", result.DisplayName)
	})

	t.Run("any single differing field yields not matched", func(t *testing.T) {
		differing := []*requests.VerificationRequest{
			verificationRequest("A2", "Acme", "1990-01-01"),
			verificationRequest("A1", "Other", "1990-01-01"),
			verificationRequest("A1", "Acme", "1990-01-02"),
		}
		for _, request := range differing {
			result := usecase.VerifyInsurance(context.Background(), request)
			assert.Equal(t, models.OutcomeNotMatched, result.Outcome)
		}
	})

	t.Run("no implicit case folding", func(t *testing.T) {
		result := usecase.VerifyInsurance(context.Background(), verificationRequest("A1", "acme", "1990-01-01"))
		assert.Equal(t, models.OutcomeNotMatched, result.Outcome)
	})
}

func TestVerifyInsuranceAnyMatchWins(t *testing.T) {
	// Duplicate records are not a failure: any match is a success and the
	// first one supplies the display name.
	repo := &stubPatientRepository{
		records: []models.Patient{
			{PolicyNumber: "A1", InsuranceProvider: "Acme", DateOfBirth: "1990-01-01", DisplayName: "First Match"},
			{PolicyNumber: "A1", InsuranceProvider: "Acme", DateOfBirth: "1990-01-01", DisplayName: "Second Match"},
		},
	}
	usecase := newTestUsecase(repo)

	result := usecase.VerifyInsurance(context.Background(), verificationRequest("A1", "Acme", "1990-01-01"))
	assert.Equal(t, models.OutcomeMatched, result.Outcome)
	assert.Equal(t, "First Match", result.DisplayName)
}

func TestVerifyInsuranceQueryFailed(t *testing.T) {
	storeErr := errors.New("connection reset")
	repo := &stubPatientRepository{err: storeErr}
	usecase := newTestUsecase(repo)

	result := usecase.VerifyInsurance(context.Background(), verificationRequest("A1", "Acme", "1990-01-01"))
	assert.Equal(t, models.OutcomeQueryFailed, result.Outcome)
	assert.Equal(t, storeErr, result.Cause)
	// No automatic retry.
	assert.Equal(t, 1, repo.callCount)
}
