package contracts

import (
	"context"

	"github.com/tahmina28072008-ux/insurance-verification/internal/app/models"
)

type PatientRepository interface {
	// FindByInsuranceDetails runs a conjunctive exact-match lookup on
	// policy number, insurance provider, and canonical date-of-birth
	// string. It returns (nil, nil) when no record matches. When more
	// than one record matches, any one of them may be returned.
	FindByInsuranceDetails(ctx context.Context, policyNumber, insuranceProvider, dateOfBirth string) (*models.Patient, error)
}
