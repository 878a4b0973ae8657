package patients

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tahmina28072008-ux/insurance-verification/internal/app/config"
	"github.com/tahmina28072008-ux/insurance-verification/internal/pkg/constvars"
	"github.com/tahmina28072008-ux/insurance-verification/internal/pkg/exceptions"
	"go.mongodb.org/mongo-driver/bson"
)

func TestStoreFieldNamesFor(t *testing.T) {
	t.Run("camel convention", func(t *testing.T) {
		fields := storeFieldNamesFor(constvars.StoreFieldNamingCamel)
		assert.Equal(t, "policyNumber", fields.PolicyNumber)
		assert.Equal(t, "insuranceProvider", fields.InsuranceProvider)
		assert.Equal(t, "dateOfBirth", fields.DateOfBirth)
		assert.Equal(t, "displayName", fields.DisplayName)
	})

	t.Run("snake convention", func(t *testing.T) {
		fields := storeFieldNamesFor(constvars.StoreFieldNamingSnake)
		assert.Equal(t, "policy_number", fields.PolicyNumber)
		assert.Equal(t, "insurance_provider", fields.InsuranceProvider)
		assert.Equal(t, "date_of_birth", fields.DateOfBirth)
		assert.Equal(t, "display_name", fields.DisplayName)
	})
}

func TestPatientCollectionName(t *testing.T) {
	assert.Equal(t, "patients", patientCollectionName(""))
	assert.Equal(t, "tenants_clinic42_patients", patientCollectionName("clinic42"))
}

func TestMatchFilterIsConjunctiveEquality(t *testing.T) {
	repo := &PatientMongoRepository{fields: storeFieldNamesFor(constvars.StoreFieldNamingCamel)}

	filter := repo.matchFilter("A1", "Acme", "1990-01-01")
	assert.Equal(t, bson.M{
		"policyNumber":      "A1",
		"insuranceProvider": "Acme",
		"dateOfBirth":       "1990-01-01",
	}, filter)
}

func TestFindByInsuranceDetailsDegradedMode(t *testing.T) {
	repo := NewPatientMongoRepository(nil, "insurance", config.Webhook{
		StoreFieldNaming: constvars.StoreFieldNamingCamel,
	})

	patient, err := repo.FindByInsuranceDetails(context.Background(), "A1", "Acme", "1990-01-01")
	assert.Nil(t, patient)
	assert.Error(t, err)

	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusServiceUnavailable, customErr.StatusCode)
}

func TestDocumentString(t *testing.T) {
	document := bson.M{"displayName": "Jane Roe", "age": int32(34)}
	assert.Equal(t, "Jane Roe", documentString(document, "displayName"))
	assert.Empty(t, documentString(document, "age"))
	assert.Empty(t, documentString(document, "missing"))
}
