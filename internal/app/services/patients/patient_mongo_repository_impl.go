package patients

import (
	"context"
	"fmt"

	"github.com/tahmina28072008-ux/insurance-verification/internal/app/config"
	"github.com/tahmina28072008-ux/insurance-verification/internal/app/contracts"
	"github.com/tahmina28072008-ux/insurance-verification/internal/app/models"
	"github.com/tahmina28072008-ux/insurance-verification/internal/pkg/constvars"
	"github.com/tahmina28072008-ux/insurance-verification/internal/pkg/exceptions"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// storeFieldNames holds the document field names the administrative
// process wrote. The convention (camel or snake) varies per deployment
// and must match the writer exactly, since the lookup is a literal
// equality filter.
type storeFieldNames struct {
	PolicyNumber      string
	InsuranceProvider string
	DateOfBirth       string
	DisplayName       string
}

func storeFieldNamesFor(naming string) storeFieldNames {
	if naming == constvars.StoreFieldNamingSnake {
		return storeFieldNames{
			PolicyNumber:      "policy_number",
			InsuranceProvider: "insurance_provider",
			DateOfBirth:       "date_of_birth",
			DisplayName:       "display_name",
		}
	}
	return storeFieldNames{
		PolicyNumber:      "policyNumber",
		InsuranceProvider: "insuranceProvider",
		DateOfBirth:       "dateOfBirth",
		DisplayName:       "displayName",
	}
}

func patientCollectionName(tenantID string) string {
	if tenantID == "" {
		return constvars.MongoCollectionPatients
	}
	return fmt.Sprintf(constvars.MongoTenantCollectionFormat, tenantID)
}

type PatientMongoRepository struct {
	client         *mongo.Client
	dbName         string
	collectionName string
	fields         storeFieldNames
}

// NewPatientMongoRepository accepts a nil client: that is the degraded
// mode after store bootstrap exhaustion, where every lookup fails soft.
func NewPatientMongoRepository(client *mongo.Client, dbName string, webhookConfig config.Webhook) contracts.PatientRepository {
	return &PatientMongoRepository{
		client:         client,
		dbName:         dbName,
		collectionName: patientCollectionName(webhookConfig.TenantID),
		fields:         storeFieldNamesFor(webhookConfig.StoreFieldNaming),
	}
}

func (repo *PatientMongoRepository) FindByInsuranceDetails(ctx context.Context, policyNumber, insuranceProvider, dateOfBirth string) (*models.Patient, error) {
	if repo.client == nil {
		return nil, exceptions.ErrStoreNotConnected()
	}

	collection := repo.client.Database(repo.dbName).Collection(repo.collectionName)

	var document bson.M
	err := collection.FindOne(ctx, repo.matchFilter(policyNumber, insuranceProvider, dateOfBirth)).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	return &models.Patient{
		PolicyNumber:      documentString(document, repo.fields.PolicyNumber),
		InsuranceProvider: documentString(document, repo.fields.InsuranceProvider),
		DateOfBirth:       documentString(document, repo.fields.DateOfBirth),
		DisplayName:       documentString(document, repo.fields.DisplayName),
	}, nil
}

// matchFilter builds the conjunctive equality filter. Comparison is
// exact and case-sensitive: the store holds pre-normalized values, and
// no fuzzy or partial matching is allowed.
func (repo *PatientMongoRepository) matchFilter(policyNumber, insuranceProvider, dateOfBirth string) bson.M {
	return bson.M{
		repo.fields.PolicyNumber:      policyNumber,
		repo.fields.InsuranceProvider: insuranceProvider,
		repo.fields.DateOfBirth:       dateOfBirth,
	}
}

func documentString(document bson.M, field string) string {
	value, ok := document[field].(string)
	if !ok {
		return ""
	}
	return value
}
