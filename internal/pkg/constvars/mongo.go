package constvars

const (
	MongoCollectionPatients = "patients"

	// MongoTenantCollectionFormat scopes the patient collection under a
	// deployment identifier when STORE_TENANT_ID is set, mirroring the
	// multi-tenant path convention the administrative writer uses.
	MongoTenantCollectionFormat = "tenants_%s_patients"
)
