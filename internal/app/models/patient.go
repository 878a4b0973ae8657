package models

// Patient is a read-only view of one record-store document. The store
// is owned and mutated by an external administrative process; this
// service never writes to it. Field names in the store vary per
// deployment (camel or snake convention), so the repository maps raw
// documents into this shape instead of relying on bson tags.
type Patient struct {
	PolicyNumber      string
	InsuranceProvider string
	DateOfBirth       string
	DisplayName       string
}
