package types

import "github.com/google/uuid"

// RecordID identifies a single record within a collection. IDs are stable and
// unguessable for the dataset sizes involved, but not cryptographically
// meaningful.
type RecordID string

// NewRecordID generates a new UUID v4 RecordID
func NewRecordID() RecordID {
	return RecordID(uuid.New().String())
}

// String returns the string representation of the record ID
func (id RecordID) String() string {
	return string(id)
}

// TenantID identifies an isolated business account. Grounding data scoped to
// one tenant must never leak into another tenant's context.
type TenantID string

// DefaultTenant is the tenant key used when no tenant is specified.
const DefaultTenant TenantID = "global"

// Normalize returns the tenant ID, treating empty as DefaultTenant.
func (t TenantID) Normalize() TenantID {
	if t == "" {
		return DefaultTenant
	}
	return t
}

// String returns the string representation of the tenant ID
func (t TenantID) String() string {
	return string(t)
}

// SourceID is a UUID-based identifier for KnowledgeSource
type SourceID string

// NewSourceID generates a new UUID v4 SourceID
func NewSourceID() SourceID {
	return SourceID(uuid.New().String())
}

// String returns the string representation of the source ID
func (id SourceID) String() string {
	return string(id)
}
