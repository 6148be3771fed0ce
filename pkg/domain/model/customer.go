package model

import "github.com/nexus-lab/frontdesk/pkg/domain/types"

// GuestCustomerID is the customer reference recorded when a booking names a
// customer that cannot be resolved against the customer collection. Bookings
// for unknown customers still succeed.
const GuestCustomerID types.RecordID = "guest"

// ImportedTag marks customer records produced by a bulk import so downstream
// consumers can distinguish provenance.
const ImportedTag = "Imported"

// Customer represents a CRM customer record
type Customer struct {
	ID          types.RecordID       `json:"id"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Phone       string               `json:"phone"`
	Company     string               `json:"company"`
	Status      types.CustomerStatus `json:"status"`
	LastContact string               `json:"last_contact"`
	Tags        []string             `json:"tags,omitempty"`
}
