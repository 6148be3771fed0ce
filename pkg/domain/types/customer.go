package types

// CustomerStatus represents the CRM status of a customer
type CustomerStatus string

const (
	CustomerStatusLead     CustomerStatus = "Lead"
	CustomerStatusActive   CustomerStatus = "Active"
	CustomerStatusInactive CustomerStatus = "Inactive"
)

// IsValid checks if the customer status is valid
func (s CustomerStatus) IsValid() bool {
	switch s {
	case CustomerStatusLead, CustomerStatusActive, CustomerStatusInactive:
		return true
	default:
		return false
	}
}

// String returns the string representation of the customer status
func (s CustomerStatus) String() string {
	return string(s)
}
