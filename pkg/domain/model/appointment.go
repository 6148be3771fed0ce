package model

import "github.com/nexus-lab/frontdesk/pkg/domain/types"

// DefaultAppointmentMinutes is the duration recorded when a booking does not
// specify one.
const DefaultAppointmentMinutes = 30

// Appointment represents a scheduled appointment with a customer. CustomerID
// is GuestCustomerID when the booking could not be linked to a known customer.
type Appointment struct {
	ID           types.RecordID          `json:"id"`
	CustomerID   types.RecordID          `json:"customer_id"`
	CustomerName string                  `json:"customer_name"`
	Title        string                  `json:"title"`
	Date         string                  `json:"date"`
	Time         string                  `json:"time"`
	Duration     int                     `json:"duration"`
	Kind         types.AppointmentKind   `json:"kind"`
	Status       types.AppointmentStatus `json:"status"`
	Notes        string                  `json:"notes"`
}
