package types

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "Scheduled"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// IsValid checks if the appointment status is valid
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	default:
		return false
	}
}

// String returns the string representation of the appointment status
func (s AppointmentStatus) String() string {
	return string(s)
}

// AppointmentKind represents the channel of an appointment
type AppointmentKind string

const (
	AppointmentKindPhone    AppointmentKind = "Phone"
	AppointmentKindVideo    AppointmentKind = "Video"
	AppointmentKindInPerson AppointmentKind = "In-Person"
)

// IsValid checks if the appointment kind is valid
func (k AppointmentKind) IsValid() bool {
	switch k {
	case AppointmentKindPhone, AppointmentKindVideo, AppointmentKindInPerson:
		return true
	default:
		return false
	}
}

// Normalize returns the kind, falling back to the default videoconference
// kind for empty or unknown values.
func (k AppointmentKind) Normalize() AppointmentKind {
	if !k.IsValid() {
		return AppointmentKindVideo
	}
	return k
}

// String returns the string representation of the appointment kind
func (k AppointmentKind) String() string {
	return string(k)
}
