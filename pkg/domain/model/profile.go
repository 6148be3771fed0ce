package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/nexus-lab/frontdesk/pkg/domain/types"
)

// Weekdays lists the calendar weekdays in schedule order.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// BusinessHours is one weekly-schedule entry. Open and Close are HH:MM
// times of day; they are meaningless when Closed is true.
type BusinessHours struct {
	Day    string `json:"day"`
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// BusinessProfile holds the structured identity of a tenant's business.
// Exactly one profile exists per tenant; the schedule always carries exactly
// one entry per calendar weekday.
type BusinessProfile struct {
	TenantID    types.TenantID  `json:"tenant_id"`
	CompanyName string          `json:"company_name"`
	Industry    string          `json:"industry"`
	Description string          `json:"description"`
	Address     string          `json:"address"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Website     string          `json:"website"`
	Hours       []BusinessHours `json:"hours"`
}

// Validate checks the weekly-schedule invariant: exactly one entry per
// calendar weekday, no duplicates.
func (p *BusinessProfile) Validate() error {
	if len(p.Hours) != len(Weekdays) {
		return goerr.New("profile schedule must have one entry per weekday",
			goerr.V("entries", len(p.Hours)))
	}

	seen := make(map[string]bool, len(Weekdays))
	valid := make(map[string]bool, len(Weekdays))
	for _, day := range Weekdays {
		valid[day] = true
	}
	for _, h := range p.Hours {
		if !valid[h.Day] {
			return goerr.New("unknown weekday in profile schedule", goerr.V("day", h.Day))
		}
		if seen[h.Day] {
			return goerr.New("duplicate weekday in profile schedule", goerr.V("day", h.Day))
		}
		seen[h.Day] = true
	}
	return nil
}

// DefaultBusinessProfile returns the documented default profile used when a
// tenant has not saved one: standard business hours Monday through Friday,
// a short Saturday, and Sunday closed.
func DefaultBusinessProfile(tenantID types.TenantID) *BusinessProfile {
	hours := make([]BusinessHours, 0, len(Weekdays))
	for _, day := range Weekdays {
		switch day {
		case "Saturday":
			hours = append(hours, BusinessHours{Day: day, Open: "10:00", Close: "14:00"})
		case "Sunday":
			hours = append(hours, BusinessHours{Day: day, Open: "00:00", Close: "00:00", Closed: true})
		default:
			hours = append(hours, BusinessHours{Day: day, Open: "09:00", Close: "17:00"})
		}
	}

	return &BusinessProfile{
		TenantID:    tenantID.Normalize(),
		CompanyName: "My Business",
		Industry:    "General",
		Hours:       hours,
	}
}
