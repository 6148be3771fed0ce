package model

import "github.com/nexus-lab/frontdesk/pkg/domain/types"

// PlanBusinessElite is the sentinel plan tier: its absence from the persisted
// plan collection triggers the plan migration on startup.
const PlanBusinessElite = "Business Elite"

// Tenant represents one subscribed business account
type Tenant struct {
	ID             types.RecordID `json:"id"`
	BusinessName   string         `json:"business_name"`
	OwnerName      string         `json:"owner_name"`
	Email          string         `json:"email"`
	Plan           string         `json:"plan"`
	Status         string         `json:"status"`
	JoinedDate     string         `json:"joined_date"`
	MRR            int            `json:"mrr"`
	BillingCycle   string         `json:"billing_cycle"`
	NextBillingDue string         `json:"next_billing_date"`
}

// Transaction represents a billing transaction
type Transaction struct {
	ID            types.RecordID `json:"id"`
	TenantID      types.RecordID `json:"tenant_id"`
	TenantName    string         `json:"tenant_name"`
	Amount        int            `json:"amount"`
	Date          string         `json:"date"`
	Status        string         `json:"status"`
	Type          string         `json:"type"`
	PaymentMethod string         `json:"payment_method"`
}

// PlanFeature is one line item of a plan tier
type PlanFeature struct {
	Text     string `json:"text"`
	Included bool   `json:"included"`
}

// PlanTier represents a subscription plan offered to tenants
type PlanTier struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Price       int           `json:"price"`
	Period      string        `json:"period"`
	Description string        `json:"description"`
	Highlight   bool          `json:"highlight,omitempty"`
	Features    []PlanFeature `json:"features"`
}

// BillingInfo holds the stored payment method of an admin profile
type BillingInfo struct {
	Brand          string `json:"brand"`
	Last4          string `json:"last4"`
	Expiry         string `json:"expiry"`
	NextBillingDue string `json:"next_billing_date"`
}

// AdminProfile represents the account owner operating the dashboard
type AdminProfile struct {
	ID          types.RecordID `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	Role        string         `json:"role"`
	AccessLevel string         `json:"access_level"`
	CompanyName string         `json:"company_name"`
	Plan        string         `json:"plan"`
	Credits     int            `json:"credits"`
	Billing     BillingInfo    `json:"billing"`
}
