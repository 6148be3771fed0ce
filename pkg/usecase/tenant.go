package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nexus-lab/frontdesk/pkg/domain/model"
	"github.com/nexus-lab/frontdesk/pkg/domain/types"
	"github.com/nexus-lab/frontdesk/pkg/store"
)

// RegisterTenantInput is the sign-up request for a new business account.
type RegisterTenantInput struct {
	Name        string
	Email       string
	CompanyName string
	Plan        string
}

func (in *RegisterTenantInput) validate() error {
	if in.Name == "" {
		return goerr.New("owner name is required")
	}
	if in.Email == "" {
		return goerr.New("email is required")
	}
	if in.CompanyName == "" {
		return goerr.New("company name is required")
	}
	if in.Plan == "" {
		return goerr.New("plan is required")
	}
	return nil
}

// RegisterTenant creates a new tenant account with its admin profile. The
// tenant's MRR is taken from the plan catalog; an unknown plan registers at
// zero rather than failing the sign-up.
func (uc *UseCases) RegisterTenant(ctx context.Context, input RegisterTenantInput) (*model.Tenant, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	plans, err := store.Read[model.PlanTier](ctx, uc.store, types.CollectionPlans)
	if err != nil {
		return nil, err
	}
	price := 0
	for _, p := range plans {
		if p.ID == input.Plan {
			price = p.Price
			break
		}
	}

	now := uc.now().UTC()
	joined := now.Format("Jan 2, 2006")
	nextBilling := now.AddDate(0, 0, 7).Format("Jan 2, 2006")

	profile := model.AdminProfile{
		ID:          types.NewRecordID(),
		Name:        input.Name,
		Email:       input.Email,
		Role:        "Business Owner",
		AccessLevel: "tenant_admin",
		CompanyName: input.CompanyName,
		Plan:        input.Plan,
		Credits:     0,
		Billing: model.BillingInfo{
			Brand:          "Visa",
			Last4:          "4242",
			Expiry:         "12/28",
			NextBillingDue: nextBilling,
		},
	}
	if err := store.Append(ctx, uc.store, types.CollectionAdminProfiles, profile); err != nil {
		return nil, err
	}

	tenant := model.Tenant{
		ID:             profile.ID,
		BusinessName:   input.CompanyName,
		OwnerName:      input.Name,
		Email:          input.Email,
		Plan:           input.Plan,
		Status:         "Active",
		JoinedDate:     joined,
		MRR:            price,
		BillingCycle:   "weekly",
		NextBillingDue: nextBilling,
	}
	if err := store.Append(ctx, uc.store, types.CollectionTenants, tenant); err != nil {
		return nil, err
	}
	return &tenant, nil
}
