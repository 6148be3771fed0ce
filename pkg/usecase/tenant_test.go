package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/nexus-lab/frontdesk/pkg/domain/model"
	"github.com/nexus-lab/frontdesk/pkg/domain/types"
	"github.com/nexus-lab/frontdesk/pkg/store"
	"github.com/nexus-lab/frontdesk/pkg/usecase"
)

func TestRegisterTenant(t *testing.T) {
	ctx := context.Background()
	uc, s := setup(t, &mockModel{})
	gt.NoError(t, s.Initialize(ctx, nil)).Required()

	tenant, err := uc.RegisterTenant(ctx, usecase.RegisterTenantInput{
		Name:        "Dana Kim",
		Email:       "dana@beachside.com",
		CompanyName: "Beachside Rentals",
		Plan:        "Pro Bundle",
	})
	gt.NoError(t, err).Required()
	gt.Value(t, tenant.BusinessName).Equal("Beachside Rentals")
	gt.Value(t, tenant.MRR).Equal(500)
	gt.Value(t, tenant.Status).Equal("Active")
	gt.Value(t, tenant.BillingCycle).Equal("weekly")

	tenants, err := store.Read[model.Tenant](ctx, s, types.CollectionTenants)
	gt.NoError(t, err).Required()
	gt.Value(t, tenants[0].ID).Equal(tenant.ID)

	profiles, err := store.Read[model.AdminProfile](ctx, s, types.CollectionAdminProfiles)
	gt.NoError(t, err).Required()
	gt.Value(t, profiles[0].ID).Equal(tenant.ID)
	gt.Value(t, profiles[0].AccessLevel).Equal("tenant_admin")
}

func TestRegisterTenantUnknownPlanRegistersAtZero(t *testing.T) {
	ctx := context.Background()
	uc, _ := setup(t, &mockModel{})

	tenant, err := uc.RegisterTenant(ctx, usecase.RegisterTenantInput{
		Name:        "Dana Kim",
		Email:       "dana@beachside.com",
		CompanyName: "Beachside Rentals",
		Plan:        "Legacy Plan",
	})
	gt.NoError(t, err).Required()
	gt.Value(t, tenant.MRR).Equal(0)
}

func TestRegisterTenantValidation(t *testing.T) {
	ctx := context.Background()
	uc, _ := setup(t, &mockModel{})

	_, err := uc.RegisterTenant(ctx, usecase.RegisterTenantInput{
		Email:       "dana@beachside.com",
		CompanyName: "Beachside Rentals",
		Plan:        "Pro Bundle",
	})
	gt.Error(t, err)
}
