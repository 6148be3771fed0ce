package store

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nexus-lab/frontdesk/pkg/domain/model"
	"github.com/nexus-lab/frontdesk/pkg/domain/types"
	"github.com/nexus-lab/frontdesk/pkg/utils/logging"
	"github.com/pelletier/go-toml/v2"
)

// SeedData holds the initial content of every collection. A TOML file with
// the same shape can override the built-in defaults for demos and tests.
type SeedData struct {
	Customers     []model.Customer        `toml:"customers"`
	Calls         []model.CallLog         `toml:"calls"`
	Emails        []model.EmailMessage    `toml:"emails"`
	AdminProfiles []model.AdminProfile    `toml:"admin_profiles"`
	Tenants       []model.Tenant          `toml:"tenants"`
	Transactions  []model.Transaction     `toml:"transactions"`
	Plans         []model.PlanTier        `toml:"plans"`
	Appointments  []model.Appointment     `toml:"appointments"`
	Tasks         []model.Task            `toml:"tasks"`
	Jobs          []model.Job             `toml:"jobs"`
	Workers       []model.Worker          `toml:"workers"`
	Sources       []model.KnowledgeSource `toml:"knowledge_sources"`
	Profiles      []model.BusinessProfile `toml:"business_profiles"`
}

// LoadSeedFile reads seed data from a TOML file.
func LoadSeedFile(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read seed file", goerr.V("path", path))
	}
	var seed SeedData
	if err := toml.Unmarshal(raw, &seed); err != nil {
		return nil, goerr.Wrap(err, "failed to parse seed file", goerr.V("path", path))
	}
	return &seed, nil
}

// DefaultPlans returns the canonical plan catalog. The Business Elite tier is
// the migration sentinel: persisted catalogs missing it are overwritten.
func DefaultPlans() []model.PlanTier {
	return []model.PlanTier{
		{
			ID:          "Email Only",
			Name:        "Email Only",
			Price:       100,
			Period:      "week",
			Description: "Perfect for businesses that just need to automate their inbox.",
			Features: []model.PlanFeature{
				{Text: "AI Email Drafts", Included: true},
				{Text: "Smart Templates", Included: true},
				{Text: "Email Analytics", Included: true},
				{Text: "CRM Integration", Included: true},
				{Text: "AI Receptionist", Included: false},
				{Text: "Call Recording", Included: false},
				{Text: "Voice Transcription", Included: false},
			},
		},
		{
			ID:          "Receptionist Only",
			Name:        "Receptionist Only",
			Price:       400,
			Period:      "week",
			Description: "Automate your phone lines with a human-like AI voice agent.",
			Features: []model.PlanFeature{
				{Text: "AI Voice Receptionist", Included: true},
				{Text: "24/7 Call Handling", Included: true},
				{Text: "Call Recording & Transcripts", Included: true},
				{Text: "Appointment Booking", Included: true},
				{Text: "AI Email Drafts", Included: false},
				{Text: "Email Analytics", Included: false},
				{Text: "Smart Templates", Included: false},
			},
		},
		{
			ID:          "Pro Bundle",
			Name:        "Pro Bundle",
			Price:       500,
			Period:      "week",
			Description: "The complete package. Automate everything and save time.",
			Features: []model.PlanFeature{
				{Text: "AI Voice Receptionist", Included: true},
				{Text: "AI Email Automation", Included: true},
				{Text: "Unified CRM Dashboard", Included: true},
				{Text: "Advanced Analytics", Included: true},
				{Text: "Priority Support", Included: true},
				{Text: "Unlimited Storage", Included: true},
				{Text: "Job Allocation", Included: false},
			},
		},
		{
			ID:          model.PlanBusinessElite,
			Name:        model.PlanBusinessElite,
			Price:       700,
			Period:      "week",
			Description: "The ultimate power suite. Includes AI Field Operations & Dispatch.",
			Highlight:   true,
			Features: []model.PlanFeature{
				{Text: "Everything in Pro Bundle", Included: true},
				{Text: "Job Allocation & Dispatch", Included: true},
				{Text: "Worker Management", Included: true},
				{Text: "SMS Job Alerts", Included: true},
				{Text: "Real-time Status Tracking", Included: true},
				{Text: "Priority 24/7 Support", Included: true},
				{Text: "Dedicated Account Manager", Included: true},
			},
		},
	}
}

// DefaultSeed returns the built-in demo dataset used when no seed file is
// given.
func DefaultSeed() *SeedData {
	return &SeedData{
		Customers: []model.Customer{
			{
				ID:          "c1",
				Name:        "Jane Doe Realty",
				Email:       "jane@janedoerealty.com",
				Phone:       "+1 (555) 010-2234",
				Company:     "Jane Doe Realty",
				Status:      types.CustomerStatusActive,
				LastContact: "Oct 24, 2023",
			},
			{
				ID:          "c2",
				Name:        "Mike's Plumbing",
				Email:       "mike@mikesplumbing.com",
				Phone:       "+1 (555) 010-8841",
				Company:     "Mike's Plumbing LLC",
				Status:      types.CustomerStatusActive,
				LastContact: "Oct 22, 2023",
			},
			{
				ID:          "c3",
				Name:        "Sarah Chen",
				Email:       "sarah.chen@outlook.com",
				Phone:       "+1 (555) 010-5512",
				Company:     "",
				Status:      types.CustomerStatusLead,
				LastContact: "Oct 20, 2023",
			},
		},
		Calls: []model.CallLog{
			{
				ID:         "call1",
				CustomerID: "c1",
				Caller:     "Jane Doe Realty",
				Date:       "Oct 24, 2023",
				Duration:   "4m 12s",
				Summary:    "Asked about weekend availability for a property walkthrough.",
				Sentiment:  "Positive",
			},
			{
				ID:         "call2",
				CustomerID: "c2",
				Caller:     "Mike's Plumbing",
				Date:       "Oct 22, 2023",
				Duration:   "2m 03s",
				Summary:    "Rescheduled Tuesday service call to Thursday morning.",
				Sentiment:  "Neutral",
			},
		},
		Emails: []model.EmailMessage{
			{
				ID:      "e1",
				Sender:  "Sarah Chen",
				Email:   "sarah.chen@outlook.com",
				Subject: "Pricing question",
				Preview: "Hi, could you send over your current rates for...",
				Content: "Hi, could you send over your current rates for a recurring weekly booking? Thanks, Sarah",
				Date:    "Oct 20, 2023",
				Read:    false,
			},
		},
		AdminProfiles: []model.AdminProfile{
			{
				ID:          "admin",
				Name:        "Alex Morgan",
				Email:       "alex@mybusiness.com",
				Phone:       "+1 (555) 010-0001",
				Role:        "Owner",
				AccessLevel: "Full",
				CompanyName: "My Business",
				Plan:        "Pro Bundle",
				Credits:     250,
				Billing: model.BillingInfo{
					Brand:          "Visa",
					Last4:          "4242",
					Expiry:         "09/27",
					NextBillingDue: "Nov 15, 2023",
				},
			},
		},
		Tenants: []model.Tenant{
			{
				ID:             "t1",
				BusinessName:   "Acme Supplies",
				OwnerName:      "John Doe",
				Email:          "john@acme.com",
				Plan:           "Pro Bundle",
				Status:         "Active",
				JoinedDate:     "Jan 15, 2023",
				MRR:            2000,
				BillingCycle:   "weekly",
				NextBillingDue: "Nov 15, 2023",
			},
		},
		Transactions: []model.Transaction{},
		Plans:        DefaultPlans(),
		Appointments: []model.Appointment{},
		Tasks:        []model.Task{},
		Jobs: []model.Job{
			{
				ID:            "j1",
				Title:         "Install water heater",
				Address:       "118 Birch Ave",
				ScheduledDate: "Oct 26, 2023",
				Status:        "Assigned",
				WorkerID:      "w1",
			},
			{
				ID:            "j2",
				Title:         "Quarterly HVAC inspection",
				Address:       "45 Lakeview Dr",
				ScheduledDate: "Oct 28, 2023",
				Status:        "Unassigned",
			},
		},
		Workers: []model.Worker{
			{
				ID:     "w1",
				Name:   "Carlos Rivera",
				Phone:  "+1 (555) 010-7710",
				Skills: []string{"Plumbing", "HVAC"},
				Active: true,
			},
			{
				ID:     "w2",
				Name:   "Dana Kim",
				Phone:  "+1 (555) 010-7711",
				Skills: []string{"Electrical"},
				Active: true,
			},
		},
		Sources:  []model.KnowledgeSource{},
		Profiles: []model.BusinessProfile{},
	}
}

// Initialize seeds every collection whose key is entirely absent from the
// backing store. Present keys are left untouched, even if their blob no
// longer decodes; recovery of a corrupt collection is a write-path concern.
// Safe to call on every startup.
func (s *Store) Initialize(ctx context.Context, seed *SeedData) error {
	if seed == nil {
		seed = DefaultSeed()
	}

	if err := seedCollection(ctx, s, types.CollectionCustomers, seed.Customers); err != nil {
		return err
	}
	if err := seedCollection(ctx, s, types.CollectionCalls, seed.Calls); err != nil {
		return err
	}
	if err := seedCollection(ctx, s, types.CollectionEmails, seed.Emails); err != nil {
		return err
	}
	if err := seedCollection(ctx, s, types.CollectionAdminProfiles, seed.AdminProfiles); err != nil {
		return err
	}
	if err := seedCollection(ctx, s, types.CollectionTenants, seed.Tenants); err != nil {
		return err
	}
	if err := seedCollection(ctx, s, types.CollectionTransactions, seed.Transactions); err != nil {
		return err
	}
	if err := seedCollection(ctx, s, types.CollectionPlans, seed.Plans); err != nil {
		return err
	}
	if err := seedCollection(ctx, s, types.CollectionAppointments, seed.Appointments); err != nil {
		return err
	}
	if err := seedCollection(ctx, s, types.CollectionTasks, seed.Tasks); err != nil {
		return err
	}
	if err := seedCollection(ctx, s, types.CollectionJobs, seed.Jobs); err != nil {
		return err
	}
	if err := seedCollection(ctx, s, types.CollectionWorkers, seed.Workers); err != nil {
		return err
	}
	if err := seedCollection(ctx, s, types.CollectionKnowledgeSources, seed.Sources); err != nil {
		return err
	}
	if err := seedCollection(ctx, s, types.CollectionBusinessProfiles, seed.Profiles); err != nil {
		return err
	}

	return s.MigratePlans(ctx)
}

func seedCollection[T any](ctx context.Context, s *Store, col types.Collection, records []T) error {
	_, ok, err := s.kv.Get(ctx, col.Key())
	if err != nil {
		return goerr.Wrap(err, "failed to probe collection for seeding", goerr.V("collection", col))
	}
	if ok {
		return nil
	}
	if records == nil {
		records = []T{}
	}
	return WriteAll(ctx, s, col, records)
}

// MigratePlans force-rewrites the plan catalog with the defaults when the
// Business Elite tier is missing. Customized catalogs that kept the sentinel
// are preserved.
func (s *Store) MigratePlans(ctx context.Context) error {
	plans, err := Read[model.PlanTier](ctx, s, types.CollectionPlans)
	if err != nil {
		return err
	}
	for _, p := range plans {
		if p.ID == model.PlanBusinessElite {
			return nil
		}
	}

	logging.From(ctx).Info("migrating plan catalog", "added", model.PlanBusinessElite)
	return WriteAll(ctx, s, types.CollectionPlans, DefaultPlans())
}
