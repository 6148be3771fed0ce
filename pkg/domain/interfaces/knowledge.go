package interfaces

import (
	"context"

	"github.com/nexus-lab/frontdesk/pkg/domain/model"
	"github.com/nexus-lab/frontdesk/pkg/domain/types"
)

// KnowledgeStore manages per-tenant business profiles and knowledge sources,
// including the asynchronous indexing lifecycle of newly added sources.
type KnowledgeStore interface {
	// GetProfile returns the tenant's business profile, or the documented
	// default profile when none is stored.
	GetProfile(ctx context.Context, tenantID types.TenantID) (*model.BusinessProfile, error)

	// SaveProfile upserts the tenant's business profile.
	SaveProfile(ctx context.Context, profile *model.BusinessProfile, tenantID types.TenantID) error

	// ListSources returns all knowledge source records, newest first.
	ListSources(ctx context.Context) ([]*model.KnowledgeSource, error)

	// AddSource inserts a source in processing status and schedules its
	// transition to ready after the indexing delay.
	AddSource(ctx context.Context, input model.NewSourceInput) (*model.KnowledgeSource, error)

	// DeleteSource removes a source. Deleting a source whose indexing delay
	// has not elapsed cancels the pending transition.
	DeleteSource(ctx context.Context, id types.SourceID) error
}
