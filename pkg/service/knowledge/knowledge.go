// Package knowledge manages per-tenant business profiles and grounding
// documents, including the simulated indexing lifecycle of new documents.
package knowledge

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nexus-lab/frontdesk/pkg/domain/interfaces"
	"github.com/nexus-lab/frontdesk/pkg/domain/model"
	"github.com/nexus-lab/frontdesk/pkg/domain/types"
	"github.com/nexus-lab/frontdesk/pkg/store"
	"github.com/nexus-lab/frontdesk/pkg/utils/async"
	"github.com/nexus-lab/frontdesk/pkg/utils/logging"
)

// DefaultIndexingDelay is how long a new source stays in processing status
// before it becomes eligible for context assembly.
const DefaultIndexingDelay = 2 * time.Second

type Service struct {
	store *store.Store
	delay time.Duration
	now   func() time.Time

	mu     sync.Mutex
	timers map[types.SourceID]*time.Timer
}

var _ interfaces.KnowledgeStore = &Service{}

type Option func(*Service)

// WithIndexingDelay overrides the simulated indexing delay. Tests use a very
// short delay.
func WithIndexingDelay(d time.Duration) Option {
	return func(s *Service) {
		s.delay = d
	}
}

// WithClock overrides the wall clock used for LastUpdated stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(s *store.Store, opts ...Option) *Service {
	svc := &Service{
		store:  s,
		delay:  DefaultIndexingDelay,
		now:    time.Now,
		timers: make(map[types.SourceID]*time.Timer),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Close cancels every pending indexing transition. Sources left in
// processing status stay there until re-added.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

// GetProfile returns the tenant's stored profile, or the default profile
// when none has been saved. The default is never persisted by reading.
func (s *Service) GetProfile(ctx context.Context, tenantID types.TenantID) (*model.BusinessProfile, error) {
	tenantID = tenantID.Normalize()

	profiles, err := store.Read[model.BusinessProfile](ctx, s.store, types.CollectionBusinessProfiles)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if profiles[i].TenantID == tenantID {
			return &profiles[i], nil
		}
	}
	return model.DefaultBusinessProfile(tenantID), nil
}

// SaveProfile validates and upserts the tenant's profile.
func (s *Service) SaveProfile(ctx context.Context, profile *model.BusinessProfile, tenantID types.TenantID) error {
	if profile == nil {
		return goerr.New("profile is required")
	}
	if err := profile.Validate(); err != nil {
		return err
	}

	saved := *profile
	saved.TenantID = tenantID.Normalize()

	updated, err := store.UpdateWhere(ctx, s.store, types.CollectionBusinessProfiles,
		func(p *model.BusinessProfile) bool { return p.TenantID == saved.TenantID },
		saved,
	)
	if err != nil {
		return err
	}
	if !updated {
		return store.Append(ctx, s.store, types.CollectionBusinessProfiles, saved)
	}
	return nil
}

// ListSources returns all knowledge sources, newest first.
func (s *Service) ListSources(ctx context.Context) ([]*model.KnowledgeSource, error) {
	sources, err := store.Read[model.KnowledgeSource](ctx, s.store, types.CollectionKnowledgeSources)
	if err != nil {
		return nil, err
	}

	out := make([]*model.KnowledgeSource, len(sources))
	for i := range sources {
		out[i] = &sources[i]
	}
	return out, nil
}

// AddSource registers a source in processing status and schedules its
// transition to ready after the indexing delay.
func (s *Service) AddSource(ctx context.Context, input model.NewSourceInput) (*model.KnowledgeSource, error) {
	if !input.Kind.IsValid() {
		return nil, goerr.New("invalid source kind", goerr.V("kind", input.Kind))
	}
	if input.Title == "" {
		return nil, goerr.New("source title is required")
	}

	src := model.KnowledgeSource{
		ID:          types.NewSourceID(),
		Kind:        input.Kind,
		Title:       input.Title,
		Content:     input.Content,
		FileName:    input.FileName,
		TenantID:    input.TenantID,
		Status:      types.SourceStatusProcessing,
		LastUpdated: s.now().Format("1/2/2006, 3:04:05 PM"),
	}

	if err := store.Append(ctx, s.store, types.CollectionKnowledgeSources, src); err != nil {
		return nil, err
	}

	s.scheduleIndexing(ctx, src.ID)
	return &src, nil
}

func (s *Service) scheduleIndexing(ctx context.Context, id types.SourceID) {
	// Detach from the request context: the caller's request finishes long
	// before the delay elapses.
	bg := logging.With(context.Background(), logging.From(ctx))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.timers[id] = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		delete(s.timers, id)
		s.mu.Unlock()

		async.Dispatch(bg, func(ctx context.Context) error {
			if err := s.markReady(ctx, id); err != nil {
				return goerr.Wrap(err, "failed to mark knowledge source ready",
					goerr.V("source_id", id))
			}
			return nil
		})
	})
}

// markReady flips a source from processing to ready. A source deleted before
// the timer fires is simply gone; that is not an error.
func (s *Service) markReady(ctx context.Context, id types.SourceID) error {
	sources, err := store.Read[model.KnowledgeSource](ctx, s.store, types.CollectionKnowledgeSources)
	if err != nil {
		return err
	}

	for i := range sources {
		if sources[i].ID != id || sources[i].Status != types.SourceStatusProcessing {
			continue
		}
		ready := sources[i]
		ready.Status = types.SourceStatusReady
		_, err := store.UpdateWhere(ctx, s.store, types.CollectionKnowledgeSources,
			func(src *model.KnowledgeSource) bool { return src.ID == id },
			ready,
		)
		return err
	}
	return nil
}

// DeleteSource removes a source and cancels its pending indexing transition.
// Deleting an unknown source is a no-op.
func (s *Service) DeleteSource(ctx context.Context, id types.SourceID) error {
	s.mu.Lock()
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()

	_, err := store.DeleteWhere(ctx, s.store, types.CollectionKnowledgeSources,
		func(src *model.KnowledgeSource) bool { return src.ID == id },
	)
	return err
}
