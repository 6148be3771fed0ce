// Package usecase wires the receptionist's application logic: responding to
// inquiries, drafting emails, summarizing notes and managing tenants.
package usecase

import (
	"time"

	"github.com/nexus-lab/frontdesk/pkg/agent/tool"
	"github.com/nexus-lab/frontdesk/pkg/domain/interfaces"
	"github.com/nexus-lab/frontdesk/pkg/service/grounding"
	"github.com/nexus-lab/frontdesk/pkg/store"
)

type UseCases struct {
	store     *store.Store
	model     interfaces.ModelClient
	grounding *grounding.Builder
	registry  *tool.Registry
	now       func() time.Time
}

type Option func(*UseCases)

// WithClock overrides the wall clock injected into receptionist prompts.
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

func New(s *store.Store, model interfaces.ModelClient, grounding *grounding.Builder, registry *tool.Registry, opts ...Option) *UseCases {
	uc := &UseCases{
		store:     s,
		model:     model,
		grounding: grounding,
		registry:  registry,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
