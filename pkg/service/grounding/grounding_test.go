package grounding_test

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/m-mizutani/gt"
	"github.com/nexus-lab/frontdesk/pkg/codec"
	"github.com/nexus-lab/frontdesk/pkg/domain/model"
	"github.com/nexus-lab/frontdesk/pkg/domain/types"
	"github.com/nexus-lab/frontdesk/pkg/kvs/memory"
	"github.com/nexus-lab/frontdesk/pkg/service/grounding"
	"github.com/nexus-lab/frontdesk/pkg/service/knowledge"
	"github.com/nexus-lab/frontdesk/pkg/store"
)

func setup(t *testing.T) (*grounding.Builder, *knowledge.Service) {
	t.Helper()
	s := store.New(memory.New(), codec.New())
	svc := knowledge.New(s, knowledge.WithIndexingDelay(time.Millisecond))
	t.Cleanup(svc.Close)
	return grounding.New(svc), svc
}

func addReadySource(t *testing.T, svc *knowledge.Service, input model.NewSourceInput) {
	t.Helper()
	ctx := context.Background()

	src, err := svc.AddSource(ctx, input)
	gt.NoError(t, err).Required()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		sources, err := svc.ListSources(ctx)
		gt.NoError(t, err).Required()
		for _, got := range sources {
			if got.ID == src.ID && got.Status == types.SourceStatusReady {
				return
			}
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("source never became ready")
}

func TestBuildContextWithoutSources(t *testing.T) {
	ctx := context.Background()
	builder, _ := setup(t)

	out, err := builder.BuildContext(ctx, "")
	gt.NoError(t, err).Required()

	gt.Value(t, strings.HasPrefix(out, "SYSTEM CONTEXT FOR AI RECEPTIONIST:\n\n")).Equal(true)
	gt.Value(t, strings.Contains(out, "--- BUSINESS DETAILS ---")).Equal(true)
	gt.Value(t, strings.Contains(out, "Name: My Business")).Equal(true)
	gt.Value(t, strings.Contains(out, "  - Monday: 09:00 to 17:00")).Equal(true)
	gt.Value(t, strings.Contains(out, "  - Sunday: Closed")).Equal(true)
	gt.Value(t, strings.Contains(out, "(No additional documents provided.)")).Equal(true)
}

func TestBuildContextIsDeterministic(t *testing.T) {
	ctx := context.Background()
	builder, svc := setup(t)

	addReadySource(t, svc, model.NewSourceInput{
		Kind:    types.SourceKindText,
		Title:   "FAQ",
		Content: "We open at nine.",
	})

	first, err := builder.BuildContext(ctx, "")
	gt.NoError(t, err).Required()
	second, err := builder.BuildContext(ctx, "")
	gt.NoError(t, err).Required()
	gt.Value(t, first).Equal(second)
}

func TestBuildContextSkipsProcessingSources(t *testing.T) {
	ctx := context.Background()
	s := store.New(memory.New(), codec.New())
	svc := knowledge.New(s, knowledge.WithIndexingDelay(time.Hour))
	t.Cleanup(svc.Close)
	builder := grounding.New(svc)

	_, err := svc.AddSource(ctx, model.NewSourceInput{
		Kind:    types.SourceKindText,
		Title:   "Still indexing",
		Content: "not yet visible",
	})
	gt.NoError(t, err).Required()

	out, err := builder.BuildContext(ctx, "")
	gt.NoError(t, err).Required()
	gt.Value(t, strings.Contains(out, "Still indexing")).Equal(false)
	gt.Value(t, strings.Contains(out, "(No additional documents provided.)")).Equal(true)
}

func TestBuildContextTenantIsolation(t *testing.T) {
	ctx := context.Background()
	builder, svc := setup(t)

	addReadySource(t, svc, model.NewSourceInput{
		Kind:     types.SourceKindText,
		Title:    "Tenant One Pricing",
		Content:  "t1 rates",
		TenantID: "t1",
	})
	addReadySource(t, svc, model.NewSourceInput{
		Kind:    types.SourceKindText,
		Title:   "Unscoped Notes",
		Content: "global only",
	})

	forT1, err := builder.BuildContext(ctx, "t1")
	gt.NoError(t, err).Required()
	gt.Value(t, strings.Contains(forT1, "Tenant One Pricing")).Equal(true)
	gt.Value(t, strings.Contains(forT1, "Unscoped Notes")).Equal(false)

	forGlobal, err := builder.BuildContext(ctx, "")
	gt.NoError(t, err).Required()
	gt.Value(t, strings.Contains(forGlobal, "Unscoped Notes")).Equal(true)
	gt.Value(t, strings.Contains(forGlobal, "Tenant One Pricing")).Equal(false)

	forT2, err := builder.BuildContext(ctx, "t2")
	gt.NoError(t, err).Required()
	gt.Value(t, strings.Contains(forT2, "Tenant One Pricing")).Equal(false)
	gt.Value(t, strings.Contains(forT2, "Unscoped Notes")).Equal(false)
}

func TestBuildContextTruncatesLongContent(t *testing.T) {
	ctx := context.Background()
	builder, svc := setup(t)

	long := strings.Repeat("a", grounding.MaxSourceChars+500)
	addReadySource(t, svc, model.NewSourceInput{
		Kind:    types.SourceKindText,
		Title:   "Long Doc",
		Content: long,
	})

	out, err := builder.BuildContext(ctx, "")
	gt.NoError(t, err).Required()
	gt.Value(t, strings.Contains(out, "...(truncated)")).Equal(true)
	gt.Value(t, strings.Contains(out, long)).Equal(false)
	gt.Value(t, strings.Contains(out, long[:grounding.MaxSourceChars])).Equal(true)
}

func TestBuildContextTruncatesOnRuneBoundary(t *testing.T) {
	ctx := context.Background()
	builder, svc := setup(t)

	long := strings.Repeat("あ", grounding.MaxSourceChars+1)
	addReadySource(t, svc, model.NewSourceInput{
		Kind:    types.SourceKindText,
		Title:   "Japanese Doc",
		Content: long,
	})

	out, err := builder.BuildContext(ctx, "")
	gt.NoError(t, err).Required()
	gt.Value(t, utf8.ValidString(out)).Equal(true)
	gt.Value(t, strings.Contains(out, strings.Repeat("あ", grounding.MaxSourceChars)+"...(truncated)")).Equal(true)
}

func TestBuildContextCountsCharactersNotBytes(t *testing.T) {
	ctx := context.Background()
	builder, svc := setup(t)

	// Well over the limit in bytes, but under it in characters.
	doc := strings.Repeat("あ", 700)
	addReadySource(t, svc, model.NewSourceInput{
		Kind:    types.SourceKindText,
		Title:   "Short Japanese Doc",
		Content: doc,
	})

	out, err := builder.BuildContext(ctx, "")
	gt.NoError(t, err).Required()
	gt.Value(t, strings.Contains(out, doc)).Equal(true)
	gt.Value(t, strings.Contains(out, "...(truncated)")).Equal(false)
}

func TestBuildContextWebsiteSource(t *testing.T) {
	ctx := context.Background()
	builder, svc := setup(t)

	addReadySource(t, svc, model.NewSourceInput{
		Kind:    types.SourceKindWebsite,
		Title:   "Homepage",
		Content: "https://example.com",
	})

	out, err := builder.BuildContext(ctx, "")
	gt.NoError(t, err).Required()
	gt.Value(t, strings.Contains(out, "[Source 1: Homepage (website)]")).Equal(true)
	gt.Value(t, strings.Contains(out, "URL: https://example.com")).Equal(true)
	gt.Value(t, strings.Contains(out, "use your internal knowledge about this URL")).Equal(true)
}
