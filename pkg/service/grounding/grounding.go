// Package grounding assembles the system context block injected ahead of
// every model invocation: the tenant's business profile plus its ready
// knowledge sources.
package grounding

import (
	"context"
	"fmt"
	"strings"

	"github.com/nexus-lab/frontdesk/pkg/domain/interfaces"
	"github.com/nexus-lab/frontdesk/pkg/domain/model"
	"github.com/nexus-lab/frontdesk/pkg/domain/types"
)

// MaxSourceChars caps how many characters of one source's content are
// inlined. Longer content is cut at a rune boundary and marked truncated.
const MaxSourceChars = 2000

type Builder struct {
	knowledge interfaces.KnowledgeStore
}

func New(knowledge interfaces.KnowledgeStore) *Builder {
	return &Builder{knowledge: knowledge}
}

// BuildContext renders the grounding context for one tenant. Only ready
// sources are included, and only those scoped to the tenant; unscoped
// sources are visible to the default tenant alone. The output is
// deterministic for a fixed store state.
func (b *Builder) BuildContext(ctx context.Context, tenantID types.TenantID) (string, error) {
	tenantID = tenantID.Normalize()

	profile, err := b.knowledge.GetProfile(ctx, tenantID)
	if err != nil {
		return "", err
	}
	all, err := b.knowledge.ListSources(ctx)
	if err != nil {
		return "", err
	}

	var sources []*model.KnowledgeSource
	for _, src := range all {
		if src.Status != types.SourceStatusReady {
			continue
		}
		if src.TenantID == tenantID || (src.TenantID == "" && tenantID == types.DefaultTenant) {
			sources = append(sources, src)
		}
	}

	var sb strings.Builder
	sb.WriteString("SYSTEM CONTEXT FOR AI RECEPTIONIST:\n\n")

	sb.WriteString("--- BUSINESS DETAILS ---\n")
	fmt.Fprintf(&sb, "Name: %s\n", profile.CompanyName)
	fmt.Fprintf(&sb, "Industry: %s\n", profile.Industry)
	fmt.Fprintf(&sb, "Description: %s\n", profile.Description)
	fmt.Fprintf(&sb, "Address: %s\n", profile.Address)
	fmt.Fprintf(&sb, "Contact: %s | %s\n", profile.Phone, profile.Email)
	fmt.Fprintf(&sb, "Website: %s\n", profile.Website)
	sb.WriteString("Operating Hours:\n")
	for i, h := range profile.Hours {
		if i > 0 {
			sb.WriteString("\n")
		}
		if h.Closed {
			fmt.Fprintf(&sb, "  - %s: Closed", h.Day)
		} else {
			fmt.Fprintf(&sb, "  - %s: %s to %s", h.Day, h.Open, h.Close)
		}
	}
	sb.WriteString("\n\n")

	sb.WriteString("--- KNOWLEDGE BASE ---\n")
	if len(sources) == 0 {
		sb.WriteString("(No additional documents provided.)\n")
		return sb.String(), nil
	}

	for i, src := range sources {
		fmt.Fprintf(&sb, "\n[Source %d: %s (%s)]\n", i+1, src.Title, src.Kind)
		if src.Kind == types.SourceKindWebsite {
			fmt.Fprintf(&sb, "URL: %s\n", src.Content)
			sb.WriteString("(Note: As an AI, use your internal knowledge about this URL if available, otherwise rely on general knowledge about this business type.)\n")
			continue
		}
		content := src.Content
		if runes := []rune(content); len(runes) > MaxSourceChars {
			content = string(runes[:MaxSourceChars]) + "...(truncated)"
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
