package model

import "github.com/nexus-lab/frontdesk/pkg/domain/types"

// KnowledgeSource represents one grounding document for a tenant. A source
// with an empty TenantID is unscoped and visible only to the default tenant.
type KnowledgeSource struct {
	ID          types.SourceID     `json:"id"`
	Kind        types.SourceKind   `json:"kind"`
	Title       string             `json:"title"`
	Content     string             `json:"content"`
	FileName    string             `json:"file_name,omitempty"`
	TenantID    types.TenantID     `json:"tenant_id,omitempty"`
	Status      types.SourceStatus `json:"status"`
	LastUpdated string             `json:"last_updated"`
}

// NewSourceInput is the request to register a new knowledge source.
type NewSourceInput struct {
	Kind     types.SourceKind
	Title    string
	Content  string
	FileName string
	TenantID types.TenantID
}
