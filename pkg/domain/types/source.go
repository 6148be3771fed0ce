package types

import "fmt"

// SourceKind represents the kind of a knowledge source
type SourceKind string

const (
	SourceKindText    SourceKind = "text"
	SourceKindNote    SourceKind = "note"
	SourceKindWebsite SourceKind = "website"
)

// IsValid checks if the source kind is valid
func (k SourceKind) IsValid() bool {
	switch k {
	case SourceKindText, SourceKindNote, SourceKindWebsite:
		return true
	default:
		return false
	}
}

// String returns the string representation of the source kind
func (k SourceKind) String() string {
	return string(k)
}

// ParseSourceKind parses a string into a SourceKind
func ParseSourceKind(s string) (SourceKind, error) {
	kind := SourceKind(s)
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid source kind: %s", s)
	}
	return kind, nil
}

// SourceStatus represents the indexing lifecycle status of a knowledge source.
// A source is created as processing and becomes ready after the simulated
// indexing delay elapses. Only ready sources are eligible for context assembly.
type SourceStatus string

const (
	SourceStatusProcessing SourceStatus = "processing"
	SourceStatusReady      SourceStatus = "ready"
)

// IsValid checks if the source status is valid
func (s SourceStatus) IsValid() bool {
	switch s {
	case SourceStatusProcessing, SourceStatusReady:
		return true
	default:
		return false
	}
}

// String returns the string representation of the source status
func (s SourceStatus) String() string {
	return string(s)
}
