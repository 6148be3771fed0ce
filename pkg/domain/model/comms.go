package model

import "github.com/nexus-lab/frontdesk/pkg/domain/types"

// CallLog represents one recorded inbound or outbound call
type CallLog struct {
	ID         types.RecordID `json:"id"`
	CustomerID types.RecordID `json:"customer_id"`
	Caller     string         `json:"caller"`
	Date       string         `json:"date"`
	Duration   string         `json:"duration"`
	Summary    string         `json:"summary"`
	Sentiment  string         `json:"sentiment,omitempty"`
}

// EmailMessage represents one email in the unified inbox
type EmailMessage struct {
	ID      types.RecordID `json:"id"`
	Sender  string         `json:"sender"`
	Email   string         `json:"email"`
	Subject string         `json:"subject"`
	Preview string         `json:"preview"`
	Content string         `json:"content"`
	Date    string         `json:"date"`
	Read    bool           `json:"read"`
}
