// Package sender delivers rendered emails through a transactional email
// provider.
package sender

import (
	"context"
	"encoding/json"
)

// Message is a single outgoing email.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Result is the provider's answer for one message. OK is false when the
// provider accepted the request but rejected the message; Raw keeps the
// provider's response body for the failure audit trail.
type Result struct {
	OK  bool
	ID  string
	Raw json.RawMessage
}

// Sender is implemented by each email provider backend.
type Sender interface {
	Send(ctx context.Context, msg Message) (*Result, error)
}
