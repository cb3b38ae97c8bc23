package domain

import (
	"encoding/json"
	"time"
)

// ActivityLogEntry is the durable audit record written for every
// accepted webhook event before type-specific handling runs.
type ActivityLogEntry struct {
	ID         string          `json:"id"`
	Action     string          `json:"action"`
	EntityType string          `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	NewValues  json.RawMessage `json:"new_values"`
	CreatedAt  time.Time       `json:"created_at"`
}

const (
	ActionWebhookReceived = "WEBHOOK_RECEIVED"

	EntityHighLevelEvent = "highlevel_event"
)
