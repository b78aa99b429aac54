package dto

import "time"

// AuditMessage is the wire shape published on the audit topic.
type AuditMessage struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}
