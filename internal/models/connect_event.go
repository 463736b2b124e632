package models

// Connect event actions published to the event bus.
const (
	EventConnectSent      = "sent"
	EventConnectResponded = "responded"
)

// ConnectEvent is the payload published to Kafka when a connect
// request is created or resolved.
type ConnectEvent struct {
	EventID   string `json:"event_id"`
	RequestID string `json:"request_id"`
	Action    string `json:"action"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}
