package domain

import (
	"encoding/json"
	"time"
)

type InteractionType string

const (
	InteractionOpenFlights InteractionType = "kiosk_open_flights"
	InteractionAddToRoute  InteractionType = "add_to_route"
	InteractionEmail       InteractionType = "email"
	InteractionQRGenerated InteractionType = "qr_generated"
)

// InteractionEvent is the single wire shape for analytics records. Degraded
// events keep the same shape with the optional fields left empty.
type InteractionEvent struct {
	ID            string          `json:"id"`
	Type          InteractionType `json:"interaction_type"`
	Timestamp     time.Time       `json:"timestamp"`
	SessionID     string          `json:"session_id"`
	DeviceID      string          `json:"device_id"`
	UserID        string          `json:"user_id,omitempty"`
	UserName      string          `json:"user_name,omitempty"`
	UserEmail     string          `json:"user_email,omitempty"`
	DestinationID string          `json:"destination_id,omitempty"`
	UserData      json.RawMessage `json:"user_data,omitempty"`
	Degraded      bool            `json:"degraded,omitempty"`
}
