package kafka

import (
	"context"
	"testing"

	"github.com/Domenick1991/kiosk/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDecodeInteraction(t *testing.T) {
	event, ok := decodeInteraction([]byte(`{"id":"e1","interaction_type":"email","session_id":"sess_1_a","device_id":"kiosk-local","user_data":{"email":"a@b.co","route":["kruger"]}}`))

	assert.True(t, ok)
	assert.Equal(t, domain.InteractionEmail, event.Type)
	assert.Equal(t, "sess_1_a", event.SessionID)
	assert.JSONEq(t, `{"email":"a@b.co","route":["kruger"]}`, string(event.UserData))
}

func TestDecodeInteraction_Rejects(t *testing.T) {
	for _, raw := range []string{`not json`, `{}`, `{"session_id":"sess_1_a"}`} {
		_, ok := decodeInteraction([]byte(raw))
		assert.False(t, ok, raw)
	}
}

func TestNewProducer_NoBrokers(t *testing.T) {
	p := NewProducer(nil, nil)
	defer p.Close()

	_, err := p.CheckConnection(context.Background())
	assert.Error(t, err)
}
