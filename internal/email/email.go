package email

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Domenick1991/kiosk/internal/domain"
	"github.com/Domenick1991/kiosk/internal/service/route"
)

var ErrNoRecipient = errors.New("email interaction has no recipient")

// Message is a composed route email.
type Message struct {
	To      string
	Subject string
	Body    string
}

type routeRequest struct {
	Email string   `json:"email"`
	Route []string `json:"route"`
}

// Sender turns email interactions into route emails. Delivery is a log line
// until an outbound mail provider is configured.
type Sender struct {
	names  map[string]string
	origin string
	logger *slog.Logger
}

// NewSender resolves destination ids against destinations when composing.
// origin is the base of the share link included in the body.
func NewSender(destinations []domain.Destination, origin string, logger *slog.Logger) *Sender {
	names := make(map[string]string, len(destinations))
	for _, d := range destinations {
		names[d.ID] = d.Name
	}
	return &Sender{names: names, origin: strings.TrimRight(origin, "/"), logger: logger}
}

// Send composes and delivers the route email for an email interaction. Other
// interaction types are ignored.
func (s *Sender) Send(ctx context.Context, event domain.InteractionEvent) error {
	if event.Type != domain.InteractionEmail {
		return nil
	}
	msg, err := s.Compose(event)
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "send route email", "to", msg.To, "subject", msg.Subject, "session_id", event.SessionID)
	return nil
}

func (s *Sender) Compose(event domain.InteractionEvent) (Message, error) {
	var req routeRequest
	if len(event.UserData) > 0 {
		if err := json.Unmarshal(event.UserData, &req); err != nil {
			return Message{}, fmt.Errorf("decode email user data: %w", err)
		}
	}
	if req.Email == "" {
		return Message{}, ErrNoRecipient
	}

	var b strings.Builder
	if event.UserName != "" {
		fmt.Fprintf(&b, "Hi %s,\n\n", event.UserName)
	}
	if len(req.Route) == 0 {
		b.WriteString("Your route is empty. Visit the kiosk to add destinations.\n")
	} else {
		b.WriteString("Your Gateway Discoveries route:\n")
		for i, id := range req.Route {
			name := s.names[id]
			if name == "" {
				name = id
			}
			fmt.Fprintf(&b, "%d. %s\n", i+1, name)
		}
		if s.origin != "" {
			fmt.Fprintf(&b, "\nOpen it again: %s\n", route.ShareLink(s.origin, req.Route))
		}
	}

	return Message{
		To:      req.Email,
		Subject: fmt.Sprintf("Your route (%d destinations)", len(req.Route)),
		Body:    b.String(),
	}, nil
}
