package ticket

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyText is returned when a ticket has no usable text. Tickets failing
// this check are rejected before any external call is made.
var ErrEmptyText = errors.New("ticket text is empty")

// Ticket is an incoming support ticket. Tickets are produced by an external
// caller (API client or upload parser) and are immutable once received.
type Ticket struct {
	ID            uuid.UUID `json:"id" yaml:"id"`
	Subject       string    `json:"subject" yaml:"subject"`
	Body          string    `json:"body" yaml:"body"`
	CustomerEmail string    `json:"customer_email,omitempty" yaml:"customer_email,omitempty"`
	CreatedAt     time.Time `json:"created_at" yaml:"created_at"`
}

// New creates a Ticket with a fresh ID and the current timestamp.
func New(subject, body, customerEmail string) Ticket {
	return Ticket{
		ID:            uuid.New(),
		Subject:       subject,
		Body:          body,
		CustomerEmail: customerEmail,
		CreatedAt:     time.Now().UTC(),
	}
}

// Text returns the combined subject and body used for classification
// and scoring.
func (t Ticket) Text() string {
	if strings.TrimSpace(t.Subject) == "" {
		return t.Body
	}
	return t.Subject + "\n" + t.Body
}

// Validate checks that the ticket carries enough text to process.
func (t Ticket) Validate() error {
	if strings.TrimSpace(t.Subject) == "" && strings.TrimSpace(t.Body) == "" {
		return ErrEmptyText
	}
	return nil
}
