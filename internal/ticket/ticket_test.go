package ticket

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func TestNewAssignsIDAndTimestamp(t *testing.T) {
	tk := New("Login broken", "SSO redirects to a blank page", "user@example.com")
	if tk.ID == uuid.Nil {
		t.Error("expected a non-nil ID")
	}
	if tk.CreatedAt.IsZero() {
		t.Error("expected a timestamp")
	}
}

func TestText(t *testing.T) {
	tk := Ticket{Subject: "Login broken", Body: "SSO redirects to a blank page"}
	want := "Login broken\nSSO redirects to a blank page"
	if got := tk.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}

	bodyOnly := Ticket{Subject: "   ", Body: "just a body"}
	if got := bodyOnly.Text(); got != "just a body" {
		t.Errorf("Text() without subject = %q", got)
	}
}

func TestValidate(t *testing.T) {
	if err := (Ticket{Subject: "s", Body: "b"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (Ticket{Body: "body only"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (Ticket{Subject: "  \n\t "}).Validate(); !errors.Is(err, ErrEmptyText) {
		t.Errorf("expected ErrEmptyText, got %v", err)
	}
	if err := (Ticket{}).Validate(); !errors.Is(err, ErrEmptyText) {
		t.Errorf("expected ErrEmptyText, got %v", err)
	}
}

func TestLoadFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickets.json")
	content := `[
		{"subject": "How do I set up SSO?", "body": "We use Okta."},
		{"id": "7f9c34e2-1df0-4c27-9a6d-58c1c0ab12aa", "subject": "API question", "body": "Which SDK?"}
	]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	tickets, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tickets) != 2 {
		t.Fatalf("expected 2 tickets, got %d", len(tickets))
	}
	if tickets[0].ID == uuid.Nil {
		t.Error("missing ID should be assigned")
	}
	if tickets[1].ID.String() != "7f9c34e2-1df0-4c27-9a6d-58c1c0ab12aa" {
		t.Errorf("existing ID should be kept, got %s", tickets[1].ID)
	}
}

func TestLoadFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickets.yml")
	content := "- subject: Lineage gap\n  body: Upstream tables missing\n- subject: Glossary import\n  body: Bulk upload fails\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	tickets, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tickets) != 2 {
		t.Fatalf("expected 2 tickets, got %d", len(tickets))
	}
	if tickets[1].Subject != "Glossary import" {
		t.Errorf("unexpected subject %q", tickets[1].Subject)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte("{not an array"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Error("expected error for malformed file")
	}
}

func TestParseTopicAndSentiment(t *testing.T) {
	for _, tag := range AllTopics {
		if got, ok := ParseTopic(string(tag)); !ok || got != tag {
			t.Errorf("ParseTopic(%q) failed", tag)
		}
	}
	if _, ok := ParseTopic("Billing"); ok {
		t.Error("ParseTopic should reject unknown labels")
	}

	for _, s := range AllSentiments {
		if got, ok := ParseSentiment(string(s)); !ok || got != s {
			t.Errorf("ParseSentiment(%q) failed", s)
		}
	}
	if _, ok := ParseSentiment("Ecstatic"); ok {
		t.Error("ParseSentiment should reject unknown labels")
	}
}
