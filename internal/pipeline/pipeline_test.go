package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/leadtrack-dev/leadtrack/internal/contacts"
	"github.com/leadtrack-dev/leadtrack/internal/logging"
	"github.com/leadtrack-dev/leadtrack/internal/message"
)

type stubGenerator struct {
	failFor string
}

func (g *stubGenerator) GenerateMessage(_ context.Context, req message.Request) (string, error) {
	if req.Name == g.failFor {
		return "", &message.GenerationError{Name: req.Name, Err: errors.New("quota exceeded")}
	}
	return "Hello " + req.Name, nil
}

func TestRunWritesEveryStage(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")
	p := New(dataDir, &stubGenerator{}, logging.New("error"))

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, name := range []string{EventsFile, ContactsFile, WithChannelsFile, WithMessagesFile} {
		if _, err := os.Stat(filepath.Join(dataDir, name)); err != nil {
			t.Errorf("stage output %s missing: %v", name, err)
		}
	}
}

func TestRunProducesLoadableTable(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")
	p := New(dataDir, &stubGenerator{}, logging.New("error"))

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	store := contacts.NewStore(filepath.Join(dataDir, WithMessagesFile))
	list, err := store.Load()
	if err != nil {
		t.Fatalf("loading pipeline output: %v", err)
	}
	if len(list) == 0 {
		t.Fatal("pipeline produced no contacts")
	}

	for _, c := range list {
		if c.OutreachMethod != contacts.MethodLinkedIn {
			t.Errorf("%s: outreach method = %q, want linkedin (inference stub)", c.Name, c.OutreachMethod)
		}
		if c.LastOutreachDate != "" || c.NextFollowupDate != "" {
			t.Errorf("%s: lifecycle dates set by the pipeline", c.Name)
		}
		if c.OutreachMessage == "" {
			t.Errorf("%s: no initial message generated", c.Name)
		}
		if c.Event == "" || c.Rationale == "" {
			t.Errorf("%s: event/rationale not joined from the company table", c.Name)
		}
	}
}

func TestRunContinuesPastGenerationFailure(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")
	p := New(dataDir, &stubGenerator{failFor: "Tim Bennett"}, logging.New("error"))

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	store := contacts.NewStore(filepath.Join(dataDir, WithMessagesFile))
	list, err := store.Load()
	if err != nil {
		t.Fatalf("loading pipeline output: %v", err)
	}

	for _, c := range list {
		if c.Name == "Tim Bennett" {
			if c.OutreachMessage != "" {
				t.Errorf("failed contact has message %q, want empty", c.OutreachMessage)
			}
		} else if c.OutreachMessage == "" {
			t.Errorf("%s: missing message after unrelated failure", c.Name)
		}
	}
}

func TestDomainFromURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "https://www.orafol.com", want: "orafol.com"},
		{raw: "https://graphics.averydennison.com/en/home.html", want: "graphics.averydennison.com"},
		{raw: "www.flexcon.com", want: "flexcon.com"},
	}
	for _, tt := range tests {
		if got := domainFromURL(tt.raw); got != tt.want {
			t.Errorf("domainFromURL(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestBuildContactsFollowsEventOrder(t *testing.T) {
	list := buildContacts(EventData())
	if len(list) == 0 {
		t.Fatal("no contacts built")
	}
	for i, c := range list {
		if c.Index != i {
			t.Errorf("contact %q: Index = %d, want %d", c.Name, c.Index, i)
		}
	}
	// "3M" has no seeded contacts ("3M Commercial Graphics" does not
	// match the event table's company name), so the first contacts come
	// from Avery Dennison.
	if list[0].Company != "Avery Dennison" {
		t.Errorf("first company = %q, want Avery Dennison", list[0].Company)
	}
}
