// Package pipeline produces the initial contact table the dashboard
// tracks: event/company extraction, contact generation, outreach-channel
// inference and initial message generation, each stage persisted as a CSV
// under the data directory.
package pipeline

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/leadtrack-dev/leadtrack/internal/contacts"
	"github.com/leadtrack-dev/leadtrack/internal/message"
)

// Output file names under the data directory.
const (
	EventsFile       = "events_companies.csv"
	ContactsFile     = "contacts.csv"
	WithChannelsFile = "contacts_with_emails.csv"
	WithMessagesFile = "contacts_with_messages.csv"
)

// Pipeline builds the data files end to end.
type Pipeline struct {
	dataDir string
	gen     message.Generator
	logger  *slog.Logger
}

// New returns a Pipeline writing under dataDir and generating initial
// messages through gen.
func New(dataDir string, gen message.Generator, logger *slog.Logger) *Pipeline {
	return &Pipeline{dataDir: dataDir, gen: gen, logger: logger}
}

// Run executes every stage in order. A generation failure for one
// contact leaves that contact's message empty and the run continues; any
// other failure aborts.
func (p *Pipeline) Run(ctx context.Context) error {
	events := EventData()
	p.logger.Info("extracted event data", "companies", len(events))
	if err := p.writeEvents(events); err != nil {
		return err
	}

	list := buildContacts(events)
	p.logger.Info("generated contacts", "contacts", len(list))
	if err := p.writeContacts(ContactsFile, list, false); err != nil {
		return err
	}

	inferChannels(list)
	if err := p.writeContacts(WithChannelsFile, list, true); err != nil {
		return err
	}

	if err := p.generateMessages(ctx, list); err != nil {
		return err
	}

	store := contacts.NewStore(filepath.Join(p.dataDir, WithMessagesFile))
	if err := store.Save(list); err != nil {
		return err
	}
	p.logger.Info("pipeline complete", "path", store.Path(), "contacts", len(list))
	return nil
}

// buildContacts joins the per-company contact seeds onto the event table.
func buildContacts(events []EventCompany) []contacts.Contact {
	var list []contacts.Contact
	for _, ev := range events {
		for _, seed := range companyContacts[ev.Company] {
			list = append(list, contacts.Contact{
				Index:          len(list),
				Name:           seed.Name,
				Title:          seed.Title,
				LinkedInURL:    seed.LinkedInURL,
				Company:        ev.Company,
				CompanyWebsite: ev.Website,
				Event:          ev.Event,
				Rationale:      ev.Rationale,
			})
		}
	}
	return list
}

// Email-format lookup is intentionally disabled; every contact falls back
// to the linkedin channel until a real provider integration exists.
const enableEmailFormatLookup = false

// inferChannels assigns each contact an outreach channel. The lookup hook
// is a no-op, so the channel is always linkedin for now.
func inferChannels(list []contacts.Contact) {
	for i := range list {
		list[i].OutreachMethod = contacts.MethodLinkedIn
		if enableEmailFormatLookup {
			domain := domainFromURL(list[i].CompanyWebsite)
			if format := lookupEmailFormat(list[i].Company, domain); format != "" {
				list[i].OutreachMethod = contacts.MethodEmail
			}
		}
	}
}

// lookupEmailFormat would query a provider (hunter.io, leadiq, ...) for
// the company's address format. Returns empty until wired up.
func lookupEmailFormat(company, domain string) string {
	return ""
}

// domainFromURL strips the scheme, path and www prefix from a website URL.
func domainFromURL(raw string) string {
	parts := strings.Split(raw, "//")
	domain := strings.Split(parts[len(parts)-1], "/")[0]
	return strings.TrimPrefix(domain, "www.")
}

// generateMessages fills in each contact's initial outreach draft.
func (p *Pipeline) generateMessages(ctx context.Context, list []contacts.Contact) error {
	for i := range list {
		c := &list[i]
		p.logger.Info("generating message", "name", c.Name, "company", c.Company, "method", string(c.OutreachMethod))
		text, err := p.gen.GenerateMessage(ctx, message.Request{
			Kind:      message.KindInitial,
			Name:      c.Name,
			Title:     c.Title,
			Company:   c.Company,
			Method:    c.OutreachMethod,
			Event:     c.Event,
			Rationale: c.Rationale,
		})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.logger.Warn("message generation failed", "name", c.Name, "error", err)
			continue
		}
		c.OutreachMessage = text
	}
	return nil
}

func (p *Pipeline) writeEvents(events []EventCompany) error {
	records := [][]string{{"event", "company", "industry", "website", "rationale"}}
	for _, ev := range events {
		records = append(records, []string{ev.Event, ev.Company, ev.Industry, ev.Website, ev.Rationale})
	}
	return p.writeCSV(EventsFile, records)
}

func (p *Pipeline) writeContacts(name string, list []contacts.Contact, withChannel bool) error {
	header := []string{"name", "title", "linkedin_url", "company", "company_website", "event", "rationale"}
	if withChannel {
		header = append(header, "email", "email_format", "outreach_method")
	}
	records := [][]string{header}
	for i := range list {
		c := &list[i]
		row := []string{c.Name, c.Title, c.LinkedInURL, c.Company, c.CompanyWebsite, c.Event, c.Rationale}
		if withChannel {
			// Email columns stay empty until the format lookup exists.
			row = append(row, "", "", string(c.OutreachMethod))
		}
		records = append(records, row)
	}
	return p.writeCSV(name, records)
}

func (p *Pipeline) writeCSV(name string, records [][]string) error {
	if err := os.MkdirAll(p.dataDir, 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	path := filepath.Join(p.dataDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
