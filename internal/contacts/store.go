// store.go persists the contact table as a single CSV file, loaded and
// rewritten wholesale.
package contacts

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrStoreNotFound indicates the backing CSV file does not exist yet.
// Callers should surface "no data, run the pipeline first" and stop.
var ErrStoreNotFound = errors.New("contact store not found")

// Columns is the persisted column order. Saves always write every column;
// absent dates serialize as the empty string.
var Columns = []string{
	"name",
	"title",
	"company",
	"company_website",
	"linkedin_url",
	"event",
	"rationale",
	"outreach_method",
	"outreach_message",
	"last_outreach_date",
	"next_followup_date",
	"followup_status",
	"followup_message",
}

// Store reads and writes the contact table at a fixed path.
type Store struct {
	path string
}

// NewStore returns a Store backed by the CSV file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the full table. Row order in the file defines each contact's
// Index for the lifetime of the session.
func (s *Store) Load() ([]Contact, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, s.path)
		}
		return nil, fmt.Errorf("open contact store: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // header decides; tolerate ragged rows

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read contact store header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range Columns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("contact store missing column %q", name)
		}
	}

	field := func(record []string, name string) string {
		i := col[name]
		if i >= len(record) {
			return ""
		}
		return record[i]
	}

	var list []Contact
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read contact row %d: %w", len(list)+2, err)
		}
		list = append(list, Contact{
			Index:            len(list),
			Name:             field(record, "name"),
			Title:            field(record, "title"),
			Company:          field(record, "company"),
			CompanyWebsite:   field(record, "company_website"),
			LinkedInURL:      field(record, "linkedin_url"),
			Event:            field(record, "event"),
			Rationale:        field(record, "rationale"),
			OutreachMethod:   Method(field(record, "outreach_method")),
			OutreachMessage:  field(record, "outreach_message"),
			LastOutreachDate: field(record, "last_outreach_date"),
			NextFollowupDate: field(record, "next_followup_date"),
			FollowupStatus:   field(record, "followup_status"),
			FollowupMessage:  field(record, "followup_message"),
		})
	}

	return list, nil
}

// Save serializes the full table, overwriting the backing file. Partial
// updates are not supported; every save is a full rewrite.
func (s *Store) Save(list []Contact) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create contact store: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		return fmt.Errorf("write contact store header: %w", err)
	}
	for i := range list {
		c := &list[i]
		record := []string{
			c.Name,
			c.Title,
			c.Company,
			c.CompanyWebsite,
			c.LinkedInURL,
			c.Event,
			c.Rationale,
			string(c.OutreachMethod),
			c.OutreachMessage,
			c.LastOutreachDate,
			c.NextFollowupDate,
			c.FollowupStatus,
			c.FollowupMessage,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write contact row %d: %w", i+2, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush contact store: %w", err)
	}

	return nil
}
