package activity

import (
	"strings"
	"testing"
	"time"

	"github.com/leadtrack-dev/leadtrack/internal/contacts"
)

func at(s string) time.Time {
	t, err := time.Parse(contacts.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func rebuildTable() []contacts.Contact {
	// Table order deliberately disagrees with outreach order.
	return []contacts.Contact{
		{Index: 0, Name: "Michelle Gunning", Title: "VP", Company: "Arlon Graphics", LastOutreachDate: "2024-01-03"},
		{Index: 1, Name: "Tim Bennett", Title: "MD", Company: "Orafol"},
		{Index: 2, Name: "Scott Bell", Title: "BD Manager", Company: "Nekoosa", LastOutreachDate: "2023-12-29"},
	}
}

func TestRebuildIsChronological(t *testing.T) {
	log := NewLog()
	if warns := log.Rebuild(rebuildTable()); len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}

	entries := log.Entries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2 (only contacted rows)", len(entries))
	}
	if !strings.Contains(entries[0].Message, "Scott Bell") {
		t.Errorf("first entry %q, want the earliest outreach (Scott Bell)", entries[0].Message)
	}
	if !strings.Contains(entries[1].Message, "Michelle Gunning") {
		t.Errorf("second entry %q, want Michelle Gunning", entries[1].Message)
	}
	if !entries[0].Timestamp.Equal(at("2023-12-29")) {
		t.Errorf("first timestamp = %v, want 2023-12-29", entries[0].Timestamp)
	}
}

func TestRebuildRunsOnce(t *testing.T) {
	log := NewLog()
	log.Rebuild(rebuildTable())
	log.Rebuild(rebuildTable())

	if got := len(log.Entries()); got != 2 {
		t.Errorf("got %d entries after double rebuild, want 2", got)
	}
}

func TestRebuildSkipsMalformedDatesWithWarning(t *testing.T) {
	log := NewLog()
	table := []contacts.Contact{
		{Index: 0, Name: "Tim Bennett", Title: "MD", Company: "Orafol", LastOutreachDate: "recently"},
		{Index: 1, Name: "Scott Bell", Title: "BD", Company: "Nekoosa", LastOutreachDate: "2024-01-01"},
	}

	warns := log.Rebuild(table)
	if len(warns) != 1 || !strings.Contains(warns[0].Error(), "Tim Bennett") {
		t.Errorf("warnings = %v, want one naming Tim Bennett", warns)
	}
	if got := len(log.Entries()); got != 1 {
		t.Errorf("got %d entries, want 1", got)
	}
}

func TestAppendPreservesAppendOrder(t *testing.T) {
	log := NewLog()
	log.Rebuild(rebuildTable())

	// Live entries keep append order even when their timestamps predate
	// rebuilt history. Never reordered, never deduplicated.
	log.Append(at("2020-06-01"), "Marked A as contacted.")
	log.Append(at("2020-06-01"), "Marked A as contacted.")

	entries := log.Entries()
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4", len(entries))
	}
	if entries[2].Message != "Marked A as contacted." || entries[3].Message != "Marked A as contacted." {
		t.Errorf("live entries out of order: %+v", entries[2:])
	}
}

func TestContactedMessageFormat(t *testing.T) {
	c := contacts.Contact{Name: "Tim Bennett", Title: "Managing Director", Company: "Orafol"}
	want := "Marked Tim Bennett (Managing Director, Orafol) as contacted."
	if got := ContactedMessage(&c); got != want {
		t.Errorf("ContactedMessage = %q, want %q", got, want)
	}
}

func TestSinkAppendAndReadAll(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewSink(dir, "session-1")
	if err != nil {
		t.Fatalf("NewSink failed: %v", err)
	}

	log := NewLog()
	log.SetSink(sink)
	log.Append(at("2024-01-01"), "Marked Tim Bennett (MD, Orafol) as contacted.")

	events, err := sink.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d sink events, want 1", len(events))
	}
	if events[0].Session != "session-1" {
		t.Errorf("session tag = %q, want session-1", events[0].Session)
	}
	if !strings.Contains(events[0].Message, "Tim Bennett") {
		t.Errorf("sink message = %q", events[0].Message)
	}
}

func TestSinkReadAllMissingFile(t *testing.T) {
	sink, err := NewSink(t.TempDir(), "session-1")
	if err != nil {
		t.Fatalf("NewSink failed: %v", err)
	}
	events, err := sink.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll on missing file: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}
