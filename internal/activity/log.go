// Package activity maintains the append-only narrative of lifecycle
// transitions shown in the dashboard's activity feed.
package activity

import (
	"fmt"
	"sort"
	"time"

	"github.com/leadtrack-dev/leadtrack/internal/contacts"
)

// Entry is one log line. Entries are ordered by append time, never
// reordered and never deduplicated; Timestamp is display data.
type Entry struct {
	Timestamp time.Time
	Message   string
}

// Log is the in-memory activity log for one session.
type Log struct {
	entries []Entry
	rebuilt bool
	sink    *Sink
}

// NewLog returns an empty activity log.
func NewLog() *Log {
	return &Log{}
}

// SetSink attaches an optional JSONL sink that receives live appends.
func (l *Log) SetSink(s *Sink) {
	l.sink = s
}

// Rebuild synthesizes one entry per already-contacted contact from the
// persisted table, using last_outreach_date as the timestamp. Entries are
// inserted in chronological order (ties keep table order). Runs at most
// once per session; later calls are no-ops. Contacts whose stored date
// does not parse are skipped and reported as warnings.
func (l *Log) Rebuild(list []contacts.Contact) []error {
	if l.rebuilt {
		return nil
	}
	l.rebuilt = true

	type dated struct {
		at  time.Time
		msg string
	}
	var hist []dated
	var warnings []error
	for i := range list {
		c := &list[i]
		if !c.OutreachSent() {
			continue
		}
		at, err := contacts.ParseDate("last_outreach_date", c.LastOutreachDate)
		if err != nil {
			warnings = append(warnings, fmt.Errorf("skipping activity entry for %s: %w", c.Name, err))
			continue
		}
		hist = append(hist, dated{at: at, msg: contactedMessage(c)})
	}
	sort.SliceStable(hist, func(i, j int) bool { return hist[i].at.Before(hist[j].at) })
	for _, h := range hist {
		l.entries = append(l.entries, Entry{Timestamp: h.at, Message: h.msg})
	}
	return warnings
}

// Append adds a live entry for a transition that just happened. ts is the
// wall-clock time of the action, not the scheduled date. The sink write
// is best-effort; a sink failure never blocks the transition.
func (l *Log) Append(ts time.Time, msg string) {
	l.entries = append(l.entries, Entry{Timestamp: ts, Message: msg})
	if l.sink != nil {
		_ = l.sink.Append(Entry{Timestamp: ts, Message: msg})
	}
}

// Entries returns the log in append order.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// ContactedMessage is the canonical marked-as-contacted line.
func ContactedMessage(c *contacts.Contact) string {
	return contactedMessage(c)
}

func contactedMessage(c *contacts.Contact) string {
	return fmt.Sprintf("Marked %s (%s, %s) as contacted.", c.Name, c.Title, c.Company)
}
