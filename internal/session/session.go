// Package session holds the transient overlay of edits made during one
// interactive session: pending marked-sent events, snoozes and edited
// follow-up drafts. The overlay is private to the session and is lost
// unless flushed to the store by an explicit save.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/leadtrack-dev/leadtrack/internal/contacts"
)

// SentEvent is a not-yet-persisted "marked sent" action for one contact.
type SentEvent struct {
	LastOutreachDate string
	NextFollowupDate string
}

// Session is the per-session overlay, keyed by contact index. Index is
// the only key in use: names are display fields and not unique.
type Session struct {
	// ID tags activity-sink events so one audit file can span sessions.
	ID string

	followupDays int
	snoozeDays   int

	sent    map[int]SentEvent
	snoozed map[int]string
	drafts  map[int]string
}

// New creates an empty overlay. followupDays schedules the first
// follow-up after marking sent; snoozeDays is the deferral interval.
func New(followupDays, snoozeDays int) *Session {
	return &Session{
		ID:           uuid.NewString(),
		followupDays: followupDays,
		snoozeDays:   snoozeDays,
		sent:         make(map[int]SentEvent),
		snoozed:      make(map[int]string),
		drafts:       make(map[int]string),
	}
}

// RecordSent records a marked-sent action for the contact at index.
// Idempotent: if an event already exists it is returned unchanged and
// created is false, guarding against duplicate triggers in one session.
func (s *Session) RecordSent(index int, now time.Time) (ev SentEvent, created bool) {
	if ev, ok := s.sent[index]; ok {
		return ev, false
	}
	ev = SentEvent{
		LastOutreachDate: contacts.FormatDate(now),
		NextFollowupDate: contacts.FormatDate(now.AddDate(0, 0, s.followupDays)),
	}
	s.sent[index] = ev
	return ev, true
}

// Sent returns the pending sent event for index, if any.
func (s *Session) Sent(index int) (SentEvent, bool) {
	ev, ok := s.sent[index]
	return ev, ok
}

// Snooze defers the contact's follow-up to now plus the snooze interval
// and returns the new date. Snoozes live in the overlay like sent events,
// so an unsaved snooze survives re-renders and is flushed by the same
// save path.
func (s *Session) Snooze(index int, now time.Time) string {
	date := contacts.FormatDate(now.AddDate(0, 0, s.snoozeDays))
	s.snoozed[index] = date
	return date
}

// SetDraft stores an edited or generated follow-up draft for index.
func (s *Session) SetDraft(index int, text string) {
	s.drafts[index] = text
}

// Draft returns the pending follow-up draft for index, if any.
func (s *Session) Draft(index int) (string, bool) {
	text, ok := s.drafts[index]
	return text, ok
}

// Reconcile merges the overlay over the loaded table in place. Must run
// before any status derivation or filtering so in-session actions are
// visible without a save. Sent events apply first; a snooze recorded
// after marking sent wins the follow-up date.
func (s *Session) Reconcile(list []contacts.Contact) {
	for i := range list {
		idx := list[i].Index
		if ev, ok := s.sent[idx]; ok {
			list[i].LastOutreachDate = ev.LastOutreachDate
			list[i].NextFollowupDate = ev.NextFollowupDate
		}
		if date, ok := s.snoozed[idx]; ok {
			list[i].NextFollowupDate = date
		}
		if text, ok := s.drafts[idx]; ok {
			list[i].FollowupMessage = text
		}
	}
}

// Pending reports whether the overlay holds any unsaved state.
func (s *Session) Pending() bool {
	return len(s.sent) > 0 || len(s.snoozed) > 0 || len(s.drafts) > 0
}

// Clear drops all pending state. Called after a successful save.
func (s *Session) Clear() {
	s.sent = make(map[int]SentEvent)
	s.snoozed = make(map[int]string)
	s.drafts = make(map[int]string)
}
