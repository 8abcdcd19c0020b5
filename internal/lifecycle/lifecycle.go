// Package lifecycle implements the outreach state machine: when a contact
// counts as contacted, when a follow-up becomes due, how snoozing defers
// it, and when follow-up generation is offered.
package lifecycle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/leadtrack-dev/leadtrack/internal/activity"
	"github.com/leadtrack-dev/leadtrack/internal/contacts"
	"github.com/leadtrack-dev/leadtrack/internal/message"
	"github.com/leadtrack-dev/leadtrack/internal/session"
)

// State is a contact's derived lifecycle position. There is no terminal
// state: a contact can be snoozed and become due again indefinitely.
type State int

const (
	StateNotContacted State = iota
	StateContactedWaiting
	StateFollowupDue
)

func (s State) String() string {
	switch s {
	case StateNotContacted:
		return "not contacted"
	case StateContactedWaiting:
		return "waiting"
	case StateFollowupDue:
		return "follow-up due"
	default:
		return "unknown"
	}
}

// Derive computes the state of a reconciled contact at today. It is a
// pure function invoked on demand, never cached. A malformed
// next_followup_date yields StateContactedWaiting plus the parse error as
// a warning; the contact is never silently treated as due.
func Derive(c *contacts.Contact, today time.Time) (State, error) {
	if !c.OutreachSent() {
		return StateNotContacted, nil
	}
	due, err := c.FollowupDue(today)
	if err != nil {
		return StateContactedWaiting, err
	}
	if due {
		return StateFollowupDue, nil
	}
	return StateContactedWaiting, nil
}

// Engine applies transitions to the working table, the session overlay
// and the activity log. One Engine serves one session.
type Engine struct {
	session *session.Session
	log     *activity.Log
	gen     message.Generator
}

// NewEngine wires the engine to its session overlay, activity log and
// message-generation collaborator.
func NewEngine(sess *session.Session, log *activity.Log, gen message.Generator) *Engine {
	return &Engine{session: sess, log: log, gen: gen}
}

// MarkSent transitions a contact to contacted: records the overlay event,
// applies it to the working-table row and appends an activity entry at
// the wall-clock time of the action. Idempotent within a session; repeat
// calls return the original event without a second log append.
func (e *Engine) MarkSent(c *contacts.Contact, now time.Time) (session.SentEvent, bool) {
	ev, created := e.session.RecordSent(c.Index, now)
	c.LastOutreachDate = ev.LastOutreachDate
	c.NextFollowupDate = ev.NextFollowupDate
	if created {
		e.log.Append(now, activity.ContactedMessage(c))
	}
	return ev, created
}

// CanGenerateFollowup gates the generate trigger. Generation is offered
// right after marking sent, when a follow-up is due, or while no
// follow-up draft exists yet; otherwise the trigger stays hidden to avoid
// redundant collaborator calls.
func (e *Engine) CanGenerateFollowup(c *contacts.Contact, justSent bool, today time.Time) bool {
	if !c.OutreachSent() {
		return false
	}
	if justSent {
		return true
	}
	if due, err := c.FollowupDue(today); err == nil && due {
		return true
	}
	return strings.TrimSpace(c.FollowupMessage) == ""
}

// GenerateFollowup asks the collaborator for a follow-up draft and
// returns it. The contact and the overlay are not touched here: callers
// apply the result through EditFollowup, so generation can run off the
// update loop without racing overlay reads. A failed call returns the
// error alone and leaves every field for the contact unchanged.
func (e *Engine) GenerateFollowup(ctx context.Context, c *contacts.Contact) (string, error) {
	text, err := e.gen.GenerateMessage(ctx, message.Request{
		Kind:    message.KindFollowup,
		Name:    c.Name,
		Title:   c.Title,
		Company: c.Company,
	})
	if err != nil {
		return "", err
	}
	return text, nil
}

// EditFollowup records a hand-edited follow-up draft.
func (e *Engine) EditFollowup(c *contacts.Contact, text string) {
	c.FollowupMessage = text
	e.session.SetDraft(c.Index, text)
}

// Snooze defers the contact's follow-up by the configured interval,
// independent of whether a follow-up draft was ever generated. Returns
// the new date. A contact that was never marked sent cannot be snoozed:
// a follow-up date with no outreach date is an invalid row.
func (e *Engine) Snooze(c *contacts.Contact, now time.Time) (string, error) {
	if !c.OutreachSent() {
		return "", fmt.Errorf("cannot snooze %s: outreach not sent", c.Name)
	}
	date := e.session.Snooze(c.Index, now)
	c.NextFollowupDate = date
	return date, nil
}
