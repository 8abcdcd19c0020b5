// Package contacts defines the contact table, its CSV-backed store and the
// read-only filter layer used to derive dashboard views.
package contacts

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for all persisted dates.
const DateLayout = "2006-01-02"

// Method is the channel used to reach a contact.
type Method string

const (
	MethodEmail    Method = "email"
	MethodLinkedIn Method = "linkedin"
)

// Contact is one outreach target and its lifecycle-tracking fields.
// Provenance fields (name through rationale) are written once by the
// pipeline and never edited here.
type Contact struct {
	// Index is the contact's row position in the store. It is the only
	// stable join key between the table and session state; names are not
	// guaranteed unique.
	Index int

	Name           string
	Title          string
	Company        string
	CompanyWebsite string
	LinkedInURL    string
	Event          string
	Rationale      string

	OutreachMethod  Method
	OutreachMessage string

	// Dates are ISO dates (YYYY-MM-DD) or empty when unset.
	LastOutreachDate string
	NextFollowupDate string

	FollowupStatus  string
	FollowupMessage string
}

// OutreachSent reports whether the contact has been marked sent.
func (c *Contact) OutreachSent() bool {
	return c.LastOutreachDate != ""
}

// FollowupDue reports whether the contact's follow-up date has arrived.
// A contact with no scheduled follow-up is never due. A malformed date
// also yields false, along with a MalformedDateError the caller should
// surface as a warning rather than a failure.
func (c *Contact) FollowupDue(today time.Time) (bool, error) {
	if c.NextFollowupDate == "" {
		return false, nil
	}
	due, err := ParseDate("next_followup_date", c.NextFollowupDate)
	if err != nil {
		return false, err
	}
	// Compare calendar dates: today's clock time and zone must not shift
	// the due boundary.
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return !due.After(day), nil
}

// DaysUntilFollowup returns the whole days between today and the scheduled
// follow-up. Zero or negative means the follow-up is due.
func (c *Contact) DaysUntilFollowup(today time.Time) (int, error) {
	if c.NextFollowupDate == "" {
		return 0, fmt.Errorf("no follow-up scheduled for %s", c.Name)
	}
	due, err := ParseDate("next_followup_date", c.NextFollowupDate)
	if err != nil {
		return 0, err
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(due.Sub(day).Hours() / 24), nil
}

// MalformedDateError reports a stored date that does not parse as
// YYYY-MM-DD. It is a warning condition: due-date computation treats the
// contact as not due instead of failing.
type MalformedDateError struct {
	Field string
	Value string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed %s %q: want YYYY-MM-DD", e.Field, e.Value)
}

// ParseDate parses an ISO date from the named field.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, &MalformedDateError{Field: field, Value: value}
	}
	return t, nil
}

// FormatDate renders t in the persisted date format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
