// filter.go derives read-only views over the reconciled table. Filters
// compose by AND and have no side effects.
package contacts

import (
	"sort"
	"strings"
	"time"
)

// AllCompanies is the company-scope sentinel that bypasses company
// filtering entirely.
const AllCompanies = "All Companies"

// OutreachFilter partitions contacts on whether outreach was sent.
type OutreachFilter int

const (
	OutreachAny OutreachFilter = iota
	OutreachSent
	OutreachNotSent
)

// FollowupFilter partitions contacts on whether a follow-up is due.
// Contacts with no scheduled follow-up fall in neither partition.
type FollowupFilter int

const (
	FollowupAny FollowupFilter = iota
	FollowupDue
	FollowupNotDue
)

// Filter describes one view over the contact table. Zero value matches
// everything.
type Filter struct {
	// Company scopes to an exact company name. Empty or AllCompanies
	// disables the scope.
	Company string
	// Search is a case-insensitive substring matched against name, title
	// or company.
	Search string

	Outreach OutreachFilter
	Followup FollowupFilter
}

// Apply returns the contacts matching every set criterion, evaluated at
// today. Evaluation order of the criteria does not affect the result.
func Apply(list []Contact, f Filter, today time.Time) []Contact {
	var out []Contact
	for i := range list {
		if f.matches(&list[i], today) {
			out = append(out, list[i])
		}
	}
	return out
}

func (f Filter) matches(c *Contact, today time.Time) bool {
	if f.Company != "" && f.Company != AllCompanies && c.Company != f.Company {
		return false
	}

	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.Title), q) &&
			!strings.Contains(strings.ToLower(c.Company), q) {
			return false
		}
	}

	switch f.Outreach {
	case OutreachSent:
		if !c.OutreachSent() {
			return false
		}
	case OutreachNotSent:
		if c.OutreachSent() {
			return false
		}
	}

	switch f.Followup {
	case FollowupDue:
		due, err := c.FollowupDue(today)
		if err != nil || !due {
			return false
		}
	case FollowupNotDue:
		if c.NextFollowupDate == "" {
			return false
		}
		due, err := c.FollowupDue(today)
		if err != nil || due {
			return false
		}
	}

	return true
}

// Companies returns the sorted set of company names in the table.
func Companies(list []Contact) []string {
	seen := make(map[string]bool)
	var out []string
	for i := range list {
		if name := list[i].Company; name != "" && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
