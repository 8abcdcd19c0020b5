// Package testutil provides test helper utilities for leadtrack tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TempData creates a temporary directory with the given files and returns
// its path. Files is a map of relative path -> content. Directories are
// created as needed. The directory is cleaned up when the test finishes.
func TempData(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	for relPath, content := range files {
		absPath := filepath.Join(dir, relPath)
		if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
			t.Fatalf("creating directory for %s: %v", relPath, err)
		}
		if err := os.WriteFile(absPath, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", relPath, err)
		}
	}

	return dir
}

// ContactsHeader is the CSV header of the tracked contact table.
const ContactsHeader = "name,title,company,company_website,linkedin_url,event,rationale,outreach_method,outreach_message,last_outreach_date,next_followup_date,followup_status,followup_message"

// ContactsCSV builds a contact table from raw CSV rows, prepending the
// standard header.
func ContactsCSV(rows ...string) string {
	return ContactsHeader + "\n" + strings.Join(rows, "\n") + "\n"
}

// SampleContactsCSV returns a small table with mixed lifecycle states:
// row 0 not contacted, row 1 contacted and waiting, row 2 contacted with
// a follow-up due on 2024-01-05.
func SampleContactsCSV() string {
	return ContactsCSV(
		"Tim Bennett,Managing Director,Orafol,https://www.orafol.com,https://linkedin.com/in/tim,ISASign Expo,Weather-resistant graphics,linkedin,Hi Tim,,,,",
		"Michelle Gunning,Vice President,Arlon Graphics,https://www.arlon.com,https://linkedin.com/in/michelle,FESPA,Performance wraps,linkedin,Hi Michelle,2024-01-01,2024-01-20,,",
		"Scott Bell,BD Manager,Nekoosa,https://www.nekoosa.com,https://linkedin.com/in/scott,Printing United,Specialty substrates,linkedin,Hi Scott,2023-12-29,2024-01-05,,Just checking in.",
	)
}
