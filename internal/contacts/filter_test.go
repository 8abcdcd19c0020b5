package contacts

import (
	"reflect"
	"testing"
)

func testTable() []Contact {
	return []Contact{
		{Index: 0, Name: "Tim Bennett", Title: "Managing Director", Company: "Orafol"},
		{Index: 1, Name: "Michelle Gunning", Title: "Vice President", Company: "Arlon Graphics",
			LastOutreachDate: "2024-01-01", NextFollowupDate: "2024-01-20"},
		{Index: 2, Name: "Scott Bell", Title: "BD Manager", Company: "Nekoosa",
			LastOutreachDate: "2023-12-29", NextFollowupDate: "2024-01-05"},
		{Index: 3, Name: "Jeff Goh", Title: "President", Company: "Arlon Graphics",
			LastOutreachDate: "2024-01-02", NextFollowupDate: "not-a-date"},
	}
}

func names(list []Contact) []string {
	var out []string
	for _, c := range list {
		out = append(out, c.Name)
	}
	return out
}

func TestCompanyScope(t *testing.T) {
	got := Apply(testTable(), Filter{Company: "Arlon Graphics"}, date("2024-01-05"))
	want := []string{"Michelle Gunning", "Jeff Goh"}
	if !reflect.DeepEqual(names(got), want) {
		t.Errorf("company scope: got %v, want %v", names(got), want)
	}
}

func TestAllCompaniesBypassesScope(t *testing.T) {
	got := Apply(testTable(), Filter{Company: AllCompanies}, date("2024-01-05"))
	if len(got) != 4 {
		t.Errorf("AllCompanies scope: got %d contacts, want 4", len(got))
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	// Stored value is "Orafol"; the query case must not matter.
	for _, q := range []string{"orafol", "ORAFOL", "oRaFoL"} {
		got := Apply(testTable(), Filter{Search: q}, date("2024-01-05"))
		if len(got) != 1 || got[0].Name != "Tim Bennett" {
			t.Errorf("search %q: got %v, want [Tim Bennett]", q, names(got))
		}
	}
}

func TestSearchMatchesNameTitleOrCompany(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{query: "scott", want: []string{"Scott Bell"}},
		{query: "president", want: []string{"Michelle Gunning", "Jeff Goh"}},
		{query: "nekoosa", want: []string{"Scott Bell"}},
		{query: "zzz", want: nil},
	}
	for _, tt := range tests {
		got := Apply(testTable(), Filter{Search: tt.query}, date("2024-01-05"))
		if !reflect.DeepEqual(names(got), tt.want) {
			t.Errorf("search %q: got %v, want %v", tt.query, names(got), tt.want)
		}
	}
}

func TestOutreachPartition(t *testing.T) {
	today := date("2024-01-05")
	sent := Apply(testTable(), Filter{Outreach: OutreachSent}, today)
	notSent := Apply(testTable(), Filter{Outreach: OutreachNotSent}, today)

	if len(sent) != 3 {
		t.Errorf("sent partition: got %v", names(sent))
	}
	if len(notSent) != 1 || notSent[0].Name != "Tim Bennett" {
		t.Errorf("not-sent partition: got %v", names(notSent))
	}
}

func TestFollowupDuePartition(t *testing.T) {
	// Scheduled for 2024-01-05: included on the day, excluded the day before.
	due := Apply(testTable(), Filter{Followup: FollowupDue}, date("2024-01-05"))
	if !reflect.DeepEqual(names(due), []string{"Scott Bell"}) {
		t.Errorf("due on 2024-01-05: got %v, want [Scott Bell]", names(due))
	}

	due = Apply(testTable(), Filter{Followup: FollowupDue}, date("2024-01-04"))
	if len(due) != 0 {
		t.Errorf("due on 2024-01-04: got %v, want none", names(due))
	}
}

func TestNoFollowupDateInNeitherPartition(t *testing.T) {
	today := date("2024-01-05")
	due := Apply(testTable(), Filter{Followup: FollowupDue}, today)
	notDue := Apply(testTable(), Filter{Followup: FollowupNotDue}, today)

	for _, list := range [][]Contact{due, notDue} {
		for _, c := range list {
			if c.NextFollowupDate == "" {
				t.Errorf("contact %q with no follow-up date in a partition", c.Name)
			}
			if c.Name == "Jeff Goh" {
				t.Errorf("contact with malformed date landed in a partition")
			}
		}
	}
}

func TestFiltersComposeByAND(t *testing.T) {
	f := Filter{
		Company:  "Arlon Graphics",
		Search:   "michelle",
		Outreach: OutreachSent,
		Followup: FollowupNotDue,
	}
	got := Apply(testTable(), f, date("2024-01-05"))
	if !reflect.DeepEqual(names(got), []string{"Michelle Gunning"}) {
		t.Errorf("composed filter: got %v, want [Michelle Gunning]", names(got))
	}
}

func TestCompanies(t *testing.T) {
	got := Companies(testTable())
	want := []string{"Arlon Graphics", "Nekoosa", "Orafol"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Companies = %v, want %v", got, want)
	}
}
