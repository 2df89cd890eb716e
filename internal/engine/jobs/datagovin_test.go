package jobs

import (
	"strings"
	"testing"
)

const sampleMGNREGAJSON = `{
	"records": [
		{
			"state_name": "UTTAR PRADESH",
			"district_name": "Agra",
			"total_no_of_workers": 152340,
			"total_no_of_jobcards_issued": 98760
		},
		{
			"district_name": "Mathura"
		}
	]
}`

func TestParseMGNREGA(t *testing.T) {
	jobs := parseMGNREGA([]byte(sampleMGNREGAJSON))
	if len(jobs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(jobs))
	}

	j := jobs[0]
	if j.Title != "MGNREGA Rural Work (Agra)" {
		t.Errorf("title = %q", j.Title)
	}
	if j.Company != "Govt. of India (MGNREGA)" {
		t.Errorf("company = %q", j.Company)
	}
	if j.Location != "Agra, UTTAR PRADESH" {
		t.Errorf("location = %q", j.Location)
	}
	if j.Source != "data.gov.in" {
		t.Errorf("source = %q, want data.gov.in", j.Source)
	}
	if !strings.Contains(j.DescriptionSnippet, "Registered Workers: 152340.") ||
		!strings.Contains(j.DescriptionSnippet, "Job Cards Issued: 98760.") {
		t.Errorf("snippet = %q", j.DescriptionSnippet)
	}
	if !strings.Contains(j.DescriptionSnippet, "statistical data") {
		t.Errorf("statistics records must say they are not postings: %q", j.DescriptionSnippet)
	}

	// Second record: missing statistics default to N/A.
	j2 := jobs[1]
	if j2.Location != "Mathura, N/A" {
		t.Errorf("location = %q", j2.Location)
	}
	if !strings.Contains(j2.DescriptionSnippet, "Registered Workers: N/A.") {
		t.Errorf("snippet = %q", j2.DescriptionSnippet)
	}
}

func TestCapitalizeFirst(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"agra", "Agra"},
		{"NEW DELHI", "New delhi"},
		{"Mathura", "Mathura"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := capitalizeFirst(tt.input); got != tt.want {
			t.Errorf("capitalizeFirst(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
