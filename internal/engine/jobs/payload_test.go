package jobs

import (
	"testing"

	"github.com/tidwall/gjson"
)

func TestStrAt(t *testing.T) {
	doc := gjson.Parse(`{
		"title": "  Driver  ",
		"blank": "   ",
		"count": 42,
		"company": {"display_name": "Acme"},
		"locations": [{"name": "Agra"}]
	}`)

	tests := []struct {
		name string
		path string
		def  string
		want string
	}{
		{"plain string trimmed", "title", "N/A", "Driver"},
		{"nested path", "company.display_name", "N/A", "Acme"},
		{"array index path", "locations.0.name", "N/A", "Agra"},
		{"absent key", "salary", "N/A", "N/A"},
		{"absent nested", "company.website", "#", "#"},
		{"out of range index", "locations.5.name", "N/A", "N/A"},
		{"blank value", "blank", "N/A", "N/A"},
		{"number renders as string", "count", "0", "42"},
		{"object is not a scalar", "company", "N/A", "N/A"},
		{"array is not a scalar", "locations", "N/A", "N/A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strAt(doc, tt.path, tt.def); got != tt.want {
				t.Errorf("strAt(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestArrayAt(t *testing.T) {
	if got := arrayAt([]byte(`{"jobs": [1, 2, 3]}`), "jobs"); len(got) != 3 {
		t.Errorf("array length = %d, want 3", len(got))
	}
	if got := arrayAt([]byte(`{"jobs": "oops"}`), "jobs"); got != nil {
		t.Errorf("scalar value must not become an array, got %v", got)
	}
	if got := arrayAt([]byte(`{"jobs": null}`), "jobs"); got != nil {
		t.Errorf("null must not become an array, got %v", got)
	}
	if got := arrayAt([]byte(`garbage`), "jobs"); got != nil {
		t.Errorf("malformed body must yield nil, got %v", got)
	}
}

func TestFirstOr(t *testing.T) {
	tests := []struct {
		name string
		vals []string
		def  string
		want string
	}{
		{"first wins", []string{"data entry", "ms office"}, "jobs", "data entry"},
		{"skips blanks", []string{"  ", "driver"}, "jobs", "driver"},
		{"empty slice", nil, "India", "India"},
		{"all blank", []string{"", " "}, "developer", "developer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstOr(tt.vals, tt.def); got != tt.want {
				t.Errorf("firstOr(%v) = %q, want %q", tt.vals, got, tt.want)
			}
		})
	}
}

func TestJoinedOr(t *testing.T) {
	if got := joinedOr([]string{"data entry", "typing"}, "jobs"); got != "data entry typing" {
		t.Errorf("joinedOr = %q", got)
	}
	if got := joinedOr(nil, "jobs"); got != "jobs" {
		t.Errorf("joinedOr on empty = %q, want default", got)
	}
}
