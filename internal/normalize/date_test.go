package normalize

import (
	"strings"
	"testing"
	"time"
)

func TestDateFormatterFormat(t *testing.T) {
	utc := NewDateFormatter(time.UTC)

	tests := []struct {
		input string
		want  string
	}{
		{"2024-03-05T10:00:00Z", "5 de marzo de 2024"},
		{"2024-03-05T10:00:00", "5 de marzo de 2024"},
		{"2023-12-31T23:59:59", "31 de diciembre de 2023"},
		{"2024-01-01T00:00:00+00:00", "1 de enero de 2024"},
		{"2024-09-15T08:00:00Z", "15 de septiembre de 2024"},
		{"", ""},
		{"2024-13-45T99:99:99", ""},
	}

	for _, tt := range tests {
		got := utc.Format(tt.input)
		if got != tt.want {
			t.Errorf("Format(%q) = %q, want %q", tt.input, got, tt.want)
		}
		if strings.Contains(got, "de de") {
			t.Errorf("Format(%q) = %q contains a doubled separator", tt.input, got)
		}
	}
}

func TestDateFormatterLocation(t *testing.T) {
	sanJuan := time.FixedZone("ART", -3*60*60)
	f := NewDateFormatter(sanJuan)

	if got := f.Format("2024-03-05T01:00:00Z"); got != "4 de marzo de 2024" {
		t.Errorf("Expected UTC timestamp shifted to previous day, got %q", got)
	}
	if got := f.Format("2024-03-05T01:00:00"); got != "5 de marzo de 2024" {
		t.Errorf("Expected zoneless timestamp read in local zone, got %q", got)
	}
}

func TestDateFormatterNilLocation(t *testing.T) {
	f := NewDateFormatter(nil)
	if got := f.Format("2024-03-05T10:00:00Z"); got != "5 de marzo de 2024" {
		t.Errorf("Expected UTC default, got %q", got)
	}
}

func TestDateFormatterParse(t *testing.T) {
	f := NewDateFormatter(time.UTC)

	got, ok := f.Parse("2024-03-05T10:00:00")
	if !ok {
		t.Fatalf("Expected timestamp to parse")
	}
	want := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}

	if _, ok := f.Parse("   "); ok {
		t.Errorf("Expected blank timestamp to be rejected")
	}
}
