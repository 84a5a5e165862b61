package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		wantDay string
		wantErr bool
	}{
		{"2025-06-15T10:30:00Z", "2025-06-15", false},
		{"2025-06-15T10:30:00.123456789Z", "2025-06-15", false},
		{"2025-06-15T10:30:00.123456", "2025-06-15", false},
		{"2025-06-15T10:30:00", "2025-06-15", false},
		{"2025-06-15", "2025-06-15", false},
		{"15/06/2025", "", true},
		{"not a date", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got.Format("2006-01-02") != tt.wantDay {
			t.Errorf("ParseDate(%q) = %v, want day %s", tt.in, got, tt.wantDay)
		}
	}
}

func TestJSONTimeRoundTrip(t *testing.T) {
	in := `"2025-06-15T10:30:00Z"`
	var jt JSONTime
	if err := json.Unmarshal([]byte(in), &jt); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	if !jt.Time().Equal(want) {
		t.Fatalf("got %v, want %v", jt.Time(), want)
	}

	out, err := json.Marshal(jt)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != in {
		t.Fatalf("round trip = %s, want %s", out, in)
	}
}

func TestJSONTimeUnmarshalBareDate(t *testing.T) {
	var jt JSONTime
	if err := json.Unmarshal([]byte(`"2025-01-31"`), &jt); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := jt.Time().Format("2006-01-02"); got != "2025-01-31" {
		t.Fatalf("got %s, want 2025-01-31", got)
	}
}
