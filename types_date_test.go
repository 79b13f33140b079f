package stockfolio

import (
	"encoding/json"
	"testing"
	"time"
)

// TestDateTime asserts that Time() is canonical and gives comparable times.
func TestDateTime(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)

	if d1.Time() != d2.Time() {
		// time.Time values are not comparable in general (the timezone is a
		// pointer); this checks the property holds for our canonical form.
		t.Errorf("same day gives two different times")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-07-01", NewDate(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},
		{"2025-7-1", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDateOrdering(t *testing.T) {
	d := NewDate(2025, time.June, 2)
	if !d.Before(d.Add(1)) {
		t.Error("d should be before d+1")
	}
	if !d.After(d.Add(-1)) {
		t.Error("d should be after d-1")
	}
	if d.Add(30) != NewDate(2025, time.July, 2) {
		t.Errorf("Add(30) = %v, want 2025-07-02", d.Add(30))
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected Date
		wantErr  bool
	}{
		{name: "Zero Date from empty string", json: `""`, expected: Date{}},
		{name: "Non-Zero Date", json: `"2024-05-21"`, expected: NewDate(2024, 5, 21)},
		{name: "Invalid Date", json: `"not-a-date"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.json), &d)
			if (err != nil) != tt.wantErr {
				t.Errorf("json.Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && d != tt.expected {
				t.Errorf("json.Unmarshal() got = %v, want %v", d, tt.expected)
			}
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		date     Date
		expected string
	}{
		{name: "Zero Date", date: Date{}, expected: `""`},
		{name: "Non-Zero Date", date: NewDate(2024, 5, 21), expected: `"2024-05-21"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.date)
			if err != nil {
				t.Fatalf("json.Marshal() error = %v", err)
			}
			if string(got) != tt.expected {
				t.Errorf("json.Marshal() = %s, want %s", got, tt.expected)
			}
		})
	}
}
