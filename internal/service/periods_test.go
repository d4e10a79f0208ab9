package service

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestPeriodForDate(t *testing.T) {
	tests := []struct {
		name      string
		ref       time.Time
		wantStart time.Time
		wantEnd   time.Time
		wantLabel string
	}{
		{
			name:      "mid H1",
			ref:       date(2026, time.March, 15),
			wantStart: date(2026, time.January, 1),
			wantEnd:   date(2026, time.June, 30),
			wantLabel: "H1 2026",
		},
		{
			name:      "mid H2",
			ref:       date(2026, time.September, 20),
			wantStart: date(2026, time.July, 1),
			wantEnd:   date(2026, time.December, 31),
			wantLabel: "H2 2026",
		},
		{
			name:      "june boundary stays H1",
			ref:       date(2026, time.June, 30),
			wantStart: date(2026, time.January, 1),
			wantEnd:   date(2026, time.June, 30),
			wantLabel: "H1 2026",
		},
		{
			name:      "july boundary starts H2",
			ref:       date(2026, time.July, 1),
			wantStart: date(2026, time.July, 1),
			wantEnd:   date(2026, time.December, 31),
			wantLabel: "H2 2026",
		},
		{
			name:      "january 1",
			ref:       date(2027, time.January, 1),
			wantStart: date(2027, time.January, 1),
			wantEnd:   date(2027, time.June, 30),
			wantLabel: "H1 2027",
		},
		{
			name:      "december 31",
			ref:       date(2025, time.December, 31),
			wantStart: date(2025, time.July, 1),
			wantEnd:   date(2025, time.December, 31),
			wantLabel: "H2 2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PeriodForDate(tt.ref)
			if !got.Start.Equal(tt.wantStart) {
				t.Errorf("Start = %v, want %v", got.Start, tt.wantStart)
			}
			if !got.End.Equal(tt.wantEnd) {
				t.Errorf("End = %v, want %v", got.End, tt.wantEnd)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", got.Label, tt.wantLabel)
			}
		})
	}
}

func TestPeriodForDateEveryMonth(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		got := PeriodForDate(date(2026, month, 10))
		wantH1 := month <= time.June
		gotH1 := got.Start.Month() == time.January
		if gotH1 != wantH1 {
			t.Errorf("month %v: got period starting %v", month, got.Start)
		}
	}
}

func TestPeriodBounds(t *testing.T) {
	h1, err := PeriodBounds(2026, 1, time.UTC)
	if err != nil {
		t.Fatalf("PeriodBounds(2026, 1) error: %v", err)
	}
	if !h1.Start.Equal(date(2026, time.January, 1)) || !h1.End.Equal(date(2026, time.June, 30)) {
		t.Errorf("H1 bounds = %v..%v", h1.Start, h1.End)
	}

	h2, err := PeriodBounds(2026, 2, time.UTC)
	if err != nil {
		t.Fatalf("PeriodBounds(2026, 2) error: %v", err)
	}
	if !h2.Start.Equal(date(2026, time.July, 1)) || !h2.End.Equal(date(2026, time.December, 31)) {
		t.Errorf("H2 bounds = %v..%v", h2.Start, h2.End)
	}

	if _, err := PeriodBounds(2026, 3, time.UTC); err == nil {
		t.Error("PeriodBounds(2026, 3) should fail")
	}
	if _, err := PeriodBounds(2026, 0, time.UTC); err == nil {
		t.Error("PeriodBounds(2026, 0) should fail")
	}
}

func TestPeriodLabel(t *testing.T) {
	if got := PeriodLabel(date(2026, time.January, 1)); got != "H1 2026" {
		t.Errorf("PeriodLabel(Jan 1) = %q", got)
	}
	if got := PeriodLabel(date(2026, time.July, 1)); got != "H2 2026" {
		t.Errorf("PeriodLabel(Jul 1) = %q", got)
	}
}

func TestMonthKey(t *testing.T) {
	if got := MonthKey(date(2026, time.August, 31)); got != "2026-08" {
		t.Errorf("MonthKey = %q, want 2026-08", got)
	}
	if got := MonthKey(date(2026, time.January, 1)); got != "2026-01" {
		t.Errorf("MonthKey = %q, want 2026-01", got)
	}
}
