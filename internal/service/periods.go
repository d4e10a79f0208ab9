package service

import (
	"fmt"
	"time"
)

// WantsPeriod is a semi-annual window a wants budget covers: Jan 1–Jun
// 30 (H1) or Jul 1–Dec 31 (H2) of a year.
type WantsPeriod struct {
	Start time.Time
	End   time.Time
	Label string
}

// PeriodForDate computes the wants period containing ref, using ref's
// location. The half is decided purely by calendar month: Jan–Jun is
// H1, Jul–Dec is H2.
func PeriodForDate(ref time.Time) WantsPeriod {
	year := ref.Year()
	if ref.Month() <= time.June {
		return periodBounds(year, 1, ref.Location())
	}
	return periodBounds(year, 2, ref.Location())
}

// PeriodBounds returns the period for an explicit year and half (1 or
// 2). Used when creating wants budgets for a chosen period.
func PeriodBounds(year, half int, loc *time.Location) (WantsPeriod, error) {
	if half != 1 && half != 2 {
		return WantsPeriod{}, fmt.Errorf("half must be 1 or 2, got %d", half)
	}
	return periodBounds(year, half, loc), nil
}

func periodBounds(year, half int, loc *time.Location) WantsPeriod {
	if half == 1 {
		return WantsPeriod{
			Start: time.Date(year, time.January, 1, 0, 0, 0, 0, loc),
			End:   time.Date(year, time.June, 30, 0, 0, 0, 0, loc),
			Label: fmt.Sprintf("H1 %d", year),
		}
	}
	return WantsPeriod{
		Start: time.Date(year, time.July, 1, 0, 0, 0, 0, loc),
		End:   time.Date(year, time.December, 31, 0, 0, 0, 0, loc),
		Label: fmt.Sprintf("H2 %d", year),
	}
}

// PeriodLabel formats a period start date as "H1 2026" / "H2 2026".
func PeriodLabel(periodStart time.Time) string {
	if periodStart.Month() == time.January {
		return fmt.Sprintf("H1 %d", periodStart.Year())
	}
	return fmt.Sprintf("H2 %d", periodStart.Year())
}

// MonthKey formats a date as the "YYYY-MM" key monthly budgets are
// stored under.
func MonthKey(ref time.Time) string {
	return ref.Format("2006-01")
}
