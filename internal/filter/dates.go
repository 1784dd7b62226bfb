package filter

import "time"

// Date range tokens. The named month and quarter tokens are anchored to the
// demo year, not to the current calendar year.
const (
	DateRangeAll       = "all"
	DateRangeToday     = "today"
	DateRangeThisWeek  = "thisweek"
	DateRangeOctober   = "october"
	DateRangeSeptember = "september"
	DateRangeAugust    = "august"
	DateRangeQ2        = "q2"
	DateRangeQ3        = "q3"
	DateRangeYTD       = "ytd"
	DateRangeCustom    = "custom"
)

func (g Global) demoYear() int {
	if g.DemoYear != 0 {
		return g.DemoYear
	}
	return 2025
}

// matchesDateRange tests a record date against the configured token. An
// unrecognized token, or a custom range missing either bound, filters
// nothing.
func (g Global) matchesDateRange(d time.Time, now time.Time) bool {
	switch g.DateRange {
	case "", DateRangeAll:
		return true
	case DateRangeCustom:
		if g.CustomDateRange == nil {
			return true
		}
		return !d.Before(g.CustomDateRange.From) && !d.After(g.CustomDateRange.To)
	case DateRangeToday:
		return sameDay(d, now)
	case DateRangeThisWeek:
		// Rolling window: anything in the last 7 days.
		return !d.Before(now.AddDate(0, 0, -7))
	case DateRangeOctober:
		return d.Month() == time.October && d.Year() == g.demoYear()
	case DateRangeSeptember:
		return d.Month() == time.September && d.Year() == g.demoYear()
	case DateRangeAugust:
		return d.Month() == time.August && d.Year() == g.demoYear()
	case DateRangeQ3:
		return d.Month() >= time.July && d.Month() <= time.September && d.Year() == g.demoYear()
	case DateRangeQ2:
		return d.Month() >= time.April && d.Month() <= time.June && d.Year() == g.demoYear()
	case DateRangeYTD:
		return d.Year() == g.demoYear()
	default:
		return true
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
