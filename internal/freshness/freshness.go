// Package freshness classifies beans by their best-by and roast dates.
//
// Everything here is a pure function of its inputs; callers supply "today".
package freshness

import (
	"sort"
	"time"
)

type Status string

const (
	Expired       Status = "expired"
	ExpiringSoon  Status = "expiring_soon"
	ExpiringMonth Status = "expiring_month"
	Fresh         Status = "fresh"
	OldRoast      Status = "old_roast"
	AgingRoast    Status = "aging_roast"
	FreshRoast    Status = "fresh_roast"
	NoDate        Status = "no_date"
)

const (
	SoonWindowDays  = 7
	MonthWindowDays = 30
	AgingRoastDays  = 60
	OldRoastDays    = 90
)

// Result is the classification of a single bean.
type Result struct {
	Status          Status
	DaysUntilExpiry *int
	DaysSinceRoast  *int
}

// Classify maps the two nullable dates onto exactly one Status. best_by takes
// priority over roast when both are present. Dates are compared by calendar
// day; time of day is ignored.
func Classify(today time.Time, roastDate, bestByDate *time.Time) Result {
	today = dateOf(today)
	var res Result

	if bestByDate != nil {
		d := daysBetween(today, dateOf(*bestByDate))
		res.DaysUntilExpiry = &d
	}
	if roastDate != nil {
		d := daysBetween(dateOf(*roastDate), today)
		if d < 0 {
			d = 0
		}
		res.DaysSinceRoast = &d
	}

	switch {
	case res.DaysUntilExpiry != nil:
		d := *res.DaysUntilExpiry
		switch {
		case d < 0:
			res.Status = Expired
		case d <= SoonWindowDays:
			res.Status = ExpiringSoon
		case d <= MonthWindowDays:
			res.Status = ExpiringMonth
		default:
			res.Status = Fresh
		}
	case res.DaysSinceRoast != nil:
		res.Status = roastStatus(*res.DaysSinceRoast)
	default:
		res.Status = NoDate
	}
	return res
}

func roastStatus(daysSince int) Status {
	switch {
	case daysSince > OldRoastDays:
		return OldRoast
	case daysSince > AgingRoastDays:
		return AgingRoast
	default:
		return FreshRoast
	}
}

// Priority ranks statuses by urgency, lower is more urgent.
func Priority(s Status) int {
	switch s {
	case Expired:
		return 0
	case ExpiringSoon:
		return 1
	case OldRoast:
		return 2
	case ExpiringMonth:
		return 3
	case AgingRoast:
		return 4
	default:
		return 5
	}
}

// Input is one candidate bean for the alert list.
type Input struct {
	BeanID         uint
	RoastDate      *time.Time
	BestByDate     *time.Time
	TotalInventory float64
}

type Alert struct {
	Input
	Result
}

// Alerts classifies every bean that has stock and at least one date, then
// orders them by urgency. Beans without stock or without dates never appear.
func Alerts(today time.Time, beans []Input) []Alert {
	alerts := make([]Alert, 0, len(beans))
	for _, b := range beans {
		if b.TotalInventory <= 0 {
			continue
		}
		res := Classify(today, b.RoastDate, b.BestByDate)
		if res.Status == NoDate {
			continue
		}
		alerts = append(alerts, Alert{Input: b, Result: res})
	}
	SortAlerts(alerts)
	return alerts
}

// SortAlerts orders by priority, then best_by ascending, then roast ascending.
// Missing dates sort last within their tier and equal keys keep input order.
func SortAlerts(alerts []Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		a, b := alerts[i], alerts[j]
		if pa, pb := Priority(a.Status), Priority(b.Status); pa != pb {
			return pa < pb
		}
		if c := compareNullable(a.BestByDate, b.BestByDate); c != 0 {
			return c < 0
		}
		return compareNullable(a.RoastDate, b.RoastDate) < 0
	})
}

func compareNullable(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return dateOf(*a).Compare(dateOf(*b))
}

// Summary holds per-bucket counts. The buckets overlap: the roast counters
// look at roast_date whether or not a best-by date exists.
type Summary struct {
	TotalBeansWithDates int `json:"total_beans_with_dates"`
	ExpiredCount        int `json:"expired_count"`
	ExpiringSoonCount   int `json:"expiring_soon_count"`
	ExpiringMonthCount  int `json:"expiring_month_count"`
	OldRoastCount       int `json:"old_roast_count"`
	AgingRoastCount     int `json:"aging_roast_count"`
	FreshCount          int `json:"fresh_count"`
}

// Summarize counts over every bean that carries at least one date. Stock is
// not considered.
func Summarize(today time.Time, beans []Input) Summary {
	var s Summary
	today = dateOf(today)
	for _, b := range beans {
		if b.RoastDate == nil && b.BestByDate == nil {
			continue
		}
		s.TotalBeansWithDates++

		bestByFresh := false
		if b.BestByDate != nil {
			d := daysBetween(today, dateOf(*b.BestByDate))
			switch {
			case d < 0:
				s.ExpiredCount++
			case d <= SoonWindowDays:
				s.ExpiringSoonCount++
			case d <= MonthWindowDays:
				s.ExpiringMonthCount++
			}
			bestByFresh = d > MonthWindowDays
		}

		roastFresh := false
		if b.RoastDate != nil {
			switch roastStatus(daysBetween(dateOf(*b.RoastDate), today)) {
			case OldRoast:
				s.OldRoastCount++
			case AgingRoast:
				s.AgingRoastCount++
			default:
				roastFresh = true
			}
		}

		// Either date alone can vouch for the bean.
		if bestByFresh || roastFresh {
			s.FreshCount++
		}
	}
	return s
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns to - from in whole days; both must be UTC midnights.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
