// Package daterange maps the dashboard's named date filters to concrete
// calendar-date ranges.
package daterange

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format of every date the upstream service accepts
const DateLayout = "2006-01-02"

// Filter is a named date filter
type Filter string

// Revenue-report filters
const (
	Last1Day   Filter = "last_1_day"
	Last3Days  Filter = "last_3_days"
	Last7Days  Filter = "last_7_days"
	Last30Days Filter = "last_30_days"
)

// Dashboard chooser filters
const (
	Today     Filter = "today"
	Yesterday Filter = "yesterday"
	ThisWeek  Filter = "this_week"
	ThisMonth Filter = "this_month"
)

var (
	ErrUnknownFilter = errors.New("unknown date filter")
	ErrInvalidRange  = errors.New("invalid date range")
)

var lookbackDays = map[Filter]int{
	Last1Day:   1,
	Last3Days:  3,
	Last7Days:  7,
	Last30Days: 30,
}

// Filters returns every supported filter, revenue-report filters first
func Filters() []Filter {
	return []Filter{Last1Day, Last3Days, Last7Days, Last30Days, Today, Yesterday, ThisWeek, ThisMonth}
}

// ParseFilter validates a filter name received from a client
func ParseFilter(name string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Filters() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFilter, name)
}

// Range is an inclusive pair of calendar dates in DateLayout
type Range struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CalendarDays returns the number of calendar days covered by the range,
// counting both ends.
func (r Range) CalendarDays() int {
	start, err := time.Parse(DateLayout, r.Start)
	if err != nil {
		return 1
	}
	end, err := time.Parse(DateLayout, r.End)
	if err != nil {
		return 1
	}
	days := int(dayNumber(end)-dayNumber(start)) + 1
	if days < 1 {
		return 1
	}
	return days
}

// dayNumber counts days since the Unix epoch for a date parsed at UTC
// midnight. time.Duration cannot span the full range of dates.
func dayNumber(t time.Time) int64 {
	return t.Unix() / 86400
}

// Resolve returns the date range of f relative to now, using now's location
// as the local calendar. Unknown filters resolve like Today.
func Resolve(f Filter, now time.Time) Range {
	today := midnight(now)
	end := today.Format(DateLayout)

	if n, ok := lookbackDays[f]; ok {
		return Range{Start: today.AddDate(0, 0, -n).Format(DateLayout), End: end}
	}

	switch f {
	case Yesterday:
		y := today.AddDate(0, 0, -1).Format(DateLayout)
		return Range{Start: y, End: y}
	case ThisWeek:
		return Range{Start: weekStart(today).Format(DateLayout), End: end}
	case ThisMonth:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return Range{Start: first.Format(DateLayout), End: end}
	default:
		return Range{Start: end, End: end}
	}
}

// Days returns the divisor used for average daily revenue. It is at least 1
// for every filter.
func Days(f Filter, now time.Time) int {
	if n, ok := lookbackDays[f]; ok {
		return n
	}

	today := midnight(now)
	switch f {
	case ThisWeek:
		return daysSinceMonday(today) + 1
	case ThisMonth:
		return today.Day()
	default:
		return 1
	}
}

// Custom validates an explicit start/end pair
func Custom(start, end string) (Range, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return Range{}, fmt.Errorf("%w: start_date must be YYYY-MM-DD", ErrInvalidRange)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return Range{}, fmt.Errorf("%w: end_date must be YYYY-MM-DD", ErrInvalidRange)
	}
	if e.Before(s) {
		return Range{}, fmt.Errorf("%w: start_date is after end_date", ErrInvalidRange)
	}
	return Range{Start: start, End: end}, nil
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// weeks start on Monday; Sunday belongs to the previous week
func daysSinceMonday(day time.Time) int {
	return (int(day.Weekday()) + 6) % 7
}

func weekStart(day time.Time) time.Time {
	return day.AddDate(0, 0, -daysSinceMonday(day))
}
