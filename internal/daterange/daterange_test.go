package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 30, 0, 0, time.Local)
}

func TestResolveLastOneDay(t *testing.T) {
	got := Resolve(Last1Day, at(2026, time.February, 15, 9))
	assert.Equal(t, Range{Start: "2026-02-14", End: "2026-02-15"}, got)
}

func TestResolveNamedFilters(t *testing.T) {
	now := at(2026, time.March, 4, 23) // Wednesday

	tests := []struct {
		filter Filter
		want   Range
	}{
		{Last3Days, Range{"2026-03-01", "2026-03-04"}},
		{Last7Days, Range{"2026-02-25", "2026-03-04"}},
		{Last30Days, Range{"2026-02-02", "2026-03-04"}},
		{Today, Range{"2026-03-04", "2026-03-04"}},
		{Yesterday, Range{"2026-03-03", "2026-03-03"}},
		{ThisWeek, Range{"2026-03-02", "2026-03-04"}},
		{ThisMonth, Range{"2026-03-01", "2026-03-04"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.filter, now))
		})
	}
}

func TestResolveWeekOnSunday(t *testing.T) {
	got := Resolve(ThisWeek, at(2026, time.February, 15, 12))
	assert.Equal(t, "2026-02-09", got.Start)
	assert.Equal(t, "2026-02-15", got.End)
	assert.Equal(t, 7, Days(ThisWeek, at(2026, time.February, 15, 12)))
}

func TestResolveWeekOnMonday(t *testing.T) {
	got := Resolve(ThisWeek, at(2026, time.February, 16, 0))
	assert.Equal(t, Range{"2026-02-16", "2026-02-16"}, got)
	assert.Equal(t, 1, Days(ThisWeek, at(2026, time.February, 16, 0)))
}

func TestResolveCrossesYearBoundary(t *testing.T) {
	now := at(2026, time.January, 1, 8)
	assert.Equal(t, Range{"2025-12-31", "2025-12-31"}, Resolve(Yesterday, now))
	assert.Equal(t, Range{"2025-12-02", "2026-01-01"}, Resolve(Last30Days, now))
	assert.Equal(t, Range{"2025-12-29", "2026-01-01"}, Resolve(ThisWeek, now))
}

func TestResolveProperties(t *testing.T) {
	start := at(2024, time.January, 1, 13)
	for i := 0; i < 800; i++ {
		now := start.AddDate(0, 0, i)
		for _, f := range Filters() {
			r := Resolve(f, now)

			s, err := time.Parse(DateLayout, r.Start)
			require.NoError(t, err)
			e, err := time.Parse(DateLayout, r.End)
			require.NoError(t, err)

			assert.False(t, e.Before(s), "%s on %s: start after end", f, now)
			assert.Equal(t, r, Resolve(f, now))
			assert.GreaterOrEqual(t, Days(f, now), 1)

			if f == ThisWeek {
				assert.Equal(t, time.Monday, s.Weekday(), "week start for %s", now.Format(DateLayout))
			}
		}
	}
}

func TestDays(t *testing.T) {
	now := at(2026, time.March, 4, 10)
	assert.Equal(t, 1, Days(Last1Day, now))
	assert.Equal(t, 3, Days(Last3Days, now))
	assert.Equal(t, 7, Days(Last7Days, now))
	assert.Equal(t, 30, Days(Last30Days, now))
	assert.Equal(t, 1, Days(Today, now))
	assert.Equal(t, 1, Days(Yesterday, now))
	assert.Equal(t, 3, Days(ThisWeek, now))
	assert.Equal(t, 4, Days(ThisMonth, now))
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter(" Last_7_Days ")
	require.NoError(t, err)
	assert.Equal(t, Last7Days, f)

	_, err = ParseFilter("fortnight")
	assert.ErrorIs(t, err, ErrUnknownFilter)
}

func TestCustom(t *testing.T) {
	r, err := Custom("2026-02-01", "2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, 28, r.CalendarDays())

	r, err = Custom("2023-03-01", "2024-03-31")
	require.NoError(t, err)
	assert.Equal(t, 397, r.CalendarDays())

	r, err = Custom("0001-01-01", "9999-12-31")
	require.NoError(t, err)
	assert.Equal(t, 3652059, r.CalendarDays())

	_, err = Custom("2026-02-10", "2026-02-01")
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = Custom("02/01/2026", "2026-02-01")
	assert.ErrorIs(t, err, ErrInvalidRange)
}
