package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esteticar/internal/core/apperror"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParse(t *testing.T) {
	for _, s := range []string{"daily", "weekly", "monthly", "yearly"} {
		g, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, Granularity(s), g)
	}

	_, err := Parse("quarterly")
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidGranularity, appErr.Code)

	_, err = Parse("")
	assert.Error(t, err)
}

func TestDailyBounds(t *testing.T) {
	d := time.Date(2026, 3, 10, 15, 30, 45, 123, time.UTC)

	start := Daily.Start(d)
	end := Daily.End(d)

	assert.Equal(t, date(2026, 3, 10), start)
	assert.Equal(t, time.Date(2026, 3, 10, 23, 59, 59, 999999999, time.UTC), end)
	assert.True(t, !d.Before(start) && !d.After(end))
}

func TestWeeklyBounds_SundayBased(t *testing.T) {
	// 2026-03-10 is a Tuesday; the containing week is Sun 08 .. Sat 14.
	d := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, date(2026, 3, 8), Weekly.Start(d))
	assert.Equal(t, time.Date(2026, 3, 14, 23, 59, 59, 999999999, time.UTC), Weekly.End(d))

	// A Sunday is its own week start.
	sun := date(2026, 3, 8)
	assert.Equal(t, sun, Weekly.Start(sun))
}

func TestMonthlyBounds(t *testing.T) {
	d := time.Date(2026, 2, 15, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, date(2026, 2, 1), Monthly.Start(d))
	// 2026 is not a leap year.
	assert.Equal(t, time.Date(2026, 2, 28, 23, 59, 59, 999999999, time.UTC), Monthly.End(d))

	// Leap February.
	leap := date(2024, 2, 10)
	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 999999999, time.UTC), Monthly.End(leap))
}

func TestYearlyBounds(t *testing.T) {
	d := date(2026, 7, 4)

	assert.Equal(t, date(2026, 1, 1), Yearly.Start(d))
	assert.Equal(t, time.Date(2026, 12, 31, 23, 59, 59, 999999999, time.UTC), Yearly.End(d))
}

func TestStartContainsEnd_Invariant(t *testing.T) {
	samples := []time.Time{
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 29, 18, 45, 0, 0, time.UTC),
	}
	for _, g := range []Granularity{Daily, Weekly, Monthly, Yearly} {
		for _, d := range samples {
			start, end := g.Start(d), g.End(d)
			assert.False(t, d.Before(start), "%s: %v before start %v", g, d, start)
			assert.False(t, d.After(end), "%s: %v after end %v", g, d, end)
		}
	}
}

func TestAdvance(t *testing.T) {
	d := date(2026, 1, 31)

	assert.Equal(t, date(2026, 2, 1), Daily.Advance(d))
	assert.Equal(t, date(2026, 2, 7), Weekly.Advance(d))
	// Calendar month arithmetic: Jan 31 + 1 month normalizes to Mar 3 (2026).
	assert.Equal(t, date(2026, 3, 3), Monthly.Advance(d))
	assert.Equal(t, date(2027, 1, 31), Yearly.Advance(d))
}

func TestLabel(t *testing.T) {
	d := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "10/03/2026", Daily.Label(d))
	assert.Equal(t, "08/03/2026 - 14/03/2026", Weekly.Label(d))
	assert.Equal(t, "March 2026", Monthly.Label(d))
	assert.Equal(t, "2026", Yearly.Label(d))
}

func TestDefaultLookbackDays(t *testing.T) {
	assert.Equal(t, 7, Daily.DefaultLookbackDays())
	assert.Equal(t, 30, Weekly.DefaultLookbackDays())
	assert.Equal(t, 180, Monthly.DefaultLookbackDays())
	assert.Equal(t, 730, Yearly.DefaultLookbackDays())
}

func TestDefaultRange(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	r := DefaultRange(Daily, now)

	assert.Equal(t, date(2026, 3, 3), r.From)
	assert.Equal(t, time.Date(2026, 3, 10, 23, 59, 59, 999999999, time.UTC), r.To)
	assert.True(t, r.Contains(now))
	assert.False(t, r.Contains(date(2026, 3, 2)))
}

func TestRangePrevious(t *testing.T) {
	r := Range{
		From: date(2026, 3, 1),
		To:   time.Date(2026, 3, 31, 23, 59, 59, 999999999, time.UTC),
	}
	prev := r.Previous()

	assert.Equal(t, r.From.Add(-time.Nanosecond), prev.To)
	assert.Equal(t, r.Duration(), prev.Duration())
	assert.False(t, prev.Contains(r.From))
}

func TestBuckets(t *testing.T) {
	r := Range{
		From: date(2026, 3, 9),
		To:   time.Date(2026, 3, 11, 23, 59, 59, 999999999, time.UTC),
	}

	days := Buckets(Daily, r)
	require.Len(t, days, 3)
	assert.Equal(t, date(2026, 3, 9), days[0].From)
	assert.Equal(t, date(2026, 3, 11), days[2].From)

	// A window crossing one week boundary yields two weekly buckets
	// with full calendar bounds.
	weeks := Buckets(Weekly, Range{
		From: date(2026, 3, 13), // Friday
		To:   time.Date(2026, 3, 16, 23, 59, 59, 999999999, time.UTC),
	})
	require.Len(t, weeks, 2)
	assert.Equal(t, date(2026, 3, 8), weeks[0].From)
	assert.Equal(t, date(2026, 3, 15), weeks[1].From)
}
