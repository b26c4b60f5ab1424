// Package period implements calendar bucketing for reports.
// All computations are calendar-based in the location of the input time;
// bucket bounds are inclusive on both ends.
package period

import (
	"fmt"
	"time"

	"esteticar/internal/core/apperror"
)

// Granularity determines how report windows are partitioned into buckets.
type Granularity string

const (
	Daily   Granularity = "daily"
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
	Yearly  Granularity = "yearly"
)

// Parse validates a granularity string. Unknown values are an error,
// never a silent default.
func Parse(s string) (Granularity, error) {
	switch Granularity(s) {
	case Daily, Weekly, Monthly, Yearly:
		return Granularity(s), nil
	default:
		return "", apperror.NewInvalidGranularity(s)
	}
}

// DefaultLookbackDays returns how far back the report window reaches when
// the caller gives a granularity but no explicit range.
func (g Granularity) DefaultLookbackDays() int {
	switch g {
	case Weekly:
		return 30
	case Monthly:
		return 180
	case Yearly:
		return 730
	default: // Daily
		return 7
	}
}

// Start returns the inclusive beginning of the bucket containing d.
// Weeks start on Sunday.
func (g Granularity) Start(d time.Time) time.Time {
	switch g {
	case Weekly:
		day := startOfDay(d)
		return day.AddDate(0, 0, -int(day.Weekday()))
	case Monthly:
		return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
	case Yearly:
		return time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, d.Location())
	default: // Daily
		return startOfDay(d)
	}
}

// End returns the inclusive end of the bucket containing d
// (last nanosecond of the bucket's final day).
func (g Granularity) End(d time.Time) time.Time {
	switch g {
	case Weekly:
		return endOfDay(g.Start(d).AddDate(0, 0, 6))
	case Monthly:
		firstOfNext := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location()).AddDate(0, 1, 0)
		return firstOfNext.Add(-time.Nanosecond)
	case Yearly:
		return endOfDay(time.Date(d.Year(), time.December, 31, 0, 0, 0, 0, d.Location()))
	default: // Daily
		return endOfDay(d)
	}
}

// Advance moves d to the equivalent point in the next bucket using
// calendar arithmetic (months and years keep their natural lengths).
func (g Granularity) Advance(d time.Time) time.Time {
	switch g {
	case Weekly:
		return d.AddDate(0, 0, 7)
	case Monthly:
		return d.AddDate(0, 1, 0)
	case Yearly:
		return d.AddDate(1, 0, 0)
	default: // Daily
		return d.AddDate(0, 0, 1)
	}
}

// Label renders the human-facing name of the bucket containing d.
func (g Granularity) Label(d time.Time) string {
	switch g {
	case Weekly:
		return fmt.Sprintf("%s - %s", g.Start(d).Format("02/01/2006"), g.End(d).Format("02/01/2006"))
	case Monthly:
		return d.Format("January 2006")
	case Yearly:
		return d.Format("2006")
	default: // Daily
		return d.Format("02/01/2006")
	}
}

// Range is an inclusive [From, To] report window.
type Range struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Contains reports whether t falls inside the window.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// Duration returns the window length.
func (r Range) Duration() time.Duration {
	return r.To.Sub(r.From)
}

// DefaultRange builds the default window for a granularity, ending at the
// last nanosecond of today and reaching DefaultLookbackDays back.
func DefaultRange(g Granularity, now time.Time) Range {
	to := endOfDay(now)
	from := startOfDay(now.AddDate(0, 0, -g.DefaultLookbackDays()))
	return Range{From: from, To: to}
}

// Previous returns the window of equal length immediately before r,
// used for period-over-period trend comparison.
func (r Range) Previous() Range {
	length := r.To.Sub(r.From)
	to := r.From.Add(-time.Nanosecond)
	return Range{From: to.Add(-length), To: to}
}

// Buckets walks the window and returns one entry per bucket that overlaps
// it, in chronological order. Each entry keeps its full calendar bounds
// even when the window cuts the first or last bucket short.
func Buckets(g Granularity, r Range) []Range {
	var out []Range
	cursor := g.Start(r.From)
	for !cursor.After(r.To) {
		out = append(out, Range{From: g.Start(cursor), To: g.End(cursor)})
		cursor = g.Advance(cursor)
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfDay truncates t to midnight in its location.
// Exposed for calendar-date comparisons (overdue checks, cash-flow days).
func StartOfDay(t time.Time) time.Time {
	return startOfDay(t)
}

// EndOfDay returns the last nanosecond of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return endOfDay(t)
}
