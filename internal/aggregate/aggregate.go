// Package aggregate buckets filtered flight records into calendar-month
// totals and computes the forecast horizon for a target date.
package aggregate

import (
	"sort"
	"time"

	"github.com/mohaimenhasan/flight-delay/pkg/models"
)

// MonthEnd returns the last day of t's calendar month (day precision, UTC).
func MonthEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC)
}

// Monthly partitions records into disjoint calendar-month buckets, keyed by
// month-end date, and sums total flights per bucket. The result is sorted
// ascending by month. Months with no records are not synthesized.
func Monthly(records []models.FlightRecord) []models.MonthlyPoint {
	buckets := make(map[time.Time]float64, 32)
	for _, r := range records {
		buckets[MonthEnd(r.Date)] += r.Total
	}

	series := make([]models.MonthlyPoint, 0, len(buckets))
	for month, total := range buckets {
		series = append(series, models.MonthlyPoint{Month: month, Total: total})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Month.Before(series[j].Month)
	})
	return series
}

// LatestDate returns the latest record date present, or the zero time for
// an empty set.
func LatestDate(records []models.FlightRecord) time.Time {
	var latest time.Time
	for _, r := range records {
		if r.Date.After(latest) {
			latest = r.Date
		}
	}
	return latest
}

// Horizon returns the number of calendar months to forecast beyond the
// latest historical month to cover target, floored at 1 so at least one
// period is always forecast even when target falls inside or before the
// historical range. Only year and month matter; days are ignored.
func Horizon(latest, target time.Time) int {
	months := (target.Year()-latest.Year())*12 + int(target.Month()) - int(latest.Month())
	if months < 1 {
		return 1
	}
	return months
}
