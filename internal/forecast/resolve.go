package forecast

import (
	"time"

	"github.com/mohaimenhasan/flight-delay/pkg/models"
)

// Closest returns the forecast point whose date is nearest the target by
// absolute day distance. Points arrive in ascending date order and the
// first minimum is kept, so the earlier date wins ties. A non-empty input
// is the caller's responsibility; Run never produces an empty sequence.
func Closest(points []models.ForecastPoint, target time.Time) models.ForecastPoint {
	best := points[0]
	bestDist := absDays(points[0].Date, target)

	for _, p := range points[1:] {
		if d := absDays(p.Date, target); d < bestDist {
			best = p
			bestDist = d
		}
	}
	return best
}

// absDays is the absolute calendar-day distance between two day-precision
// dates.
func absDays(a, b time.Time) int {
	d := int(a.Sub(b).Hours() / 24)
	if d < 0 {
		return -d
	}
	return d
}
