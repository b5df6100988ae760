// Package forecast drives a trend+seasonality model over a monthly flight
// series and resolves the forecasted point nearest a requested date.
package forecast

import (
	"errors"
	"fmt"
	"time"

	"github.com/mohaimenhasan/flight-delay/internal/aggregate"
	"github.com/mohaimenhasan/flight-delay/pkg/models"
)

// ErrInsufficientData is returned when fewer than two monthly observations
// are available: trend estimation needs at least two points.
var ErrInsufficientData = errors.New("insufficient data to fit a model")

// Model is the replaceable forecasting capability: fit a date-indexed
// numeric series, then predict point estimates with interval bounds for an
// arbitrary set of periods. Any estimator producing a point estimate plus
// lower/upper bounds per period can stand in.
type Model interface {
	Fit(times []time.Time, values []float64) error
	Predict(times []time.Time) ([]models.ForecastPoint, error)
}

// Forecaster runs a Model over a monthly series.
type Forecaster struct {
	model Model
}

// New returns a Forecaster backed by the given model. A nil model selects
// the default estimator.
func New(m Model) *Forecaster {
	if m == nil {
		m = NewDefaultModel()
	}
	return &Forecaster{model: m}
}

// Run fits the model on the monthly series, extends the calendar index by
// horizon month-end periods beyond the last historical month, and returns a
// ForecastPoint for every period in the combined historical+future index.
// The returned index is deterministic for a given series and horizon.
func (f *Forecaster) Run(series []models.MonthlyPoint, horizon int) ([]models.ForecastPoint, error) {
	if len(series) < 2 {
		return nil, fmt.Errorf("%w: have %d monthly observations, need at least 2", ErrInsufficientData, len(series))
	}
	if horizon < 1 {
		horizon = 1
	}

	times := make([]time.Time, len(series))
	values := make([]float64, len(series))
	for i, p := range series {
		times[i] = p.Month
		values[i] = p.Total
	}

	if err := f.model.Fit(times, values); err != nil {
		return nil, fmt.Errorf("fit model: %w", err)
	}

	index := extendIndex(times, horizon)
	points, err := f.model.Predict(index)
	if err != nil {
		return nil, fmt.Errorf("predict %d periods: %w", len(index), err)
	}
	return points, nil
}

// extendIndex appends horizon month-end periods after the last historical
// month. Future months are derived from year/month arithmetic rather than
// AddDate so month-end days never spill into the following month.
func extendIndex(times []time.Time, horizon int) []time.Time {
	index := make([]time.Time, 0, len(times)+horizon)
	index = append(index, times...)

	last := times[len(times)-1]
	for i := 1; i <= horizon; i++ {
		index = append(index, aggregate.MonthEnd(time.Date(last.Year(), last.Month()+time.Month(i), 1, 0, 0, 0, 0, time.UTC)))
	}
	return index
}
