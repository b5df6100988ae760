// Package pipeline wires the prediction stages together: load, filter,
// aggregate, forecast, resolve. Each stage hands an immutable result to
// the next; nothing is shared across invocations.
package pipeline

import (
	"fmt"
	"log"
	"time"

	"github.com/mohaimenhasan/flight-delay/internal/aggregate"
	"github.com/mohaimenhasan/flight-delay/internal/dataset"
	"github.com/mohaimenhasan/flight-delay/internal/filter"
	"github.com/mohaimenhasan/flight-delay/internal/forecast"
)

// Pipeline runs the forecasting pipeline over one dataset source.
type Pipeline struct {
	source   dataset.Source
	newModel func() forecast.Model
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithModelFactory substitutes the forecasting model constructor. Every
// prediction fits a fresh model, so a factory is injected rather than a
// single instance.
func WithModelFactory(f func() forecast.Model) Option {
	return func(p *Pipeline) {
		p.newModel = f
	}
}

// New creates a pipeline over the given dataset source.
func New(source dataset.Source, opts ...Option) *Pipeline {
	p := &Pipeline{
		source:   source,
		newModel: forecast.NewDefaultModel,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Prediction is the resolved forecast for the month nearest the requested
// date.
type Prediction struct {
	MatchedDate time.Time
	Estimate    float64
	Lower       float64
	Upper       float64
	Elapsed     time.Duration
}

// PredictClosest loads the dataset, applies the criteria, aggregates the
// survivors into a monthly series, forecasts far enough to cover target,
// and returns the forecast point nearest target by day distance.
func (p *Pipeline) PredictClosest(criteria filter.Criteria, target time.Time) (Prediction, error) {
	start := time.Now()

	records, err := p.source.Load()
	if err != nil {
		return Prediction{}, fmt.Errorf("load dataset: %w", err)
	}
	log.Printf("Loaded %d flight records", len(records))
	if len(records) == 0 {
		return Prediction{}, fmt.Errorf("dataset contains no records")
	}

	if criteria.IsZero() {
		log.Printf("No filters supplied; forecasting over the full dataset")
	}
	filtered, err := filter.Apply(records, criteria)
	if err != nil {
		return Prediction{}, err
	}

	latest := aggregate.LatestDate(filtered)
	horizon := aggregate.Horizon(latest, target)
	log.Printf("Latest date in the dataset: %s", latest.Format("2006-01-02"))
	log.Printf("Forecasting for %d months", horizon)

	series := aggregate.Monthly(filtered)

	log.Printf("Fitting the model on %d monthly observations", len(series))
	points, err := forecast.New(p.newModel()).Run(series, horizon)
	if err != nil {
		return Prediction{}, err
	}

	closest := forecast.Closest(points, target)
	return Prediction{
		MatchedDate: closest.Date,
		Estimate:    closest.Estimate,
		Lower:       closest.Lower,
		Upper:       closest.Upper,
		Elapsed:     time.Since(start),
	}, nil
}
