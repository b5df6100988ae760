package forecast

import (
	"fmt"
	"time"

	forecaster "github.com/aouyang1/go-forecaster"

	"github.com/mohaimenhasan/flight-delay/pkg/models"
)

// defaultModel adapts go-forecaster to the Model interface. It fits a
// series model plus an uncertainty model with default options; no knobs
// are exposed.
type defaultModel struct {
	f *forecaster.Forecaster
}

var _ Model = (*defaultModel)(nil)

// NewDefaultModel returns the production forecasting model.
func NewDefaultModel() Model {
	return &defaultModel{}
}

func (m *defaultModel) Fit(times []time.Time, values []float64) error {
	f, err := forecaster.New(nil)
	if err != nil {
		return err
	}
	if err := f.Fit(times, values); err != nil {
		return err
	}
	m.f = f
	return nil
}

func (m *defaultModel) Predict(times []time.Time) ([]models.ForecastPoint, error) {
	if m.f == nil {
		return nil, fmt.Errorf("model has not been fit")
	}

	res, err := m.f.Predict(times)
	if err != nil {
		return nil, err
	}

	points := make([]models.ForecastPoint, len(res.T))
	for i := range res.T {
		points[i] = models.ForecastPoint{
			Date:     res.T[i],
			Estimate: res.Forecast[i],
			Lower:    res.Lower[i],
			Upper:    res.Upper[i],
		}
	}
	return points, nil
}
