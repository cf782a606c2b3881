package predictor

import (
	"errors"

	"github.com/parasscreener/nifty-predictor/internal/model"
)

// ErrInvalidPrice is returned when the current price is not positive.
var ErrInvalidPrice = errors.New("current price must be positive")

// ModelSpec fixes the shape of one synthetic model: how strongly it
// extrapolates the trend and how much gaussian noise it carries.
type ModelSpec struct {
	Label  string
	Weight float64
	Sigma  float64
}

// Models are the three fixed synthetic predictors. These are parametrized
// trend extrapolations standing in for the trained architectures they are
// named after, not actual inference.
var Models = []ModelSpec{
	{Label: model.ModelRNN, Weight: 0.8, Sigma: 0.005},
	{Label: model.ModelLSTM, Weight: 1.2, Sigma: 0.003},
	{Label: model.ModelCNN, Weight: 0.6, Sigma: 0.007},
}

// Predict derives the three labeled point-forecasts from the current price
// and trend: price * (1 + trend*weight + noise). Noise is drawn per model in
// Models order, so a seeded source reproduces the forecast exactly.
func Predict(currentPrice, trend float64, noise NoiseSource) (model.Forecast, error) {
	if currentPrice <= 0 {
		return nil, ErrInvalidPrice
	}
	forecast := make(model.Forecast, len(Models))
	for _, m := range Models {
		forecast[m.Label] = currentPrice * (1 + trend*m.Weight + noise.Normal(m.Sigma))
	}
	return forecast, nil
}
