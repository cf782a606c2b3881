package model

// Model labels for the three synthetic predictors. The names come from the
// research-paper architectures the outputs are styled after; the values are
// trend extrapolations, not learned inference.
const (
	ModelRNN  = "RNN"
	ModelLSTM = "LSTM"
	ModelCNN  = "CNN"
)

// Forecast maps each model label to a single predicted price.
type Forecast map[string]float64

// Average returns the mean of all predicted prices, 0 for an empty forecast.
func (f Forecast) Average() float64 {
	if len(f) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range f {
		sum += v
	}
	return sum / float64(len(f))
}

// ModelMetrics holds the published performance numbers for one model.
type ModelMetrics struct {
	RMSE float64 `json:"rmse"`
	MAE  float64 `json:"mae"`
	R2   float64 `json:"r2"`
	MSE  float64 `json:"mse"`
}
