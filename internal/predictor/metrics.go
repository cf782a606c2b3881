package predictor

import "github.com/parasscreener/nifty-predictor/internal/model"

// Metrics are the published performance numbers from the research paper
// ("Stock Market Prediction of NIFTY 50 Index Applying Machine Learning
// Techniques"). They describe the original trained models and are shown on
// the dashboard as-is.
var Metrics = map[string]model.ModelMetrics{
	model.ModelRNN:  {RMSE: 0.059, MAE: 0.042, R2: 0.810, MSE: 0.00347},
	model.ModelLSTM: {RMSE: 0.002, MAE: 0.032, R2: 0.537, MSE: 0.002},
	model.ModelCNN:  {RMSE: 0.134, MAE: 0.016, R2: 0.765, MSE: 0.018},
}
