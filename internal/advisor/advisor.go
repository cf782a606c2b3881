package advisor

import (
	"fmt"

	"github.com/parasscreener/nifty-predictor/internal/model"
)

// Recommend maps the forecast average against the current price to a
// discrete action via the fixed percentage ladder. currentPrice is positive
// here; the predictor rejects non-positive prices upstream.
func Recommend(forecast model.Forecast, currentPrice float64) model.Recommendation {
	avg := forecast.Average()
	changePct := (avg - currentPrice) / currentPrice * 100
	return classify(changePct)
}

// classify walks the threshold ladder top-down. A changePct exactly on a
// threshold takes the less extreme action, so 2.0 is HOLD (not BUY) and
// -2.0 is CAUTION (not SELL).
func classify(changePct float64) model.Recommendation {
	rec := model.Recommendation{ChangePct: changePct}
	switch {
	case changePct > 2.0:
		rec.Action = model.ActionBuy
		rec.Confidence = model.ConfidenceHigh
		rec.Color = "#28a745"
		rec.Reason = fmt.Sprintf("Strong upward trend predicted (%+.2f%%)", changePct)
	case changePct > 0.5:
		rec.Action = model.ActionHold
		rec.Confidence = model.ConfidenceMedium
		rec.Color = "#ffc107"
		rec.Reason = fmt.Sprintf("Moderate upward trend predicted (%+.2f%%)", changePct)
	case changePct > -0.5:
		rec.Action = model.ActionHold
		rec.Confidence = model.ConfidenceMedium
		rec.Color = "#6c757d"
		rec.Reason = fmt.Sprintf("Stable trend predicted (%+.2f%%)", changePct)
	case changePct >= -2.0:
		rec.Action = model.ActionCaution
		rec.Confidence = model.ConfidenceMedium
		rec.Color = "#fd7e14"
		rec.Reason = fmt.Sprintf("Moderate downward trend predicted (%+.2f%%)", changePct)
	default:
		rec.Action = model.ActionSell
		rec.Confidence = model.ConfidenceHigh
		rec.Color = "#dc3545"
		rec.Reason = fmt.Sprintf("Strong downward trend predicted (%+.2f%%)", changePct)
	}
	return rec
}
