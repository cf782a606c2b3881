package model

// Action is the discrete output of the recommendation ladder.
type Action string

const (
	ActionBuy     Action = "BUY"
	ActionHold    Action = "HOLD"
	ActionCaution Action = "CAUTION"
	ActionSell    Action = "SELL"
)

// Confidence qualifies how decisive the ladder bucket is.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
)

// Recommendation is the final advisory output derived from the forecast
// average versus the current price.
type Recommendation struct {
	Action     Action     `json:"action"`
	Confidence Confidence `json:"confidence"`
	Reason     string     `json:"reason"`
	ChangePct  float64    `json:"change_pct"`
	Color      string     `json:"color"` // presentation hint only
}
