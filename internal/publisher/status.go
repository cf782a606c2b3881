package publisher

import "time"

// MarketStatus reports whether the NSE is currently trading.
type MarketStatus struct {
	Status string `json:"status"` // "OPEN" or "CLOSED"
	Color  string `json:"color"`
}

// ist is the exchange timezone. LoadLocation needs tzdata on the host, so
// fall back to a fixed +05:30 zone.
var ist = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Kolkata"); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*3600+1800)
}()

// MarketStatusAt returns the market status for the given instant.
// NSE hours: 09:15-15:30 IST, Monday-Friday.
func MarketStatusAt(t time.Time) MarketStatus {
	now := t.In(ist)
	if now.Weekday() == time.Saturday || now.Weekday() == time.Sunday {
		return MarketStatus{Status: "CLOSED", Color: "#dc3545"}
	}
	openAt := time.Date(now.Year(), now.Month(), now.Day(), 9, 15, 0, 0, ist)
	closeAt := time.Date(now.Year(), now.Month(), now.Day(), 15, 30, 0, 0, ist)
	if !now.Before(openAt) && !now.After(closeAt) {
		return MarketStatus{Status: "OPEN", Color: "#28a745"}
	}
	return MarketStatus{Status: "CLOSED", Color: "#dc3545"}
}
