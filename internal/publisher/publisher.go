package publisher

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/parasscreener/nifty-predictor/internal/model"
	"github.com/parasscreener/nifty-predictor/internal/predictor"
)

//go:embed dashboard.html.tmpl
var dashboardTmpl string

// Publisher renders the static dashboard artifacts into SiteDir.
type Publisher struct {
	SiteDir string
	tmpl    *template.Template
}

// NewPublisher parses the embedded dashboard template.
func NewPublisher(siteDir string) (*Publisher, error) {
	tmpl, err := template.New("dashboard").Parse(dashboardTmpl)
	if err != nil {
		return nil, fmt.Errorf("parse dashboard template: %w", err)
	}
	return &Publisher{SiteDir: siteDir, tmpl: tmpl}, nil
}

// predictionView is one model card on the dashboard.
type predictionView struct {
	Label string
	Class string // CSS class, lowercased label
	Price float64
}

// metricsRow is one row of the model-performance table.
type metricsRow struct {
	Label   string
	Metrics model.ModelMetrics
}

// chartData feeds the Plotly scripts in the template.
type chartData struct {
	Dates     []string  `json:"dates"`
	Closes    []float64 `json:"closes"`
	Volumes   []float64 `json:"volumes"`
	NextDate  string    `json:"next_date"`
	LastClose float64   `json:"last_close"`
	Forecast  []struct {
		Label string  `json:"label"`
		Price float64 `json:"price"`
	} `json:"forecast"`
}

type dashboardView struct {
	Timestamp      string
	Symbol         string
	CurrentPrice   float64
	Predictions    []predictionView
	Recommendation model.Recommendation
	RecColor       template.CSS
	MarketStatus   MarketStatus
	StatusColor    template.CSS
	Metrics        []metricsRow
	ChartJSON      template.JS
}

// apiPayload is the shape of data.json, the raw API consumed alongside the page.
type apiPayload struct {
	Timestamp        string                        `json:"timestamp"`
	Symbol           string                        `json:"symbol"`
	CurrentPrice     float64                       `json:"current_price"`
	Predictions      map[string]float64            `json:"predictions"`
	Recommendation   model.Recommendation          `json:"recommendation"`
	ModelPerformance map[string]model.ModelMetrics `json:"model_performance"`
	MarketStatus     MarketStatus                  `json:"market_status"`
}

// Publish writes index.html and data.json for a completed run.
func (p *Publisher) Publish(series *model.PriceSeries, forecast model.Forecast, rec *model.Recommendation) error {
	if err := os.MkdirAll(p.SiteDir, 0755); err != nil {
		return fmt.Errorf("create site dir: %w", err)
	}

	now := time.Now().In(ist)
	status := MarketStatusAt(now)

	chart, err := buildChartJSON(series, forecast)
	if err != nil {
		return fmt.Errorf("build chart data: %w", err)
	}

	view := dashboardView{
		Timestamp:      now.Format("2006-01-02 15:04:05 IST"),
		Symbol:         series.Symbol,
		CurrentPrice:   series.CurrentPrice,
		Recommendation: *rec,
		RecColor:       template.CSS(rec.Color),
		MarketStatus:   status,
		StatusColor:    template.CSS(status.Color),
		ChartJSON:      template.JS(chart),
	}
	for _, m := range predictor.Models {
		view.Predictions = append(view.Predictions, predictionView{
			Label: m.Label,
			Class: strings.ToLower(m.Label),
			Price: forecast[m.Label],
		})
		view.Metrics = append(view.Metrics, metricsRow{Label: m.Label, Metrics: predictor.Metrics[m.Label]})
	}

	var buf strings.Builder
	if err := p.tmpl.Execute(&buf, view); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	indexPath := filepath.Join(p.SiteDir, "index.html")
	if err := os.WriteFile(indexPath, []byte(buf.String()), 0644); err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}

	payload := apiPayload{
		Timestamp:        view.Timestamp,
		Symbol:           series.Symbol,
		CurrentPrice:     series.CurrentPrice,
		Predictions:      forecast,
		Recommendation:   *rec,
		ModelPerformance: predictor.Metrics,
		MarketStatus:     status,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal data.json: %w", err)
	}
	if err := os.WriteFile(filepath.Join(p.SiteDir, "data.json"), data, 0644); err != nil {
		return fmt.Errorf("write data.json: %w", err)
	}

	log.Printf("[INFO] dashboard published: %s", indexPath)
	return nil
}

func buildChartJSON(series *model.PriceSeries, forecast model.Forecast) (string, error) {
	bars := series.DailyBars
	if len(bars) == 0 {
		return "", fmt.Errorf("empty series")
	}
	// Chart the last 90 sessions; volume panel shows 30.
	if len(bars) > 90 {
		bars = bars[len(bars)-90:]
	}
	var c chartData
	for _, b := range bars {
		c.Dates = append(c.Dates, b.Time.Format("2006-01-02"))
		c.Closes = append(c.Closes, b.Close)
	}
	volBars := bars
	if len(volBars) > 30 {
		volBars = volBars[len(volBars)-30:]
	}
	for _, b := range volBars {
		c.Volumes = append(c.Volumes, b.Volume)
	}
	last := bars[len(bars)-1]
	c.LastClose = last.Close
	c.NextDate = last.Time.AddDate(0, 0, 1).Format("2006-01-02")
	for _, m := range predictor.Models {
		c.Forecast = append(c.Forecast, struct {
			Label string  `json:"label"`
			Price float64 `json:"price"`
		}{Label: m.Label, Price: forecast[m.Label]})
	}
	data, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
