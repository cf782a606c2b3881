package advisor

import (
	"math"
	"strings"
	"testing"

	"github.com/parasscreener/nifty-predictor/internal/model"
)

func TestClassify_LadderBoundaries(t *testing.T) {
	tests := []struct {
		changePct  float64
		action     model.Action
		confidence model.Confidence
	}{
		{3.0, model.ActionBuy, model.ConfidenceHigh},
		{2.0001, model.ActionBuy, model.ConfidenceHigh},
		{2.0, model.ActionHold, model.ConfidenceMedium},
		{1.0, model.ActionHold, model.ConfidenceMedium},
		{0.5, model.ActionHold, model.ConfidenceMedium},
		{0.0, model.ActionHold, model.ConfidenceMedium},
		{-0.5, model.ActionCaution, model.ConfidenceMedium},
		{-1.0, model.ActionCaution, model.ConfidenceMedium},
		{-2.0, model.ActionCaution, model.ConfidenceMedium},
		{-2.0001, model.ActionSell, model.ConfidenceHigh},
		{-5.0, model.ActionSell, model.ConfidenceHigh},
	}
	for _, tt := range tests {
		rec := classify(tt.changePct)
		if rec.Action != tt.action {
			t.Errorf("changePct %.4f: expected action %s, got %s", tt.changePct, tt.action, rec.Action)
		}
		if rec.Confidence != tt.confidence {
			t.Errorf("changePct %.4f: expected confidence %s, got %s", tt.changePct, tt.confidence, rec.Confidence)
		}
	}
}

func TestRecommend_EndToEndScenario(t *testing.T) {
	forecast := model.Forecast{
		model.ModelRNN:  21520,
		model.ModelLSTM: 21580,
		model.ModelCNN:  21490,
	}
	rec := Recommend(forecast, 21450.75)

	if rec.Action != model.ActionHold {
		t.Errorf("expected HOLD, got %s", rec.Action)
	}
	if rec.Confidence != model.ConfidenceMedium {
		t.Errorf("expected Medium confidence, got %s", rec.Confidence)
	}
	if !strings.Contains(rec.Reason, "+0.37%") {
		t.Errorf("expected reason to contain +0.37%%, got %q", rec.Reason)
	}
	if math.Abs(rec.ChangePct-0.3694) > 0.001 {
		t.Errorf("unexpected changePct %.4f", rec.ChangePct)
	}
}

func TestClassify_ReasonSign(t *testing.T) {
	// Non-negative percentages carry an explicit plus sign.
	if rec := classify(0.2); !strings.Contains(rec.Reason, "(+0.20%)") {
		t.Errorf("expected explicit plus sign, got %q", rec.Reason)
	}
	if rec := classify(0.0); !strings.Contains(rec.Reason, "(+0.00%)") {
		t.Errorf("expected explicit plus sign at zero, got %q", rec.Reason)
	}
	if rec := classify(-1.2); !strings.Contains(rec.Reason, "(-1.20%)") {
		t.Errorf("expected minus sign, got %q", rec.Reason)
	}
}

func TestClassify_Exhaustive(t *testing.T) {
	// Every changePct must map to exactly one complete bucket.
	for pct := -10.0; pct <= 10.0; pct += 0.01 {
		rec := classify(pct)
		if rec.Action == "" || rec.Confidence == "" || rec.Reason == "" || rec.Color == "" {
			t.Fatalf("incomplete recommendation at changePct %.2f: %+v", pct, rec)
		}
	}
}

func TestClassify_ColorHints(t *testing.T) {
	tests := []struct {
		changePct float64
		color     string
	}{
		{3.0, "#28a745"},
		{1.0, "#ffc107"},
		{0.0, "#6c757d"},
		{-1.0, "#fd7e14"},
		{-3.0, "#dc3545"},
	}
	for _, tt := range tests {
		rec := classify(tt.changePct)
		if rec.Color != tt.color {
			t.Errorf("changePct %.1f: expected color %s, got %s", tt.changePct, tt.color, rec.Color)
		}
	}
}
