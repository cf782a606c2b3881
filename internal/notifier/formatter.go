package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/parasscreener/nifty-predictor/internal/model"
	"github.com/parasscreener/nifty-predictor/internal/predictor"
)

// FormatDailyReport formats a completed prediction run into a Telegram message.
func FormatDailyReport(series *model.PriceSeries, trend float64, forecast model.Forecast, rec *model.Recommendation) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>NIFTY 50 日报</b> | %s\n\n", time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("当前指数: %.2f\n", series.CurrentPrice))
	b.WriteString(fmt.Sprintf("5日趋势: %+.2f%%\n\n", trend*100))

	b.WriteString("🔮 <b>模型预测:</b>\n")
	for _, m := range predictor.Models {
		b.WriteString(fmt.Sprintf("  %s: %.2f\n", m.Label, forecast[m.Label]))
	}
	b.WriteString(fmt.Sprintf("  ─────────────────\n  平均: %.2f\n\n", forecast.Average()))

	b.WriteString(fmt.Sprintf("💡 <b>建议:</b> %s (%s)\n", rec.Action, rec.Confidence))
	b.WriteString(fmt.Sprintf("   %s\n", rec.Reason))

	return b.String()
}

// FormatRunError formats a failed run notification.
func FormatRunError(err error) string {
	return fmt.Sprintf("❌ <b>预测任务失败</b>\n\n%v", err)
}
