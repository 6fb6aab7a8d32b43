package alert

import (
	"fmt"
	"strings"
	"time"

	"MacdRadar/internal/model"
)

const tradingViewChartURL = "https://www.tradingview.com/chart/?symbol=NSE:%s"

// BuildMessage renders the crossover summary sent to Telegram. Sections
// appear only for timeframes that produced events and bullets carry the
// bare symbol. scannedAt should already be in the display timezone.
func BuildMessage(intraday, daily []model.CrossoverEvent, scannedAt time.Time) string {
	var b strings.Builder

	b.WriteString("📈 <b>MACD Crossover Summary</b>\n")
	b.WriteString(fmt.Sprintf("🕒 <b>Scanned at:</b> %s IST\n\n", scannedAt.Format("02 Jan 2006, 03:04 PM")))

	if len(intraday) > 0 {
		b.WriteString("⏱️ <b>4H Timeframe</b>\n")
		for _, ev := range intraday {
			b.WriteString(fmt.Sprintf("• %s\n", ev.Symbol))
		}
		b.WriteString("\n")
	}
	if len(daily) > 0 {
		b.WriteString("📅 <b>1D Timeframe</b>\n")
		for _, ev := range daily {
			b.WriteString(fmt.Sprintf("• %s\n", ev.Symbol))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// BuildButtons creates one TradingView chart link per event, intraday
// first then daily, mirroring the summary order. Symbols appearing in
// both timeframes get a button each.
func BuildButtons(intraday, daily []model.CrossoverEvent) []model.Button {
	buttons := make([]model.Button, 0, len(intraday)+len(daily))
	for _, ev := range intraday {
		buttons = append(buttons, chartButton(ev.Symbol))
	}
	for _, ev := range daily {
		buttons = append(buttons, chartButton(ev.Symbol))
	}
	return buttons
}

func chartButton(symbol string) model.Button {
	return model.Button{
		Label: fmt.Sprintf("🔗 %s", symbol),
		URL:   fmt.Sprintf(tradingViewChartURL, symbol),
	}
}
