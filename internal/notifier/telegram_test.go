package notifier

import (
	"encoding/json"
	"strings"
	"testing"

	"MacdRadar/internal/model"
)

func TestChunkButtons_TwoPerRow(t *testing.T) {
	buttons := []model.Button{
		{Label: "🔗 RELIANCE", URL: "https://www.tradingview.com/chart/?symbol=NSE:RELIANCE"},
		{Label: "🔗 TCS", URL: "https://www.tradingview.com/chart/?symbol=NSE:TCS"},
		{Label: "🔗 INFY", URL: "https://www.tradingview.com/chart/?symbol=NSE:INFY"},
	}

	rows := chunkButtons(buttons, 2)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if len(rows[0]) != 2 || len(rows[1]) != 1 {
		t.Errorf("row sizes = %d/%d, want 2/1", len(rows[0]), len(rows[1]))
	}
	if rows[1][0].Text != "🔗 INFY" {
		t.Errorf("odd button should land alone in the last row, got %q", rows[1][0].Text)
	}
}

func TestChunkButtons_Empty(t *testing.T) {
	if rows := chunkButtons(nil, 2); rows != nil {
		t.Errorf("expected no rows, got %v", rows)
	}
}

func TestReplyMarkup_JSONShape(t *testing.T) {
	markup := replyMarkup{InlineKeyboard: chunkButtons([]model.Button{
		{Label: "🔗 SBIN", URL: "https://www.tradingview.com/chart/?symbol=NSE:SBIN"},
	}, 2)}

	data, err := json.Marshal(markup)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`"inline_keyboard"`,
		`"text":"🔗 SBIN"`,
		`"url":"https://www.tradingview.com/chart/?symbol=NSE:SBIN"`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("payload missing %s: %s", want, data)
		}
	}
}
