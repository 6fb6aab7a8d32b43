package calculator

import (
	"errors"
	"math"
	"testing"
)

func TestCalculateMACD_MinimumBars(t *testing.T) {
	params := DefaultMACDParams()

	short := make([]float64, 29)
	for i := range short {
		short[i] = 100 + float64(i)
	}
	if _, err := CalculateMACD(short, params); !errors.Is(err, ErrNotEnoughData) {
		t.Fatalf("29 bars: expected ErrNotEnoughData, got %v", err)
	}

	exact := append(short, 129)
	snap, err := CalculateMACD(exact, params)
	if err != nil {
		t.Fatalf("30 bars: unexpected error: %v", err)
	}
	if snap == nil {
		t.Fatal("30 bars: expected a snapshot")
	}
}

func TestCalculateMACD_Alignment(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 200 + math.Sin(float64(i))*5
	}
	snap, err := CalculateMACD(closes, DefaultMACDParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.MACDLine) != len(closes) {
		t.Errorf("macd line length %d, expected %d", len(snap.MACDLine), len(closes))
	}
	if len(snap.SignalLine) != len(closes) {
		t.Errorf("signal line length %d, expected %d", len(snap.SignalLine), len(closes))
	}
}

func TestCalculateMACD_ConstantSeries(t *testing.T) {
	closes := make([]float64, 35)
	for i := range closes {
		closes[i] = 250
	}
	snap, err := CalculateMACD(closes, DefaultMACDParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range snap.MACDLine {
		if !almostEqual(snap.MACDLine[i], 0) {
			t.Fatalf("macd[%d]: expected 0, got %v", i, snap.MACDLine[i])
		}
		if !almostEqual(snap.SignalLine[i], 0) {
			t.Fatalf("signal[%d]: expected 0, got %v", i, snap.SignalLine[i])
		}
	}
	if !almostEqual(snap.Histogram, 0) {
		t.Errorf("histogram: expected 0, got %v", snap.Histogram)
	}
}

func TestCalculateMACD_RisingSeries(t *testing.T) {
	// A strictly rising series keeps the fast EMA above the slow EMA and the
	// MACD line above its own (lagging) signal line.
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	snap, err := CalculateMACD(closes, DefaultMACDParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	macd, signal := snap.Last()
	if macd <= 0 {
		t.Errorf("expected positive macd on rising series, got %v", macd)
	}
	if macd <= signal {
		t.Errorf("expected macd above signal on rising series, got macd=%v signal=%v", macd, signal)
	}
	if snap.Histogram <= 0 {
		t.Errorf("expected positive histogram, got %v", snap.Histogram)
	}
}

func TestCalculateMACD_CustomMinimum(t *testing.T) {
	params := MACDParams{Fast: 5, Slow: 10, Signal: 4, MinimumBars: 12}
	closes := make([]float64, 11)
	for i := range closes {
		closes[i] = 50
	}
	if _, err := CalculateMACD(closes, params); !errors.Is(err, ErrNotEnoughData) {
		t.Fatalf("11 bars with 12 minimum: expected ErrNotEnoughData, got %v", err)
	}
	if _, err := CalculateMACD(append(closes, 50), params); err != nil {
		t.Fatalf("12 bars with 12 minimum: unexpected error: %v", err)
	}
}
