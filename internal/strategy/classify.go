package strategy

import "MacdRadar/internal/model"

// Classify maps one (macd, signal) pair to a momentum label. The rules are
// checked in order and the first match wins; some conditions overlap, so
// the order is part of the contract.
func Classify(macd, signal float64) model.SignalLabel {
	switch {
	case macd > signal && macd > 0 && signal > 0:
		return model.SignalStrongBuy
	case macd < signal && macd < 0 && signal < 0:
		return model.SignalStrongSell
	case macd > signal && macd < 0:
		return model.SignalWeakBuy
	case macd < signal && macd > 0:
		return model.SignalWeakSell
	case macd > signal:
		return model.SignalBuy
	case macd < signal:
		return model.SignalSell
	default:
		return model.SignalNone
	}
}

// ClassifySeries labels every index of an aligned macd/signal line pair.
func ClassifySeries(macdLine, signalLine []float64) []model.SignalLabel {
	labels := make([]model.SignalLabel, len(macdLine))
	for i := range macdLine {
		labels[i] = Classify(macdLine[i], signalLine[i])
	}
	return labels
}
