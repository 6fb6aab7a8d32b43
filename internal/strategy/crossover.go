package strategy

import "MacdRadar/internal/model"

// DetectReversal inspects the last two labels of a classified sequence and
// reports whether a bearish-to-bullish transition just happened. Only the
// most recent pair is examined; transitions touching NO SIGNAL never fire.
func DetectReversal(labels []model.SignalLabel) (prev, curr model.SignalLabel, ok bool) {
	if len(labels) < 2 {
		return model.SignalNone, model.SignalNone, false
	}
	prev = labels[len(labels)-2]
	curr = labels[len(labels)-1]
	return prev, curr, prev.Bearish() && curr.Bullish()
}
