package calculator

// CalculateEMA computes the exponential moving average of the given series.
// The first output element seeds from the first input element (not an SMA
// seed), so the output always has the same length as the input. An empty
// series yields an empty result.
func CalculateEMA(series []float64, period int) []float64 {
	if len(series) == 0 {
		return nil
	}
	k := 2.0 / float64(period+1)
	ema := make([]float64, len(series))
	ema[0] = series[0]
	for i := 1; i < len(series); i++ {
		ema[i] = series[i]*k + ema[i-1]*(1-k)
	}
	return ema
}
