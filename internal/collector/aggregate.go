package collector

import (
	"time"

	"MacdRadar/internal/model"
)

// AggregateBars merges chronological bars into fixed-width buckets: open
// from the first bar, high is the max, low is the min, close from the last
// bar, volume summed. A bucket's boundary is the bar timestamp truncated
// to the width; buckets with no contributing bars are dropped.
func AggregateBars(bars []model.OHLCV, width time.Duration) []model.OHLCV {
	if width <= 0 {
		return bars
	}
	if len(bars) == 0 {
		return nil
	}

	var out []model.OHLCV
	var bucket model.OHLCV
	var started bool

	for _, b := range bars {
		start := b.Time.Truncate(width)

		if !started {
			bucket = model.OHLCV{Time: start, Open: b.Open, High: b.High, Low: b.Low, Close: b.Close, Volume: b.Volume}
			started = true
			continue
		}

		if !start.Equal(bucket.Time) {
			out = append(out, bucket)
			bucket = model.OHLCV{Time: start, Open: b.Open, High: b.High, Low: b.Low, Close: b.Close, Volume: b.Volume}
			continue
		}

		if b.High > bucket.High {
			bucket.High = b.High
		}
		if b.Low < bucket.Low {
			bucket.Low = b.Low
		}
		bucket.Close = b.Close
		bucket.Volume += b.Volume
	}
	out = append(out, bucket)
	return out
}
