package collector

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"

	"MacdRadar/internal/model"
)

// APIFetcher implements Fetcher against a self-hosted bars REST service.
// It expects GET {base}/api/v1/bars?symbol=&interval=&range= to return a
// JSON array of bars.
type APIFetcher struct {
	client *resty.Client
}

// NewAPIFetcher creates a new fetcher with optional bearer auth and proxy.
func NewAPIFetcher(baseURL, apiKey, proxyURL string) *APIFetcher {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second)
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &APIFetcher{client: client}
}

func (f *APIFetcher) Name() string { return "barsapi" }

// apiBar is the expected JSON shape from the bars endpoint.
type apiBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

// FetchBars requests bars for one symbol over the given interval and window.
func (f *APIFetcher) FetchBars(symbol, interval, window string) ([]model.OHLCV, error) {
	var raw []apiBar
	resp, err := f.client.R().
		SetResult(&raw).
		SetQueryParams(map[string]string{
			"symbol":   symbol,
			"interval": interval,
			"range":    window,
		}).
		Get("/api/v1/bars")
	if err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch bars: status %d, body: %s", resp.StatusCode(), resp.String())
	}

	bars := make([]model.OHLCV, len(raw))
	for i, rb := range raw {
		bars[i] = model.OHLCV{
			Time:   time.Unix(rb.Timestamp, 0),
			Open:   rb.Open,
			High:   rb.High,
			Low:    rb.Low,
			Close:  rb.Close,
			Volume: rb.Volume,
		}
	}
	// Ensure chronological order
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}
