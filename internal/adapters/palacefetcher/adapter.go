package palacefetcher

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/gocolly/colly/v2/extensions"

	"kheritage-client/internal/contextkeys"
	"kheritage-client/internal/core/port"
)

// PalaceFetcherAdapter owns every interaction with the palace (gung)
// API (www.heritage.go.kr). Structured like the general heritage
// adapter: one parent collector, a clone per request.
type PalaceFetcherAdapter struct {
	collector *colly.Collector
	baseURL   string
}

func NewPalaceFetcherAdapter(baseURL string) (*PalaceFetcherAdapter, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("palace adapter: invalid base URL %q: %w", baseURL, err)
	}

	c := colly.NewCollector(
		colly.AllowedDomains(u.Hostname()),
		colly.AllowURLRevisit(),
		colly.DetectCharset(),
	)

	err = c.Limit(&colly.LimitRule{
		DomainGlob:  u.Hostname(),
		Parallelism: 2,
		RandomDelay: time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("palace adapter: failed to set limit rule: %w", err)
	}

	extensions.RandomUserAgent(c)
	extensions.Referer(c)

	return &PalaceFetcherAdapter{
		collector: c,
		baseURL:   strings.TrimSuffix(baseURL, "/") + "/",
	}, nil
}

// RequestURL returns the full URL a request to the endpoint would use.
func (a *PalaceFetcherAdapter) RequestURL(endpoint string, params url.Values) string {
	if len(params) == 0 {
		return a.baseURL + endpoint
	}
	return a.baseURL + endpoint + "?" + params.Encode()
}

func (a *PalaceFetcherAdapter) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	getLogger := logger.WithFields(port.Fields{"component": "PalaceFetcherAdapter"})

	collector := a.collector.Clone()

	var body []byte
	var responseErr error

	targetURL := a.RequestURL(endpoint, params)

	collector.OnRequest(func(r *colly.Request) {
		getLogger.Debug("Making request to palace API", port.Fields{
			"url":      r.URL.String(),
			"trace_id": contextkeys.TraceIDFromContext(ctx),
		})
	})

	collector.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	collector.OnError(func(r *colly.Response, err error) {
		getLogger.Error("Request to palace API failed", err, port.Fields{
			"url":    r.Request.URL.String(),
			"status": r.StatusCode,
		})
		responseErr = fmt.Errorf("palace adapter: request to %s failed with status %d: %w", r.Request.URL, r.StatusCode, err)
	})

	visitErr := collector.Visit(targetURL)
	collector.Wait()

	// A status failure surfaces through Visit too, but only the OnError
	// callback saw the response; its error carries the status code.
	if responseErr != nil {
		return nil, responseErr
	}
	if visitErr != nil {
		getLogger.Error("Failed to initiate request", visitErr, port.Fields{"url": targetURL})
		return nil, fmt.Errorf("palace adapter: failed to visit %s: %w", targetURL, visitErr)
	}
	return body, nil
}
