package chafetcher

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

// ChaFetcherAdapter owns every interaction with the general heritage
// API (www.cha.go.kr). The parent collector carries the shared limit
// rules; each request runs on a clone with its own handlers.
type ChaFetcherAdapter struct {
	collector *colly.Collector
	baseURL   string
}

// NewChaFetcherAdapter builds the adapter for the given API root. The
// collector lives as long as the adapter and is the only session
// resource the adapter holds.
func NewChaFetcherAdapter(baseURL string) (*ChaFetcherAdapter, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("cha adapter: invalid base URL %q: %w", baseURL, err)
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
		return nil, fmt.Errorf("cha adapter: failed to set limit rule: %w", err)
	}

	extensions.RandomUserAgent(c)
	extensions.Referer(c)

	return &ChaFetcherAdapter{
		collector: c,
		baseURL:   strings.TrimSuffix(baseURL, "/") + "/",
	}, nil
}

// RequestURL returns the full URL a request to the endpoint would use,
// query string included. Useful for debugging a search before (or
// instead of) committing it.
func (a *ChaFetcherAdapter) RequestURL(endpoint string, params url.Values) string {
	if len(params) == 0 {
		return a.baseURL + endpoint
	}
	return a.baseURL + endpoint + "?" + params.Encode()
}

// get performs one GET request-response cycle on a clone of the parent
// collector and returns the raw response body. Transport failures (a
// non-2xx status included) surface unmodified, never retried.
func (a *ChaFetcherAdapter) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	getLogger := logger.WithFields(port.Fields{"component": "ChaFetcherAdapter"})

	collector := a.collector.Clone()

	var body []byte
	var responseErr error

	targetURL := a.RequestURL(endpoint, params)

	collector.OnRequest(func(r *colly.Request) {
		getLogger.Debug("Making request to heritage API", port.Fields{
			"url":      r.URL.String(),
			"trace_id": contextkeys.TraceIDFromContext(ctx),
		})
	})

	collector.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	collector.OnError(func(r *colly.Response, err error) {
		getLogger.Error("Request to heritage API failed", err, port.Fields{
			"url":    r.Request.URL.String(),
			"status": r.StatusCode,
		})
		responseErr = fmt.Errorf("cha adapter: request to %s failed with status %d: %w", r.Request.URL, r.StatusCode, err)
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
		return nil, fmt.Errorf("cha adapter: failed to visit %s: %w", targetURL, visitErr)
	}
	return body, nil
}
