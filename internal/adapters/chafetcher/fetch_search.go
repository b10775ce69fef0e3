package chafetcher

import (
	"context"
	"fmt"

	"kheritage-client/internal/constants"
	"kheritage-client/internal/contextkeys"
	"kheritage-client/internal/core/domain"
	"kheritage-client/internal/core/port"
)

// Search commits the list search assembled from the criteria. The same
// criteria value can be committed again after mutation, e.g. bumping
// PageIndex to walk the result pages.
func (a *ChaFetcherAdapter) Search(ctx context.Context, criteria domain.HeritageSearchCriteria) (*domain.SearchResultPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	searchLogger := logger.WithFields(port.Fields{"component": "ChaFetcherAdapter(Search)"})

	body, err := a.get(ctx, constants.EndpointSearch, buildSearchQuery(criteria))
	if err != nil {
		return nil, err
	}

	page, err := toSearchResultPage(body)
	if err != nil {
		searchLogger.Error("Failed to map search response", err, nil)
		return nil, fmt.Errorf("cha adapter: search response: %w", err)
	}

	searchLogger.Info("Finished heritage search", port.Fields{
		"hits":       page.Hits,
		"page_index": page.PageIndex,
		"items":      page.Len(),
	})
	return page, nil
}

// Events commits the event calendar search.
func (a *ChaFetcherAdapter) Events(ctx context.Context, criteria domain.EventSearchCriteria) ([]domain.Event, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	eventsLogger := logger.WithFields(port.Fields{"component": "ChaFetcherAdapter(Events)"})

	body, err := a.get(ctx, constants.EndpointEvent, buildEventQuery(criteria))
	if err != nil {
		return nil, err
	}

	events, err := toEvents(body)
	if err != nil {
		eventsLogger.Error("Failed to map event response", err, nil)
		return nil, fmt.Errorf("cha adapter: event response: %w", err)
	}

	eventsLogger.Info("Finished event search", port.Fields{
		"year":   criteria.Year,
		"month":  criteria.Month,
		"events": len(events),
	})
	return events, nil
}
