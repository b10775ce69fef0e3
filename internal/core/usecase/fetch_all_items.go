package usecase

import (
	"context"
	"fmt"

	"kheritage-client/internal/contextkeys"
	"kheritage-client/internal/core/domain"
	"kheritage-client/internal/core/port"
)

// FetchAllItemsUseCase walks every page of a heritage search by
// re-committing the same criteria with an advancing page index.
type FetchAllItemsUseCase struct {
	fetcher port.HeritageFetcherPort
}

func NewFetchAllItemsUseCase(fetcher port.HeritageFetcherPort) *FetchAllItemsUseCase {
	return &FetchAllItemsUseCase{fetcher: fetcher}
}

// Execute collects the items of every result page in order. The
// criteria's own PageIndex is the starting page (first page when unset).
func (uc *FetchAllItemsUseCase) Execute(ctx context.Context, criteria domain.HeritageSearchCriteria) ([]domain.SearchResultItem, error) {
	baseLogger := contextkeys.LoggerFromContext(ctx)
	ucLogger := baseLogger.WithFields(port.Fields{"use_case": "FetchAllItems"})

	if criteria.PageIndex == 0 {
		criteria.PageIndex = 1
	}

	var items []domain.SearchResultItem
	for {
		page, err := uc.fetcher.Search(ctx, criteria)
		if err != nil {
			ucLogger.Error("Failed to fetch result page", err, port.Fields{"page_index": criteria.PageIndex})
			return nil, fmt.Errorf("failed to fetch result page %d: %w", criteria.PageIndex, err)
		}

		items = append(items, page.Items...)

		ucLogger.Debug("Fetched result page", port.Fields{
			"page_index": criteria.PageIndex,
			"collected":  len(items),
			"hits":       page.Hits,
		})

		if page.Len() == 0 || len(items) >= page.Hits {
			break
		}
		criteria.PageIndex++
	}

	ucLogger.Info("Finished collecting search results", port.Fields{"items": len(items)})
	return items, nil
}
