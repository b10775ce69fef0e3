package palacefetcher

import (
	"context"
	"fmt"
	"net/url"

	"kheritage-client/internal/constants"
	"kheritage-client/internal/contextkeys"
	"kheritage-client/internal/core/domain"
	"kheritage-client/internal/core/port"
)

// Search lists every structure of the palace complex identified by the
// given gung_number code.
func (a *PalaceFetcherAdapter) Search(ctx context.Context, palaceCode string) ([]domain.PalaceSearchResultItem, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	searchLogger := logger.WithFields(port.Fields{
		"component":   "PalaceFetcherAdapter(Search)",
		"palace_code": palaceCode,
	})

	q := url.Values{}
	q.Set(constants.ParamPalaceNumber, palaceCode)

	body, err := a.get(ctx, constants.EndpointPalaceList, q)
	if err != nil {
		return nil, err
	}

	items, err := toPalaceItems(body)
	if err != nil {
		searchLogger.Error("Failed to map palace list response", err, nil)
		return nil, fmt.Errorf("palace adapter: list response: %w", err)
	}

	searchLogger.Info("Finished palace search", port.Fields{"items": len(items)})
	return items, nil
}

// Detail fetches the detail record of a palace structure, copying the
// preview identifiers into the query and the resulting record.
func (a *PalaceFetcherAdapter) Detail(ctx context.Context, preview *domain.PalaceSearchResultItem) (*domain.PalaceDetail, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	detailLogger := logger.WithFields(port.Fields{
		"component":     "PalaceFetcherAdapter(Detail)",
		"serial_number": preview.SerialNumber,
	})

	q := url.Values{}
	q.Set(constants.ParamSerialNumber, preview.SerialNumber)
	q.Set(constants.ParamPalaceNumber, preview.PalaceCode)
	q.Set(constants.ParamDetailCode, preview.DetailCode)

	body, err := a.get(ctx, constants.EndpointPalaceDetail, q)
	if err != nil {
		return nil, err
	}

	detail, err := toPalaceDetail(body, preview)
	if err != nil {
		detailLogger.Error("Failed to map palace detail response", err, nil)
		return nil, fmt.Errorf("palace adapter: detail response for %s: %w", preview.SerialNumber, err)
	}

	detailLogger.Debug("Fetched palace detail", nil)
	return detail, nil
}
