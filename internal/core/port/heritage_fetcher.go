package port

import (
	"context"

	"kheritage-client/internal/core/domain"
)

// HeritageFetcherPort groups every operation of the general heritage
// endpoint family. One call, one request-response cycle.
type HeritageFetcherPort interface {
	// Search performs a paged list search with the given criteria.
	Search(ctx context.Context, criteria domain.HeritageSearchCriteria) (*domain.SearchResultPage, error)

	// Detail fetches the detail record of a previously fetched item and
	// merges it with the item's preview fields.
	Detail(ctx context.Context, preview *domain.SearchResultItem) (*domain.Detail, error)

	// Images fetches the image set of a previously fetched item.
	Images(ctx context.Context, preview *domain.SearchResultItem) (*domain.ImageSet, error)

	// Videos fetches the video set of a previously fetched item.
	Videos(ctx context.Context, preview *domain.SearchResultItem) (*domain.VideoSet, error)

	// Events searches the event calendar.
	Events(ctx context.Context, criteria domain.EventSearchCriteria) ([]domain.Event, error)
}
