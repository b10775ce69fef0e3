package port

import (
	"context"

	"kheritage-client/internal/core/domain"
)

// PalaceFetcherPort groups the operations of the palace (gung) endpoint
// family.
type PalaceFetcherPort interface {
	// Search lists the structures of one palace complex.
	Search(ctx context.Context, palaceCode string) ([]domain.PalaceSearchResultItem, error)

	// Detail fetches the detail record of a previously fetched palace
	// item, merging it with the item's identifiers.
	Detail(ctx context.Context, preview *domain.PalaceSearchResultItem) (*domain.PalaceDetail, error)
}
