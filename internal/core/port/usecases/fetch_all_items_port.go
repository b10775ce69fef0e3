package usecases

import (
	"context"

	"kheritage-client/internal/core/domain"
)

type FetchAllItemsPort interface {
	Execute(ctx context.Context, criteria domain.HeritageSearchCriteria) ([]domain.SearchResultItem, error)
}
