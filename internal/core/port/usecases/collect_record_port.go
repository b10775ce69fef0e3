package usecases

import (
	"context"

	"kheritage-client/internal/core/domain"
)

type CollectHeritageRecordPort interface {
	Execute(ctx context.Context, preview *domain.SearchResultItem) (*domain.HeritageRecord, error)
}
