package usecase

import (
	"context"
	"fmt"

	"kheritage-client/internal/contextkeys"
	"kheritage-client/internal/core/domain"
	"kheritage-client/internal/core/port"
)

// CollectHeritageRecordUseCase chains a search result item into the
// detail, image and video requests and aggregates the answers.
type CollectHeritageRecordUseCase struct {
	fetcher port.HeritageFetcherPort
}

func NewCollectHeritageRecordUseCase(fetcher port.HeritageFetcherPort) *CollectHeritageRecordUseCase {
	return &CollectHeritageRecordUseCase{fetcher: fetcher}
}

func (uc *CollectHeritageRecordUseCase) Execute(ctx context.Context, preview *domain.SearchResultItem) (*domain.HeritageRecord, error) {
	baseLogger := contextkeys.LoggerFromContext(ctx)
	ucLogger := baseLogger.WithFields(port.Fields{
		"use_case": "CollectHeritageRecord",
		"uid":      preview.UID,
	})

	detail, err := uc.fetcher.Detail(ctx, preview)
	if err != nil {
		ucLogger.Error("Failed to fetch detail", err, nil)
		return nil, fmt.Errorf("failed to fetch detail for %s: %w", preview.UID, err)
	}

	images, err := uc.fetcher.Images(ctx, preview)
	if err != nil {
		ucLogger.Error("Failed to fetch images", err, nil)
		return nil, fmt.Errorf("failed to fetch images for %s: %w", preview.UID, err)
	}

	videos, err := uc.fetcher.Videos(ctx, preview)
	if err != nil {
		ucLogger.Error("Failed to fetch videos", err, nil)
		return nil, fmt.Errorf("failed to fetch videos for %s: %w", preview.UID, err)
	}

	ucLogger.Info("Collected full heritage record", port.Fields{
		"images": images.Len(),
		"videos": videos.Len(),
	})

	return &domain.HeritageRecord{
		Preview: preview,
		Detail:  detail,
		Images:  images,
		Videos:  videos,
	}, nil
}
