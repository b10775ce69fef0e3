package chafetcher

import (
	"context"
	"fmt"

	"kheritage-client/internal/constants"
	"kheritage-client/internal/contextkeys"
	"kheritage-client/internal/core/domain"
	"kheritage-client/internal/core/port"
)

// Detail fetches and maps the detail record of a previously fetched
// item. The preview's identifying fields travel into the query, its
// descriptive fields into the resulting record.
func (a *ChaFetcherAdapter) Detail(ctx context.Context, preview *domain.SearchResultItem) (*domain.Detail, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	detailLogger := logger.WithFields(port.Fields{
		"component": "ChaFetcherAdapter(Detail)",
		"uid":       preview.UID,
	})

	body, err := a.get(ctx, constants.EndpointDetail, buildInfoQuery(preview))
	if err != nil {
		return nil, err
	}

	detail, err := toDetail(body, preview)
	if err != nil {
		detailLogger.Error("Failed to map detail response", err, nil)
		return nil, fmt.Errorf("cha adapter: detail response for %s: %w", preview.UID, err)
	}

	detailLogger.Debug("Fetched heritage detail", nil)
	return detail, nil
}

// Images fetches the image set of a previously fetched item.
func (a *ChaFetcherAdapter) Images(ctx context.Context, preview *domain.SearchResultItem) (*domain.ImageSet, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	imagesLogger := logger.WithFields(port.Fields{
		"component": "ChaFetcherAdapter(Images)",
		"uid":       preview.UID,
	})

	body, err := a.get(ctx, constants.EndpointImage, buildInfoQuery(preview))
	if err != nil {
		return nil, err
	}

	images, err := toImageSet(body)
	if err != nil {
		imagesLogger.Error("Failed to map image response", err, nil)
		return nil, fmt.Errorf("cha adapter: image response for %s: %w", preview.UID, err)
	}

	imagesLogger.Debug("Fetched heritage images", port.Fields{"images": images.Len()})
	return images, nil
}

// Videos fetches the video set of a previously fetched item.
func (a *ChaFetcherAdapter) Videos(ctx context.Context, preview *domain.SearchResultItem) (*domain.VideoSet, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	videosLogger := logger.WithFields(port.Fields{
		"component": "ChaFetcherAdapter(Videos)",
		"uid":       preview.UID,
	})

	body, err := a.get(ctx, constants.EndpointVideo, buildInfoQuery(preview))
	if err != nil {
		return nil, err
	}

	videos, err := toVideoSet(body)
	if err != nil {
		videosLogger.Error("Failed to map video response", err, nil)
		return nil, fmt.Errorf("cha adapter: video response for %s: %w", preview.UID, err)
	}

	videosLogger.Debug("Fetched heritage videos", port.Fields{"videos": videos.Len()})
	return videos, nil
}
