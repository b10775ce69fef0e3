package internal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/google/uuid"

	"kheritage-client/internal/adapters/chafetcher"
	logger_adapter "kheritage-client/internal/adapters/logger"
	"kheritage-client/internal/adapters/palacefetcher"
	"kheritage-client/internal/configs"
	"kheritage-client/internal/constants"
	"kheritage-client/internal/contextkeys"
	"kheritage-client/internal/core/domain"
	"kheritage-client/internal/core/port"
	"kheritage-client/internal/core/usecase"
	fluentlogger "kheritage-client/pkg/fluent_logger"
)

// App wires the adapters and use cases together. This is the
// composition root: everything is created and connected here.
type App struct {
	config        *configs.AppConfig
	fluentClient  *fluent.Fluent
	logger        port.LoggerPort
	heritage      *chafetcher.ChaFetcherAdapter
	palace        *palacefetcher.PalaceFetcherAdapter
	collectRecord *usecase.CollectHeritageRecordUseCase
	fetchAll      *usecase.FetchAllItemsUseCase
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": appConfig.AppName})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	heritageAdapter, err := chafetcher.NewChaFetcherAdapter(appConfig.API.BaseURL)
	if err != nil {
		appLogger.Error("Failed to create heritage fetcher", err, nil)
		return nil, err
	}

	palaceAdapter, err := palacefetcher.NewPalaceFetcherAdapter(appConfig.API.PalaceBaseURL)
	if err != nil {
		appLogger.Error("Failed to create palace fetcher", err, nil)
		return nil, err
	}

	return &App{
		config:        appConfig,
		fluentClient:  fluentClient,
		logger:        baseLogger,
		heritage:      heritageAdapter,
		palace:        palaceAdapter,
		collectRecord: usecase.NewCollectHeritageRecordUseCase(heritageAdapter),
		fetchAll:      usecase.NewFetchAllItemsUseCase(heritageAdapter),
	}, nil
}

// Run walks through the API surface once: a filtered search, the full
// record of the first hit, this month's events and one palace detail.
func (a *App) Run() error {
	defer func() {
		if a.fluentClient != nil {
			a.fluentClient.Close()
		}
	}()

	ctx := contextkeys.ContextWithLogger(context.Background(), a.logger)
	ctx = contextkeys.ContextWithTraceID(ctx, uuid.NewString())

	canceled := false
	criteria := domain.HeritageSearchCriteria{
		HeritageType: constants.HeritageHistoricSite,
		Province:     constants.ProvinceSeoul,
		District:     mustCode(constants.SeoulDistricts, "jongno"),
		Canceled:     &canceled,
		PageSize:     15,
	}

	page, err := a.heritage.Search(ctx, criteria)
	if err != nil {
		return err
	}
	fmt.Println(page)

	if page.Len() > 0 {
		record, err := a.collectRecord.Execute(ctx, &page.Items[0])
		if err != nil {
			return err
		}
		fmt.Println(record.Detail)
		fmt.Println(record.Images)
		fmt.Println(record.Videos)
	}

	now := time.Now()
	events, err := a.heritage.Events(ctx, domain.EventSearchCriteria{
		Year:  now.Year(),
		Month: int(now.Month()),
	})
	if err != nil {
		return err
	}
	for i := range events {
		fmt.Println(&events[i])
	}

	palaceItems, err := a.palace.Search(ctx, constants.PalaceGyeongbokgung)
	if err != nil {
		return err
	}
	if len(palaceItems) > 0 {
		detail, err := a.palace.Detail(ctx, &palaceItems[0])
		if err != nil {
			return err
		}
		fmt.Println(detail)
	}

	return nil
}

func mustCode(set *constants.CodeSet, name string) string {
	code, err := set.Code(name)
	if err != nil {
		panic(err)
	}
	return code
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
