package api

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"kgeyst.com/imgrelay/pkg/common"
	"kgeyst.com/imgrelay/pkg/imgrelay/domain"
	"kgeyst.com/imgrelay/pkg/imgrelay/infrastructure/filesystem"
	"kgeyst.com/imgrelay/pkg/imgrelay/infrastructure/inference"
	"kgeyst.com/imgrelay/pkg/imgrelay/infrastructure/logging"
	"kgeyst.com/imgrelay/pkg/imgrelay/infrastructure/validation"
	"kgeyst.com/imgrelay/pkg/imgrelay/infrastructure/web"
)

// See domain/config.go
const (
	ConfigKeyLogPath  = domain.ConfigKeyLogPath
	ConfigKeyLogLevel = domain.ConfigKeyLogLevel
	ConfigKeyDebug    = domain.ConfigKeyDebug
)

type api struct {
	config *common.Config
	logger common.Logger
}

// API is the entrypoint to the pipeline. It shouldn't contain any logic of its own; it glues all the components
// together and provides a public interface for domain.PipelineService.
type API interface {
	// Run fetches the page, extracts the embedded image, saves it, sends it for inference and submits the result
	// for validation. Stops at the first failure, which is returned as a *domain.StageError.
	Run(ctx context.Context) error
}

// NewAPI fails if one of the required endpoints is missing or isn't an absolute http(s) URL.
func NewAPI(config *common.Config, logger common.Logger) (API, error) {
	for _, key := range []string{domain.ConfigKeyScrapingURL, domain.ConfigKeyInferenceURL, domain.ConfigKeyValidationURL} {
		value := config.GetString(key)
		if value == "" {
			return nil, fmt.Errorf("%s is required", key)
		}
		if !common.IsHTTPURL(value) {
			return nil, fmt.Errorf("%s is not a valid http(s) URL: %q", key, value)
		}
	}
	return &api{
		config: config,
		logger: logger,
	}, nil
}

func (a *api) Run(ctx context.Context) error {
	logger := a.logger.WithField("run", uuid.NewString())
	httpClient := common.NewHTTPClient(a.config)
	pipelineService := domain.NewPipelineService(
		web.NewPageFetcher(httpClient),
		web.NewImageExtractor(),
		filesystem.NewImageSaver(filesystem.NewImagePathProvider(a.config), logger),
		logging.NewInferenceClientDecorator(inference.NewClient(httpClient, a.config), logger),
		validation.NewSubmitter(httpClient, a.config, logger),
		a.config,
		logger,
	)
	return pipelineService.Run(ctx)
}
