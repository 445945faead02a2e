package validation

import (
	"context"
	"fmt"

	"kgeyst.com/imgrelay/pkg/common"
	"kgeyst.com/imgrelay/pkg/imgrelay/domain"
)

type submitter struct {
	httpClient *common.HTTPClient
	url        string
	token      string
	logger     common.Logger
}

func NewSubmitter(httpClient *common.HTTPClient, config *common.Config, logger common.Logger) domain.Submitter {
	inferenceToken := config.GetString(domain.ConfigKeyInferenceToken)
	return &submitter{
		httpClient: httpClient,
		url:        config.GetString(domain.ConfigKeyValidationURL),
		token:      config.GetStringOrDefault(domain.ConfigKeyValidationToken, inferenceToken),
		logger:     logger,
	}
}

// Submit only checks the status of the validation endpoint; its body is logged and otherwise ignored.
func (s *submitter) Submit(ctx context.Context, response domain.InferenceResponse) error {
	output, err := s.httpClient.PostJSON(ctx, s.url, s.token, response)
	if err != nil {
		return fmt.Errorf("%w: submission failed: %w", domain.ErrNetwork, err)
	}
	s.logger.LogDebug(fmt.Sprintf("validation endpoint replied: %s", output))
	return nil
}
