package inference

import (
	"context"
	"encoding/json"
	"fmt"

	"kgeyst.com/imgrelay/pkg/common"
	"kgeyst.com/imgrelay/pkg/imgrelay/domain"
)

type client struct {
	httpClient *common.HTTPClient
	url        string
	token      string
}

// NewClient creates a client for an OpenAI-like chat completions endpoint which accepts images as data URIs.
func NewClient(httpClient *common.HTTPClient, config *common.Config) domain.InferenceClient {
	return &client{
		httpClient: httpClient,
		url:        config.GetString(domain.ConfigKeyInferenceURL),
		token:      config.GetString(domain.ConfigKeyInferenceToken),
	}
}

func (c *client) Infer(ctx context.Context, payload domain.InferencePayload) (domain.InferenceResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode the payload: %w", domain.ErrParse, err)
	}
	output, err := c.httpClient.PostJSON(ctx, c.url, c.token, body)
	if err != nil {
		return nil, fmt.Errorf("%w: inference request failed: %w", domain.ErrNetwork, err)
	}
	if !json.Valid(output) {
		return nil, fmt.Errorf("%w: inference response is not JSON", domain.ErrParse)
	}
	return domain.InferenceResponse(output), nil
}
