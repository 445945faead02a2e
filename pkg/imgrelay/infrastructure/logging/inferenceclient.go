package logging

import (
	"context"
	"fmt"
	"time"

	"kgeyst.com/imgrelay/pkg/common"
	"kgeyst.com/imgrelay/pkg/imgrelay/domain"
)

type inferenceClientDecorator struct {
	wrappedInferenceClient domain.InferenceClient
	logger                 common.Logger
}

func NewInferenceClientDecorator(wrappedInferenceClient domain.InferenceClient, logger common.Logger) domain.InferenceClient {
	return &inferenceClientDecorator{
		wrappedInferenceClient: wrappedInferenceClient,
		logger:                 logger,
	}
}

func (i *inferenceClientDecorator) Infer(ctx context.Context, payload domain.InferencePayload) (domain.InferenceResponse, error) {
	i.logger.LogDebug(fmt.Sprintf("inference request (model '%s', %d message(s))", payload.Model, len(payload.Messages)))
	t := time.Now()
	response, err := i.wrappedInferenceClient.Infer(ctx, payload)
	if err != nil {
		i.logger.LogDebug(fmt.Sprintf("inference failed after %d ms", time.Since(t).Milliseconds()))
		return nil, err
	}
	i.logger.LogDebug(fmt.Sprintf("raw inference response:\n%s\n (took %d ms)", response, time.Since(t).Milliseconds()))
	return response, nil
}
