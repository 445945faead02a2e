package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kgeyst.com/imgrelay/pkg/common"
	"kgeyst.com/imgrelay/pkg/imgrelay/domain"
)

type inferenceClientFunc func(payload domain.InferencePayload) (domain.InferenceResponse, error)

func (f inferenceClientFunc) Infer(ctx context.Context, payload domain.InferencePayload) (domain.InferenceResponse, error) {
	return f(payload)
}

func TestInferenceClientDecorator_Infer(t *testing.T) {
	payload := domain.NewInferencePayload("test-model", "prompt", domain.EncodedImage{MimeType: "image/png", Payload: "AAAA"})

	t.Run("passes the response through and logs it", func(t *testing.T) {
		var output bytes.Buffer
		decorator := NewInferenceClientDecorator(inferenceClientFunc(func(p domain.InferencePayload) (domain.InferenceResponse, error) {
			return domain.InferenceResponse(`{"caption":"a cat"}`), nil
		}), common.NewLogger(&output, "debug"))

		response, err := decorator.Infer(context.Background(), payload)
		require.NoError(t, err)
		assert.Equal(t, `{"caption":"a cat"}`, string(response))
		assert.Contains(t, output.String(), "test-model")
		assert.Contains(t, output.String(), "a cat")
	})

	t.Run("passes errors through", func(t *testing.T) {
		expectedErr := errors.New("boom")
		decorator := NewInferenceClientDecorator(inferenceClientFunc(func(p domain.InferencePayload) (domain.InferenceResponse, error) {
			return nil, expectedErr
		}), common.NewNopLogger())

		_, err := decorator.Infer(context.Background(), payload)
		assert.ErrorIs(t, err, expectedErr)
	})
}
