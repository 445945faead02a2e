package domain

import "context"

type Submitter interface {
	// Submit sends the inference response to the validation endpoint unmodified.
	Submit(ctx context.Context, response InferenceResponse) error
}
