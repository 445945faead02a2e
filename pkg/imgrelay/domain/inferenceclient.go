package domain

import "context"

// InferenceClient a remote vision model.
type InferenceClient interface {
	Infer(ctx context.Context, payload InferencePayload) (InferenceResponse, error)
}
