package domain

import "context"

type mockPageFetcher struct {
	fetchFunc func(url string) (string, error)
	calls     int
}

func (m *mockPageFetcher) FetchPage(ctx context.Context, url string) (string, error) {
	m.calls++
	return m.fetchFunc(url)
}

type mockImageExtractor struct {
	extractFunc func(html string) (EncodedImage, error)
	calls       int
}

func (m *mockImageExtractor) ExtractImage(html string) (EncodedImage, error) {
	m.calls++
	return m.extractFunc(html)
}

type mockImageSaver struct {
	saved []EncodedImage
	err   error
}

func (m *mockImageSaver) SaveImage(image EncodedImage) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.saved = append(m.saved, image)
	return "image.png", nil
}

type mockInferenceClient struct {
	inferFunc func(payload InferencePayload) (InferenceResponse, error)
	payloads  []InferencePayload
}

func (m *mockInferenceClient) Infer(ctx context.Context, payload InferencePayload) (InferenceResponse, error) {
	m.payloads = append(m.payloads, payload)
	return m.inferFunc(payload)
}

type mockSubmitter struct {
	err       error
	submitted []InferenceResponse
}

func (m *mockSubmitter) Submit(ctx context.Context, response InferenceResponse) error {
	m.submitted = append(m.submitted, response)
	return m.err
}
