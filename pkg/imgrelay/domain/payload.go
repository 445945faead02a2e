package domain

import "encoding/json"

type ContentType string

const (
	ContentTypeText     = ContentType("text")
	ContentTypeImageURL = ContentType("image_url")
)

const RoleUser = "user"

// InferencePayload the request body of an OpenAI-like chat completions endpoint.
type InferencePayload struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type Message struct {
	Role    string    `json:"role"`
	Content []Content `json:"content"`
}

// Content is either a text block or an image block; use NewTextContent or NewImageContent to construct it.
type Content struct {
	Type     ContentType `json:"type"`
	Text     string      `json:"text,omitempty"`
	ImageURL *ImageURL   `json:"image_url,omitempty"`
}

type ImageURL struct {
	URL string `json:"url"`
}

// InferenceResponse the raw JSON returned by the inference endpoint. It's never interpreted, only forwarded.
type InferenceResponse json.RawMessage

func NewTextContent(text string) Content {
	return Content{
		Type: ContentTypeText,
		Text: text,
	}
}

func NewImageContent(url string) Content {
	return Content{
		Type:     ContentTypeImageURL,
		ImageURL: &ImageURL{URL: url},
	}
}

// NewInferencePayload builds a payload with a single user message: the prompt followed by the image as a data URI.
func NewInferencePayload(model, prompt string, image EncodedImage) InferencePayload {
	return InferencePayload{
		Model: model,
		Messages: []Message{
			{
				Role: RoleUser,
				Content: []Content{
					NewTextContent(prompt),
					NewImageContent(image.DataURI()),
				},
			},
		},
	}
}
