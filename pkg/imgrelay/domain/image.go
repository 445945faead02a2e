package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	dataURIScheme = "data:"
	base64Marker  = ";base64"
)

// EncodedImage an image embedded in a page, as found in its data URI.
type EncodedImage struct {
	MimeType string
	Payload  string
}

// ParseDataURI splits a URI of the form "data:<mime>;base64,<payload>" into its parts. Only image media types
// are accepted.
func ParseDataURI(uri string) (EncodedImage, error) {
	uri = strings.TrimSpace(uri)
	if len(uri) < len(dataURIScheme) || !strings.EqualFold(uri[:len(dataURIScheme)], dataURIScheme) {
		return EncodedImage{}, fmt.Errorf("%w: missing %q scheme", ErrMalformedDataURI, dataURIScheme)
	}
	header, payload, found := strings.Cut(uri[len(dataURIScheme):], ",")
	if !found {
		return EncodedImage{}, fmt.Errorf("%w: no comma after the header", ErrMalformedDataURI)
	}
	if len(header) < len(base64Marker) || !strings.EqualFold(header[len(header)-len(base64Marker):], base64Marker) {
		return EncodedImage{}, fmt.Errorf("%w: not base64-encoded", ErrMalformedDataURI)
	}
	mimeType, _, _ := strings.Cut(header[:len(header)-len(base64Marker)], ";")
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if !isImageMimeType(mimeType) {
		return EncodedImage{}, fmt.Errorf("%w: unsupported media type %q", ErrMalformedDataURI, mimeType)
	}
	payload = strings.Join(strings.Fields(payload), "") // attributes may be wrapped over several lines
	if payload == "" {
		return EncodedImage{}, ErrEmptyPayload
	}
	return EncodedImage{
		MimeType: mimeType,
		Payload:  payload,
	}, nil
}

// DataURI renders the image back as "data:<mime>;base64,<payload>".
func (e EncodedImage) DataURI() string {
	return dataURIScheme + e.MimeType + base64Marker + "," + e.Payload
}

// Decode returns the raw image bytes. Unpadded payloads are accepted as well.
func (e EncodedImage) Decode() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(e.Payload)
	if err == nil {
		return data, nil
	}
	data, rawErr := base64.RawStdEncoding.DecodeString(strings.TrimRight(e.Payload, "="))
	if rawErr != nil {
		return nil, fmt.Errorf("%w: invalid base64 payload: %w", ErrParse, err)
	}
	return data, nil
}

func isImageMimeType(mimeType string) bool {
	subtype, ok := strings.CutPrefix(mimeType, "image/")
	if !ok || subtype == "" {
		return false
	}
	for _, r := range subtype {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.' || r == '_') {
			return false
		}
	}
	return true
}
