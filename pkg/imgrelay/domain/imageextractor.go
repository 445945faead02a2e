package domain

type ImageExtractor interface {
	// ExtractImage finds the first <img> whose source is a data URI. Returns ErrImageNotFound if there's none.
	ExtractImage(html string) (EncodedImage, error)
}
