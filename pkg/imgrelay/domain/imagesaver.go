package domain

type ImageSaver interface {
	// SaveImage decodes the image and writes it to disk, overwriting the previous file, if any. Returns the path
	// of the written file.
	SaveImage(image EncodedImage) (string, error)
}
