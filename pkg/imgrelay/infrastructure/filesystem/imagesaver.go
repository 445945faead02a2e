package filesystem

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"kgeyst.com/imgrelay/pkg/common"
	"kgeyst.com/imgrelay/pkg/imgrelay/domain"
)

type imageSaver struct {
	pathProvider *ImagePathProvider
	logger       common.Logger
}

func NewImageSaver(pathProvider *ImagePathProvider, logger common.Logger) domain.ImageSaver {
	return &imageSaver{
		pathProvider: pathProvider,
		logger:       logger,
	}
}

func (i *imageSaver) SaveImage(encodedImage domain.EncodedImage) (string, error) {
	data, err := encodedImage.Decode()
	if err != nil {
		return "", err
	}
	path := i.pathProvider.GetImagePath(encodedImage.MimeType)
	err = os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrFilesystem, err)
	}
	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrFilesystem, err)
	}
	i.logger.Log(fmt.Sprintf("wrote %d bytes to %s (format: %s)", len(data), path, detectFormat(data)))
	return path, nil
}

// detectFormat is for the log line only: images which can't be decoded are saved anyway.
func detectFormat(data []byte) string {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "unknown"
	}
	return format
}
