package filesystem

import (
	"mime"
	"path/filepath"
	"strings"

	"kgeyst.com/imgrelay/pkg/common"
	"kgeyst.com/imgrelay/pkg/imgrelay/domain"
)

type ImagePathProvider struct {
	imageDirectoryPath string
	imagePath          string
}

func NewImagePathProvider(config *common.Config) *ImagePathProvider {
	return &ImagePathProvider{
		imageDirectoryPath: config.GetStringOrDefault(domain.ConfigKeyImageDirectory, "."),
		imagePath:          config.GetStringOrDefault(domain.ConfigKeyImagePath, domain.DefaultImagePath),
	}
}

// GetImagePath returns the configured image path; relative paths are resolved against the image directory.
// If the path has no extension, one matching `mimeType` is appended (if the media type is known).
func (i *ImagePathProvider) GetImagePath(mimeType string) string {
	path := i.imagePath
	if filepath.Ext(path) == "" {
		path += extensionByType(mimeType)
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(i.imageDirectoryPath, path)
}

// Prefers the extension named after the subtype ("image/jpeg" -> ".jpeg") over whatever sorts first.
func extensionByType(mimeType string) string {
	extensions, err := mime.ExtensionsByType(mimeType)
	if err != nil || len(extensions) == 0 {
		return ""
	}
	_, subtype, _ := strings.Cut(mimeType, "/")
	for _, extension := range extensions {
		if extension == "."+subtype {
			return extension
		}
	}
	return extensions[0]
}
