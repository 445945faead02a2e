package web

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"kgeyst.com/imgrelay/pkg/imgrelay/domain"
)

type imageExtractor struct{}

func NewImageExtractor() domain.ImageExtractor {
	return &imageExtractor{}
}

func (i *imageExtractor) ExtractImage(html string) (domain.EncodedImage, error) {
	document, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return domain.EncodedImage{}, fmt.Errorf("%w: failed to parse the page: %w", domain.ErrParse, err)
	}
	var dataURI string
	document.Find("img[src]").EachWithBreak(func(_ int, selection *goquery.Selection) bool {
		src := strings.TrimSpace(selection.AttrOr("src", ""))
		if len(src) >= len("data:") && strings.EqualFold(src[:len("data:")], "data:") {
			dataURI = src
			return false
		}
		return true
	})
	if dataURI == "" {
		return domain.EncodedImage{}, domain.ErrImageNotFound
	}
	return domain.ParseDataURI(dataURI)
}
