package web

import (
	"context"
	"fmt"

	"kgeyst.com/imgrelay/pkg/common"
	"kgeyst.com/imgrelay/pkg/imgrelay/domain"
)

type pageFetcher struct {
	httpClient *common.HTTPClient
}

func NewPageFetcher(httpClient *common.HTTPClient) domain.PageFetcher {
	return &pageFetcher{
		httpClient: httpClient,
	}
}

func (p *pageFetcher) FetchPage(ctx context.Context, url string) (string, error) {
	page, err := p.httpClient.Get(ctx, url)
	if err != nil {
		return "", fmt.Errorf("%w: failed to fetch %s: %w", domain.ErrNetwork, url, err)
	}
	return string(page), nil
}
