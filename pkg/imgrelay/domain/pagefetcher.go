package domain

import "context"

type PageFetcher interface {
	// FetchPage returns the HTML of the page found at `url`.
	FetchPage(ctx context.Context, url string) (string, error)
}
