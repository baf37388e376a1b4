package fetch

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-utils/internal/config"
	"github.com/MKhiriev/go-utils/internal/document"
	"github.com/MKhiriev/go-utils/internal/logger"
)

type httpFetcher struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPFetcher constructs an HTTP implementation of [Fetcher]. The
// underlying client carries the configured request timeout and retries
// transient failures twice before giving up.
func NewHTTPFetcher(fetchCfg config.Fetch, logger *logger.Logger) Fetcher {
	client := resty.New().
		SetTimeout(fetchCfg.Timeout).
		SetRetryCount(2)

	return &httpFetcher{client: client, logger: logger}
}

// Fetch implements [Fetcher]. It GETs rawURL and decodes the body by the
// URL path extension (JSON unless the path ends in .toml).
func (h *httpFetcher) Fetch(ctx context.Context, rawURL string) (map[string]any, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid document url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid document url %q: must include host and scheme", rawURL)
	}

	h.logger.Debug().Str("url", rawURL).Msg("fetching remote document")

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	doc, err := document.Decode(resp.Body(), document.DetectFormat(u.Path))
	if err != nil {
		return nil, fmt.Errorf("fetch decode: %w", err)
	}

	h.logger.Debug().
		Str("url", rawURL).
		Int("keys", len(doc)).
		Msg("remote document fetched")

	return doc, nil
}
