// SPDX-License-Identifier: MIT

package tvmaze

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bingefriend/tvmaze-client-go/internal/log"
)

// ExternalKind names a foreign show database accepted by /lookup/shows.
type ExternalKind string

const (
	ExternalIMDB    ExternalKind = "imdb"
	ExternalTheTVDB ExternalKind = "thetvdb"
	ExternalTVRage  ExternalKind = "tvrage"
)

// SearchShows performs a fuzzy search over all shows (/search/shows?q=).
func (c *Client) SearchShows(ctx context.Context, query string) ([]SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("search query must not be empty")
	}

	logger := log.WithContext(ctx, c.logger)
	logger.Info().Str(log.FieldQuery, query).Msg("searching shows")

	params := url.Values{}
	params.Set("q", query)

	var results []SearchResult
	if err := c.getJSON(ctx, "search shows", "/search/shows", params, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// SingleSearchShow returns the single best match for the query
// (/singlesearch/shows?q=). The upstream 404s when nothing matches.
func (c *Client) SingleSearchShow(ctx context.Context, query string) (*Show, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("search query must not be empty")
	}

	params := url.Values{}
	params.Set("q", query)

	var show Show
	if err := c.getJSON(ctx, "single search", "/singlesearch/shows", params, &show); err != nil {
		return nil, err
	}
	return &show, nil
}

// LookupShow resolves a show through an external database ID
// (/lookup/shows?imdb=|thetvdb=|tvrage=).
func (c *Client) LookupShow(ctx context.Context, kind ExternalKind, id string) (*Show, error) {
	switch kind {
	case ExternalIMDB, ExternalTheTVDB, ExternalTVRage:
	default:
		return nil, fmt.Errorf("unsupported external kind %q", kind)
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("external ID must not be empty")
	}

	params := url.Values{}
	params.Set(string(kind), id)

	var show Show
	if err := c.getJSON(ctx, "lookup show", "/lookup/shows", params, &show); err != nil {
		return nil, err
	}
	return &show, nil
}
