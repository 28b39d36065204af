// SPDX-License-Identifier: MIT

package tvmaze

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/bingefriend/tvmaze-client-go/internal/log"
)

// ShowIndex retrieves one page of the paged show index (/shows?page=N).
// The upstream answers 404 for pages past the end of the index; callers
// iterating the index should stop on ErrNotFound.
func (c *Client) ShowIndex(ctx context.Context, page int) ([]Show, error) {
	if page < 0 {
		return nil, fmt.Errorf("page must be >= 0 (got %d)", page)
	}

	logger := log.WithContext(ctx, c.logger)
	logger.Info().Int(log.FieldPage, page).Msg("fetching show index page")

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	var shows []Show
	if err := c.getJSON(ctx, "show index", "/shows", params, &shows); err != nil {
		return nil, err
	}
	return shows, nil
}

// Show retrieves the main information for a single show (/shows/:id).
func (c *Client) Show(ctx context.Context, showID int) (*Show, error) {
	logger := log.WithContext(ctx, c.logger)
	logger.Info().Int(log.FieldShowID, showID).Msg("fetching show details")

	var show Show
	if err := c.getJSON(ctx, "show details", fmt.Sprintf("/shows/%d", showID), nil, &show); err != nil {
		return nil, err
	}
	return &show, nil
}

// Seasons retrieves all seasons of a show (/shows/:id/seasons).
func (c *Client) Seasons(ctx context.Context, showID int) ([]Season, error) {
	logger := log.WithContext(ctx, c.logger)
	logger.Info().Int(log.FieldShowID, showID).Msg("fetching seasons")

	var seasons []Season
	if err := c.getJSON(ctx, "seasons", fmt.Sprintf("/shows/%d/seasons", showID), nil, &seasons); err != nil {
		return nil, err
	}
	return seasons, nil
}

// Episodes retrieves the complete episode list of a show (/shows/:id/episodes).
func (c *Client) Episodes(ctx context.Context, showID int) ([]Episode, error) {
	logger := log.WithContext(ctx, c.logger)
	logger.Info().Int(log.FieldShowID, showID).Msg("fetching episodes")

	var episodes []Episode
	if err := c.getJSON(ctx, "episodes", fmt.Sprintf("/shows/%d/episodes", showID), nil, &episodes); err != nil {
		return nil, err
	}
	return episodes, nil
}

// EpisodeByNumber retrieves one episode addressed by season and episode number.
func (c *Client) EpisodeByNumber(ctx context.Context, showID, season, number int) (*Episode, error) {
	params := url.Values{}
	params.Set("season", strconv.Itoa(season))
	params.Set("number", strconv.Itoa(number))

	var episode Episode
	if err := c.getJSON(ctx, "episode by number", fmt.Sprintf("/shows/%d/episodebynumber", showID), params, &episode); err != nil {
		return nil, err
	}
	return &episode, nil
}

// Cast retrieves the cast list of a show (/shows/:id/cast).
func (c *Client) Cast(ctx context.Context, showID int) ([]CastEntry, error) {
	logger := log.WithContext(ctx, c.logger)
	logger.Info().Int(log.FieldShowID, showID).Msg("fetching cast")

	var cast []CastEntry
	if err := c.getJSON(ctx, "cast", fmt.Sprintf("/shows/%d/cast", showID), nil, &cast); err != nil {
		return nil, err
	}
	return cast, nil
}

// EachShow walks the full show index page by page, invoking fn for every
// show until the index is exhausted or fn returns an error. A non-nil error
// from fn stops the walk and is returned unchanged.
func (c *Client) EachShow(ctx context.Context, fn func(Show) error) error {
	for page := 0; ; page++ {
		shows, err := c.ShowIndex(ctx, page)
		if err != nil {
			// The index signals its end with a 404 on the first page past it.
			if errors.Is(err, ErrNotFound) {
				return nil
			}
			return err
		}
		for _, show := range shows {
			if err := fn(show); err != nil {
				return err
			}
		}
	}
}
