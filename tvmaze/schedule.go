// SPDX-License-Identifier: MIT

package tvmaze

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// Schedule retrieves episodes airing in the given country on the given date
// (/schedule?country=&date=). The country is an ISO 3166-1 code; the zero
// date means "today" upstream.
func (c *Client) Schedule(ctx context.Context, country string, date time.Time) ([]Episode, error) {
	params := url.Values{}
	if country != "" {
		if len(country) != 2 {
			return nil, fmt.Errorf("country must be an ISO 3166-1 alpha-2 code (got %q)", country)
		}
		params.Set("country", country)
	}
	if !date.IsZero() {
		params.Set("date", date.Format("2006-01-02"))
	}

	var episodes []Episode
	if err := c.getJSON(ctx, "schedule", "/schedule", params, &episodes); err != nil {
		return nil, err
	}
	return episodes, nil
}
