// SPDX-License-Identifier: MIT

package tvmaze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/bingefriend/tvmaze-client-go/internal/log"
)

// UpdatePeriod bounds the /updates/shows "since" parameter.
type UpdatePeriod string

const (
	PeriodDay   UpdatePeriod = "day"
	PeriodWeek  UpdatePeriod = "week"
	PeriodMonth UpdatePeriod = "month"

	// PeriodAll requests the full updates map with no "since" filter.
	PeriodAll UpdatePeriod = ""
)

// Valid reports whether the period is accepted by the upstream API.
func (p UpdatePeriod) Valid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodAll:
		return true
	}
	return false
}

// Updates retrieves the map of show ID to last-updated Unix timestamp from
// /updates/shows. A 404 from the upstream means "no updates for the period"
// and yields an empty, non-nil map. Entries whose ID or timestamp cannot be
// parsed are skipped with a warning.
func (c *Client) Updates(ctx context.Context, period UpdatePeriod) (map[int]int64, error) {
	if !period.Valid() {
		return nil, fmt.Errorf("%w: %q (want day, week or month)", ErrInvalidPeriod, period)
	}

	logger := log.WithContext(ctx, c.logger)
	logger.Info().Str(log.FieldPeriod, string(period)).Msg("fetching show updates")

	var params url.Values
	if period != PeriodAll {
		params = url.Values{}
		params.Set("since", string(period))
	}

	var raw map[string]json.RawMessage
	if err := c.getJSON(ctx, "show updates", "/updates/shows", params, &raw); err != nil {
		if errors.Is(err, ErrNotFound) {
			logger.Info().
				Str(log.FieldPeriod, string(period)).
				Msg("upstream reported no updates for period")
			return map[int]int64{}, nil
		}
		return nil, err
	}

	// Entries are filtered one by one so a single malformed record cannot
	// poison the whole feed.
	updates := make(map[int]int64, len(raw))
	skipped := 0
	for key, msg := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			skipped++
			continue
		}
		var ts Timestamp
		if err := json.Unmarshal(msg, &ts); err != nil {
			skipped++
			continue
		}
		updates[id] = int64(ts)
	}
	if skipped > 0 {
		logger.Warn().
			Int("skipped", skipped).
			Str(log.FieldPeriod, string(period)).
			Msg("updates feed contained entries that could not be parsed and were ignored")
	}

	logger.Info().
		Int("count", len(updates)).
		Str(log.FieldPeriod, string(period)).
		Msg("obtained show updates")
	return updates, nil
}
