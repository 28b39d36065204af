// SPDX-License-Identifier: MIT

package tvmaze

import (
	"context"
	"fmt"

	"github.com/bingefriend/tvmaze-client-go/internal/log"
)

// Person retrieves the main information for a person (/people/:id).
func (c *Client) Person(ctx context.Context, personID int) (*Person, error) {
	logger := log.WithContext(ctx, c.logger)
	logger.Info().Int(log.FieldPersonID, personID).Msg("fetching person")

	var person Person
	if err := c.getJSON(ctx, "person", fmt.Sprintf("/people/%d", personID), nil, &person); err != nil {
		return nil, err
	}
	return &person, nil
}
