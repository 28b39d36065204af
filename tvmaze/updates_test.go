// SPDX-License-Identifier: MIT
package tvmaze

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdates_Success(t *testing.T) {
	c, _ := newMockClient(t)

	updates, err := c.Updates(context.Background(), PeriodDay)
	require.NoError(t, err)
	assert.Equal(t, map[int]int64{
		1: 1631010933,
		2: 1631565378,
	}, updates)
}

func TestUpdates_AllPeriods(t *testing.T) {
	c, _ := newMockClient(t)

	for _, period := range []UpdatePeriod{PeriodDay, PeriodWeek, PeriodMonth, PeriodAll} {
		updates, err := c.Updates(context.Background(), period)
		require.NoError(t, err, "period %q", period)
		assert.Len(t, updates, 2, "period %q", period)
	}
}

func TestUpdates_InvalidPeriod(t *testing.T) {
	c, _ := newMockClient(t)

	_, err := c.Updates(context.Background(), UpdatePeriod("year"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestUpdates_NotFoundMeansEmpty(t *testing.T) {
	c, mock := newMockClient(t)
	mock.SetUpdates(nil)

	updates, err := c.Updates(context.Background(), PeriodWeek)
	require.NoError(t, err)
	require.NotNil(t, updates)
	assert.Empty(t, updates)
}

func TestUpdates_SkipsMalformedEntries(t *testing.T) {
	c, mock := newMockClient(t)
	mock.SetUpdates(map[string]any{
		"1":         1678886400,
		"2":         "1678886401", // numeric string is accepted
		"3":         "soon",       // garbage timestamp is skipped
		"not-an-id": 1678886402,   // garbage key is skipped
	})

	updates, err := c.Updates(context.Background(), PeriodDay)
	require.NoError(t, err)
	assert.Equal(t, map[int]int64{
		1: 1678886400,
		2: 1678886401,
	}, updates)
}

func TestUpdatePeriod_Valid(t *testing.T) {
	assert.True(t, PeriodDay.Valid())
	assert.True(t, PeriodWeek.Valid())
	assert.True(t, PeriodMonth.Valid())
	assert.True(t, PeriodAll.Valid())
	assert.False(t, UpdatePeriod("year").Valid())
	assert.False(t, UpdatePeriod("Day").Valid())
}
