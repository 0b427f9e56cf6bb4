package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/cricle/internal/dependencies/mocks"
	"github.com/mcoot/cricle/internal/model"
)

func TestSelectIndexExample(t *testing.T) {
	// 2024-03-10 is day 70 of a leap year: (70 + 2024) % 2 == 0
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 70, date.YearDay())
	assert.Equal(t, 0, SelectIndex(date, 2))
	assert.Equal(t, (70+2024)%7, SelectIndex(date, 7))
}

func TestSelectIndexEmptyDataset(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		assert.Equal(t, model.NoMystery, SelectIndex(d, 0))
	}
}

func TestSelectIndexInRangeAndDeterministic(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, size := range []int{1, 2, 3, 16, 101} {
		for day := 0; day < 800; day++ {
			d := start.AddDate(0, 0, day)
			idx := SelectIndex(d, size)
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, size)
			require.Equal(t, idx, SelectIndex(d, size))
		}
	}
}

func TestSelectIndexFirstDayOfYear(t *testing.T) {
	d := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, (1+2025)%10, SelectIndex(d, 10))
}

func TestTodayUsesReferenceTimezone(t *testing.T) {
	kolkata, err := time.LoadLocation(DefaultTimezone)
	require.NoError(t, err)

	// 20:00 UTC on March 9 is 01:30 on March 10 in Kolkata
	clk := mocks.NewMockClock(time.Date(2024, 3, 9, 20, 0, 0, 0, time.UTC))
	s := New(clk, kolkata)

	assert.Equal(t, "2024-03-10", s.TodayKey())
	assert.Equal(t, 70, s.Today().YearDay())
	assert.Equal(t, 0, s.IndexForToday(2))

	utc := New(clk, time.UTC)
	assert.Equal(t, "2024-03-09", utc.TodayKey())
}

func TestTodayIsMidnight(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2024, 6, 1, 15, 4, 5, 0, time.UTC))
	s := New(clk, nil)

	today := s.Today()
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
	assert.Equal(t, time.UTC, s.Location())
}

func TestTodayChangesAtReferenceMidnight(t *testing.T) {
	kolkata, err := time.LoadLocation(DefaultTimezone)
	require.NoError(t, err)

	clk := mocks.NewMockClock(time.Date(2024, 3, 10, 23, 59, 0, 0, kolkata))
	s := New(clk, kolkata)
	assert.Equal(t, "2024-03-10", s.TodayKey())

	clk.Advance(2 * time.Minute)
	assert.Equal(t, "2024-03-11", s.TodayKey())
}
