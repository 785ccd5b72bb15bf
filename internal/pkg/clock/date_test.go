//go:build unit

package clock_test

import (
	"testing"
	"time"

	"library-backend/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDates(t *testing.T) {
	t.Run("時刻を切り捨てる", func(t *testing.T) {
		loc := time.FixedZone("BRT", -3*60*60)
		got := clock.DateOf(time.Date(2024, 3, 10, 23, 30, 0, 0, loc))
		assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("月をまたぐ加算", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "2024-01-31", clock.FormatDate(clock.AddDays(start, 30)))
		assert.Equal(t, "2024-03-01", clock.FormatDate(clock.AddDays(time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC), 10)))
	})

	t.Run("MockClockから今日を得る", func(t *testing.T) {
		c := clock.NewMockClock(time.Date(2024, 5, 2, 15, 4, 5, 0, time.UTC))
		assert.Equal(t, "2024-05-02", clock.FormatDate(clock.Today(c)))
	})

	t.Run("日付文字列のパース", func(t *testing.T) {
		d, err := clock.ParseDate("2024-02-29")
		require.NoError(t, err)
		assert.Equal(t, 29, d.Day())

		_, err = clock.ParseDate("29/02/2024")
		assert.Error(t, err)
	})
}
