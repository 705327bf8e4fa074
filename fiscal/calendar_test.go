package fiscal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitar/fiscal-engine/fiscal"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// =============================================================================
// DAYS BETWEEN
// =============================================================================

func TestDaysBetween_RejectsInvertedRange(t *testing.T) {
	_, err := fiscal.DaysBetween(date(2024, time.May, 10), date(2024, time.May, 1), fiscal.Argentina2024())
	require.Error(t, err)
	assert.True(t, fiscal.IsValidation(err))
}

func TestDaysBetween_SameDay(t *testing.T) {
	holidays := fiscal.Argentina2024()

	// GIVEN: start == end on a regular Wednesday
	// THEN: zero calendar days, the single day counts as business
	r, err := fiscal.DaysBetween(date(2024, time.January, 3), date(2024, time.January, 3), holidays)
	require.NoError(t, err)
	assert.Equal(t, 0, r.TotalCalendarDays)
	assert.Equal(t, 1, r.BusinessDays)

	// GIVEN: start == end on a Saturday
	// THEN: the single day is a weekend, zero business days
	r, err = fiscal.DaysBetween(date(2024, time.January, 6), date(2024, time.January, 6), holidays)
	require.NoError(t, err)
	assert.Equal(t, 0, r.TotalCalendarDays)
	assert.Equal(t, 0, r.BusinessDays)
	assert.Equal(t, 1, r.Weekends)
}

func TestDaysBetween_EasterWeek2024(t *testing.T) {
	// GIVEN: Mon Mar 25 through Tue Apr 2, 2024 — a range containing
	// Jueves/Viernes Santo, a weekend, the Apr 1 bridge day and Malvinas Day
	r, err := fiscal.DaysBetween(date(2024, time.March, 25), date(2024, time.April, 2), fiscal.Argentina2024())
	require.NoError(t, err)

	assert.Equal(t, 8, r.TotalCalendarDays)
	assert.Equal(t, 3, r.BusinessDays) // Mar 25, 26, 27
	assert.Equal(t, 2, r.Weekends)     // Mar 30, 31
	assert.Equal(t, 4, r.Holidays)     // Mar 28, 29 + Apr 1, 2
	assert.Len(t, r.NonBusinessDays, 6)

	// Every skipped day carries a reason
	for _, d := range r.NonBusinessDays {
		assert.NotEmpty(t, d.Reason, "day %s has no reason", d.Date)
	}
}

func TestDaysBetween_HolidayOnWeekendCountsOnce(t *testing.T) {
	// May 25, 2024 is both a national holiday and a Saturday; it must be
	// counted once, as a weekend day.
	r, err := fiscal.DaysBetween(date(2024, time.May, 24), date(2024, time.May, 26), fiscal.Argentina2024())
	require.NoError(t, err)

	assert.Equal(t, 1, r.BusinessDays) // Fri May 24
	assert.Equal(t, 2, r.Weekends)
	assert.Equal(t, 0, r.Holidays)
}

// =============================================================================
// DUE DATE
// =============================================================================

func TestDueDate_TenBusinessDaysFromNewYear(t *testing.T) {
	// GIVEN: start Mon 2024-01-01 (New Year itself; the walk starts the
	// next day) and 10 business days
	// THEN: Jan 2-5 (4), Jan 8-12 (5), Jan 15 (10) -> due Mon Jan 15
	r, err := fiscal.DueDate(date(2024, time.January, 1), 10, fiscal.Argentina2024())
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.January, 15), r.DueDate)
	assert.Equal(t, 14, r.TotalCalendarDays)
	assert.Equal(t, 4, r.SkippedWeekend)
	assert.Empty(t, r.SkippedHolidays)
}

func TestDueDate_WalksOverEaster(t *testing.T) {
	// GIVEN: start Wed 2024-03-27, 2 business days
	// THEN: Mar 28-29 holidays, Mar 30-31 weekend, Apr 1-2 holidays,
	//       Apr 3 (1), Apr 4 (2) -> due Thu Apr 4
	r, err := fiscal.DueDate(date(2024, time.March, 27), 2, fiscal.Argentina2024())
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.April, 4), r.DueDate)
	assert.Len(t, r.SkippedHolidays, 4)
	assert.Equal(t, 2, r.SkippedWeekend)
	assert.Equal(t, "Jueves Santo", r.SkippedHolidays[0].Name)
}

func TestDueDate_RejectsOutOfRangeCounts(t *testing.T) {
	holidays := fiscal.Argentina2024()
	for _, n := range []int{0, -5, 366, 1000} {
		_, err := fiscal.DueDate(date(2024, time.January, 1), n, holidays)
		require.Error(t, err, "count %d must be rejected", n)
		assert.True(t, fiscal.IsValidation(err))
	}
}

func TestDueDate_MonotonicInBusinessDays(t *testing.T) {
	holidays := fiscal.Argentina2024()
	start := date(2024, time.February, 9)

	prev := start
	for n := 1; n <= 40; n++ {
		r, err := fiscal.DueDate(start, n, holidays)
		require.NoError(t, err)
		assert.True(t, r.DueDate.After(prev),
			"dueDate(%d) = %s not after dueDate(%d) = %s", n, r.DueDate, n-1, prev)
		prev = r.DueDate
	}
}

func TestDueDate_NeverLandsOnNonBusinessDay(t *testing.T) {
	holidays := fiscal.Argentina2024()
	for n := 1; n <= 30; n++ {
		r, err := fiscal.DueDate(date(2024, time.June, 14), n, holidays)
		require.NoError(t, err)
		assert.False(t, fiscal.IsWeekend(r.DueDate))
		_, isHoliday := holidays.Lookup(r.DueDate)
		assert.False(t, isHoliday)
	}
}

// =============================================================================
// HOLIDAY SET
// =============================================================================

func TestHolidaySet_LookupNormalizesTime(t *testing.T) {
	set := fiscal.NewHolidaySet(fiscal.Holiday{Date: date(2024, time.July, 9), Name: "Día de la Independencia"})

	h, ok := set.Lookup(time.Date(2024, time.July, 9, 15, 30, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "Día de la Independencia", h.Name)
}

func TestHolidaySet_AllSorted(t *testing.T) {
	all := fiscal.Argentina2024().All()
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		assert.True(t, all[i-1].Date.Before(all[i].Date))
	}
}
