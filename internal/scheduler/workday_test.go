package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddWorkdaysInclusive_SameDayCounting(t *testing.T) {
	monday := date(2024, time.January, 1)
	assert.Equal(t, monday, AddWorkdaysInclusive(monday, 1), "one workday is the start day itself")
}

func TestAddWorkdaysInclusive_SkipsWeekend(t *testing.T) {
	friday := date(2024, time.January, 5)
	monday := date(2024, time.January, 8)
	assert.Equal(t, monday, AddWorkdaysInclusive(friday, 2))
}

func TestAddWorkdaysInclusive_WeekendStartSnapsForward(t *testing.T) {
	saturday := date(2024, time.January, 6)
	monday := date(2024, time.January, 8)
	assert.Equal(t, monday, AddWorkdaysInclusive(saturday, 1))

	sunday := date(2024, time.January, 7)
	assert.Equal(t, monday, AddWorkdaysInclusive(sunday, 1))
}

func TestAddWorkdaysInclusive_SpansFullWeek(t *testing.T) {
	wednesday := date(2024, time.January, 3)
	// Wed(1) Thu(2) Fri(3) -> weekend -> Mon(4)
	assert.Equal(t, date(2024, time.January, 8), AddWorkdaysInclusive(wednesday, 4))
}

func TestAddWorkdaysInclusive_NonPositiveCountTreatedAsOne(t *testing.T) {
	friday := date(2024, time.January, 5)
	assert.Equal(t, friday, AddWorkdaysInclusive(friday, 0))
	assert.Equal(t, friday, AddWorkdaysInclusive(friday, -3))
}

func TestAddWorkdaysInclusive_TimezoneIndependent(t *testing.T) {
	loc := time.FixedZone("UTC+13", 13*3600)
	// Local Saturday morning that is still Friday in UTC.
	localSat := time.Date(2024, time.January, 6, 9, 0, 0, 0, loc)
	assert.Equal(t, date(2024, time.January, 5), AddWorkdaysInclusive(localSat, 1))
}

func TestIsWeekend(t *testing.T) {
	assert.False(t, IsWeekend(date(2024, time.January, 5))) // Friday
	assert.True(t, IsWeekend(date(2024, time.January, 6)))  // Saturday
	assert.True(t, IsWeekend(date(2024, time.January, 7)))  // Sunday
	assert.False(t, IsWeekend(date(2024, time.January, 8))) // Monday
}

func TestDaysBetween_Signed(t *testing.T) {
	assert.Equal(t, 4, DaysBetween(date(2024, time.January, 1), date(2024, time.January, 5)))
	assert.Equal(t, -4, DaysBetween(date(2024, time.January, 5), date(2024, time.January, 1)))
	assert.Equal(t, 0, DaysBetween(date(2024, time.January, 1), date(2024, time.January, 1)))
}

func TestDaysBetween_IgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2024, time.January, 1, 23, 59, 0, 0, time.UTC)
	b := time.Date(2024, time.January, 2, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(a, b))
}
