/*
calendar.go - Business-day arithmetic over a fixed holiday set

PURPOSE:
  Contract deadlines in real-estate operations ("10 días hábiles") count
  business days, skipping weekends and national holidays. This file
  implements the two calendar operations the platform exposes:

  - DaysBetween: calendar/business-day split between two dates
  - DueDate: the date N business days after a start date

  Both are pure functions of (dates, HolidaySet). "Today" never enters the
  calculation except as a caller-supplied argument.

CONVENTIONS:
  - Weekends are Saturday/Sunday, fixed.
  - TotalCalendarDays is the exclusive difference end-start; the
    business/weekend/holiday counts cover the inclusive range [start, end].
  - A holiday that falls on a weekend is counted once, as a weekend day.
  - The due-date walk starts the day AFTER the start date, so the start
    date itself never counts toward the requested business days.
*/
package fiscal

import (
	"sort"
	"time"
)

// =============================================================================
// HOLIDAY SET
// =============================================================================

// Holiday is a single non-working date with its legal reason.
type Holiday struct {
	Date time.Time
	Name string
}

// HolidaySet is a fixed, versioned collection of holidays. Build it once
// (from the compiled-in calendar or config) and inject it into each call.
type HolidaySet struct {
	byDate map[string]Holiday
}

func NewHolidaySet(holidays ...Holiday) HolidaySet {
	set := HolidaySet{byDate: make(map[string]Holiday, len(holidays))}
	for _, h := range holidays {
		d := DateOnly(h.Date)
		set.byDate[d.Format("2006-01-02")] = Holiday{Date: d, Name: h.Name}
	}
	return set
}

// Lookup returns the holiday falling on the given date, if any.
func (s HolidaySet) Lookup(date time.Time) (Holiday, bool) {
	h, ok := s.byDate[DateOnly(date).Format("2006-01-02")]
	return h, ok
}

// All returns the holidays in chronological order.
func (s HolidaySet) All() []Holiday {
	out := make([]Holiday, 0, len(s.byDate))
	for _, h := range s.byDate {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func (s HolidaySet) Len() int { return len(s.byDate) }

// DateOnly truncates a time to its UTC calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsWeekend reports whether the date is a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// =============================================================================
// DAYS BETWEEN
// =============================================================================

// NonBusinessDay explains why one day in a range did not count.
type NonBusinessDay struct {
	Date   time.Time
	Kind   string // "weekend" or "holiday"
	Reason string
}

// DaysBetweenResult is the calendar/business split for a date range.
type DaysBetweenResult struct {
	Start             time.Time
	End               time.Time
	TotalCalendarDays int
	BusinessDays      int
	Weekends          int
	Holidays          int
	NonBusinessDays   []NonBusinessDay
}

// DaysBetween computes the calendar-day difference and the business-day
// count between two dates. start after end is a validation error.
func DaysBetween(start, end time.Time, holidays HolidaySet) (*DaysBetweenResult, error) {
	start, end = DateOnly(start), DateOnly(end)
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	result := &DaysBetweenResult{
		Start:             start,
		End:               end,
		TotalCalendarDays: int(end.Sub(start).Hours() / 24),
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		switch {
		case IsWeekend(day):
			result.Weekends++
			result.NonBusinessDays = append(result.NonBusinessDays, NonBusinessDay{
				Date: day, Kind: "weekend", Reason: day.Weekday().String(),
			})
		default:
			if h, ok := holidays.Lookup(day); ok {
				result.Holidays++
				result.NonBusinessDays = append(result.NonBusinessDays, NonBusinessDay{
					Date: day, Kind: "holiday", Reason: h.Name,
				})
			} else {
				result.BusinessDays++
			}
		}
	}
	return result, nil
}

// =============================================================================
// DUE DATE
// =============================================================================

// DueDateResult is the projection of a business-day deadline.
type DueDateResult struct {
	Start             time.Time
	BusinessDays      int
	DueDate           time.Time
	TotalCalendarDays int
	SkippedHolidays   []Holiday
	SkippedWeekend    int
}

// MaxBusinessDays bounds due-date projections. Anything longer than a year
// of business days is rejected rather than silently clamped.
const MaxBusinessDays = 365

// DueDate walks forward one calendar day at a time from the day after
// start, counting only non-weekend, non-holiday days, until businessDays
// have been counted. businessDays outside [1, MaxBusinessDays] is a
// validation error.
func DueDate(start time.Time, businessDays int, holidays HolidaySet) (*DueDateResult, error) {
	if businessDays <= 0 || businessDays > MaxBusinessDays {
		return nil, ErrBusinessDaysOutOfRange
	}

	start = DateOnly(start)
	result := &DueDateResult{Start: start, BusinessDays: businessDays}

	counted := 0
	day := start
	for counted < businessDays {
		day = day.AddDate(0, 0, 1)
		switch {
		case IsWeekend(day):
			result.SkippedWeekend++
		default:
			if h, ok := holidays.Lookup(day); ok {
				result.SkippedHolidays = append(result.SkippedHolidays, h)
			} else {
				counted++
			}
		}
	}

	result.DueDate = day
	result.TotalCalendarDays = int(day.Sub(start).Hours() / 24)
	return result, nil
}

// =============================================================================
// NATIONAL CALENDAR - 2024 snapshot
// =============================================================================

// Argentina2024 returns the fixed Argentine national holiday calendar for
// 2024, including the decreed bridge days. Ships as the engine default;
// later years are supplied through config.
func Argentina2024() HolidaySet {
	d := func(month time.Month, day int) time.Time {
		return time.Date(2024, month, day, 0, 0, 0, 0, time.UTC)
	}
	return NewHolidaySet(
		Holiday{Date: d(time.January, 1), Name: "Año Nuevo"},
		Holiday{Date: d(time.February, 12), Name: "Carnaval"},
		Holiday{Date: d(time.February, 13), Name: "Carnaval"},
		Holiday{Date: d(time.March, 24), Name: "Día Nacional de la Memoria por la Verdad y la Justicia"},
		Holiday{Date: d(time.March, 28), Name: "Jueves Santo"},
		Holiday{Date: d(time.March, 29), Name: "Viernes Santo"},
		Holiday{Date: d(time.April, 1), Name: "Feriado puente"},
		Holiday{Date: d(time.April, 2), Name: "Día del Veterano y de los Caídos en la Guerra de Malvinas"},
		Holiday{Date: d(time.May, 1), Name: "Día del Trabajador"},
		Holiday{Date: d(time.May, 25), Name: "Día de la Revolución de Mayo"},
		Holiday{Date: d(time.June, 17), Name: "Paso a la Inmortalidad del Gral. Don Martín Miguel de Güemes"},
		Holiday{Date: d(time.June, 20), Name: "Paso a la Inmortalidad del Gral. Manuel Belgrano"},
		Holiday{Date: d(time.June, 21), Name: "Feriado puente"},
		Holiday{Date: d(time.July, 9), Name: "Día de la Independencia"},
		Holiday{Date: d(time.August, 17), Name: "Paso a la Inmortalidad del Gral. José de San Martín"},
		Holiday{Date: d(time.October, 11), Name: "Feriado puente"},
		Holiday{Date: d(time.October, 12), Name: "Día del Respeto a la Diversidad Cultural"},
		Holiday{Date: d(time.November, 18), Name: "Día de la Soberanía Nacional"},
		Holiday{Date: d(time.December, 8), Name: "Inmaculada Concepción de María"},
		Holiday{Date: d(time.December, 25), Name: "Navidad"},
	)
}
