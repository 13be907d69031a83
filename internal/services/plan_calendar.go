package services

import "time"

const (
	calendarWeeks = 4
	calendarDays  = calendarWeeks * 7
)

// PlanCalendarDay is one cell of the four-week projection of a weekly plan.
type PlanCalendarDay[T any] struct {
	Date       time.Time `json:"date"`
	DayNumber  int       `json:"day_number"`
	IsToday    bool      `json:"is_today"`
	IsPast     bool      `json:"is_past"`
	WeekNumber int       `json:"week_number"`
	Day        *T        `json:"day,omitempty"`
}

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// ISOWeekday numbers Monday as 1 and Sunday as 7.
func ISOWeekday(value time.Time) int {
	weekday := int(value.Weekday())
	if weekday == 0 {
		return 7
	}
	return weekday
}

// BuildPlanCalendar projects the weekday records onto 28 consecutive dates
// beginning at start. Each date shows the record for its own weekday;
// dayNumber extracts the weekday a record belongs to.
func BuildPlanCalendar[T any](start time.Time, today time.Time, days []T, dayNumber func(T) int) []PlanCalendarDay[T] {
	location := today.Location()
	first := DateAtLocation(start, location)
	current := DateAtLocation(today, location)

	byNumber := make(map[int]int, len(days))
	for index := range days {
		byNumber[dayNumber(days[index])] = index
	}

	cells := make([]PlanCalendarDay[T], 0, calendarDays)
	for offset := 0; offset < calendarDays; offset++ {
		date := first.AddDate(0, 0, offset)
		number := ISOWeekday(date)
		cell := PlanCalendarDay[T]{
			Date:       date,
			DayNumber:  number,
			IsToday:    date.Equal(current),
			IsPast:     date.Before(current),
			WeekNumber: offset/7 + 1,
		}
		if index, ok := byNumber[number]; ok {
			cell.Day = &days[index]
		}
		cells = append(cells, cell)
	}
	return cells
}
