package tracking

import (
	"time"

	"github.com/youthlab/habitrack/pkg/entity"
)

// IsDue reports whether date is a due day for the habit. Dates before
// the habit was created or after it was archived are never due. A
// malformed schedule (WEEKLY with no weekdays, CUSTOM with no custom
// days) degrades to never-due instead of erroring.
func IsDue(habit *entity.Habit, date time.Time) bool {
	day := DayOf(date)
	created := DayOf(habit.CreatedAt)
	if day.Before(created) {
		return false
	}
	if habit.ArchivedAt != nil && day.After(DayOf(*habit.ArchivedAt)) {
		return false
	}
	switch habit.Schedule.Frequency {
	case entity.FrequencyDaily:
		return true
	case entity.FrequencyWeekly:
		weekday := int(day.Weekday())
		for _, wd := range habit.Schedule.Weekdays {
			if wd == weekday {
				return true
			}
		}
		return false
	case entity.FrequencyMonthly:
		// Due once per month on createdAt's day-of-month, clamped to
		// the length of the month.
		target := created.Day()
		if max := daysInMonth(day); target > max {
			target = max
		}
		return day.Day() == target
	case entity.FrequencyCustom:
		iso := day.Format(dayLayout)
		for _, d := range habit.Schedule.CustomDays {
			if d == iso {
				return true
			}
		}
		return false
	}
	return false
}
