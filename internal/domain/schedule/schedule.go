package schedule

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TimeOfDay is a naive wall-clock time, stored as seconds since midnight.
// Attendance clock events and schedule boundaries carry no timezone: the
// device reports local wall-clock time and all comparisons happen within
// a single calendar day.
type TimeOfDay int

// ParseTimeOfDay accepts "15:04:05" or "15:04".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
		if err != nil {
			return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
		}
	}
	return TimeOfDay(t.Hour()*3600 + t.Minute()*60 + t.Second()), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(t)/3600, int(t)/60%60, int(t)%60)
}

// Hours returns the time of day as fractional hours since midnight.
func (t TimeOfDay) Hours() float64 {
	return float64(t) / 3600
}

// Minutes returns the time of day as fractional minutes since midnight.
func (t TimeOfDay) Minutes() float64 {
	return float64(t) / 60
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer so TimeOfDay maps onto the TIME column type.
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t *TimeOfDay) Scan(src any) error {
	switch v := src.(type) {
	case string:
		parsed, err := ParseTimeOfDay(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		return t.Scan(string(v))
	case time.Time:
		*t = TimeOfDay(v.Hour()*3600 + v.Minute()*60 + v.Second())
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
}

// DaySchedule describes one weekday of an employee's working pattern.
// When Active is false the time fields are meaningless and ignored.
type DaySchedule struct {
	Active     bool       `json:"active"`
	Start      *TimeOfDay `json:"start,omitempty"`
	End        *TimeOfDay `json:"end,omitempty"`
	LunchStart *TimeOfDay `json:"lunch_start,omitempty"`
	LunchEnd   *TimeOfDay `json:"lunch_end,omitempty"`
}

// WeeklySchedule maps every day of the week to its working pattern.
// Persisted as a JSONB column on the employee row.
type WeeklySchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// ForWeekday returns the schedule for the given calendar weekday.
func (ws WeeklySchedule) ForWeekday(d time.Weekday) DaySchedule {
	switch d {
	case time.Monday:
		return ws.Monday
	case time.Tuesday:
		return ws.Tuesday
	case time.Wednesday:
		return ws.Wednesday
	case time.Thursday:
		return ws.Thursday
	case time.Friday:
		return ws.Friday
	case time.Saturday:
		return ws.Saturday
	default:
		return ws.Sunday
	}
}

// ForDate returns the schedule applying on the given calendar date.
func (ws WeeklySchedule) ForDate(date time.Time) DaySchedule {
	return ws.ForWeekday(date.Weekday())
}

var dayNames = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func (ws WeeklySchedule) days() []DaySchedule {
	return []DaySchedule{ws.Monday, ws.Tuesday, ws.Wednesday, ws.Thursday, ws.Friday, ws.Saturday, ws.Sunday}
}

// Validate enforces the per-day invariant: an active day must carry all four
// times with start <= lunch_start < lunch_end <= end.
func (ws WeeklySchedule) Validate() error {
	for i, day := range ws.days() {
		if !day.Active {
			continue
		}
		if day.Start == nil || day.End == nil || day.LunchStart == nil || day.LunchEnd == nil {
			return fmt.Errorf("%s: active day is missing work or lunch times", dayNames[i])
		}
		if *day.LunchStart < *day.Start || *day.LunchEnd > *day.End || *day.LunchStart >= *day.LunchEnd {
			return fmt.Errorf("%s: lunch break must fall inside work hours", dayNames[i])
		}
	}
	return nil
}

func tod(s string) *TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return &t
}

// Default returns the standard Monday-Friday 08:00-17:00 schedule with a
// 12:00-13:00 lunch break, used when employees are created or imported
// without an explicit schedule.
func Default() WeeklySchedule {
	workday := DaySchedule{
		Active:     true,
		Start:      tod("08:00:00"),
		End:        tod("17:00:00"),
		LunchStart: tod("12:00:00"),
		LunchEnd:   tod("13:00:00"),
	}
	return WeeklySchedule{
		Monday:    workday,
		Tuesday:   workday,
		Wednesday: workday,
		Thursday:  workday,
		Friday:    workday,
		Saturday:  DaySchedule{Active: false},
		Sunday:    DaySchedule{Active: false},
	}
}
