package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	// WASOMinutesPerAwakening is the fixed wake-after-sleep-onset cost
	// charged for each recorded awakening.
	WASOMinutesPerAwakening = 5

	dateLayout = "2006-01-02"
)

// Date is a calendar date without a time component, serialized as
// "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date in UTC.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrFormat)
	}
	d.Time = t.UTC()
	return nil
}

// After reports whether d is strictly after other, comparing calendar
// days only.
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

// TimeOfDay is a wall-clock time without a date or zone, serialized as
// "HH:MM" or "HH:MM:SS".
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTimeOfDay accepts "HH:MM" and "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			return TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute(), Second: parsed.Second()}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("%w: time must be HH:MM or HH:MM:SS", ErrFormat)
}

// TimeOfDayFrom extracts the wall-clock portion of a timestamp.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// at anchors the time-of-day onto a calendar date in UTC.
func (t TimeOfDay) at(d Date) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour, t.Minute, t.Second, 0, time.UTC)
}

// ResolveSleepWindow combines a record date with bedtime and wake-up
// times of day into absolute timestamps. When the wake-up time is not
// strictly after bedtime the wake timestamp rolls to the next calendar
// day, so the returned pair is always ordered. Equal times resolve to a
// full 24-hour window.
func ResolveSleepWindow(recordDate Date, bedtime, wakeupTime TimeOfDay) (bed, wake time.Time) {
	bed = bedtime.at(recordDate)
	wake = wakeupTime.at(recordDate)
	if !wake.After(bed) {
		wake = wake.AddDate(0, 0, 1)
	}
	return bed, wake
}

// ComputeSleepMetrics derives sleep duration (hours) and sleep
// efficiency (%) from the resolved window and the awakenings count.
// Each awakening costs WASOMinutesPerAwakening minutes of wakefulness.
// Both values are rounded to two decimals; efficiency is clamped to
// [0, 100] before rounding.
func ComputeSleepMetrics(recordDate Date, bedtime, wakeupTime TimeOfDay, awakenings int) (durationHours, efficiencyPercent float64) {
	bed, wake := ResolveSleepWindow(recordDate, bedtime, wakeupTime)
	timeInBedMin := int(wake.Sub(bed).Minutes())
	if timeInBedMin == 0 {
		return 0, 0
	}

	durationHours = round2(float64(timeInBedMin) / 60)

	waso := float64(maxInt(0, awakenings) * WASOMinutesPerAwakening)
	efficiency := 100 * (float64(timeInBedMin) - waso) / float64(timeInBedMin)
	if efficiency < 0 {
		efficiency = 0
	}
	if efficiency > 100 {
		efficiency = 100
	}
	efficiencyPercent = round2(efficiency)

	return durationHours, efficiencyPercent
}

// round2 rounds half away from zero to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
