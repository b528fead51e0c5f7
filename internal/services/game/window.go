package game

import (
	"strings"
	"time"
)

// parseWindow reads "HH:MM-HH:MM" as two times on the day of now, in loc
func parseWindow(window string, now time.Time, loc *time.Location) (time.Time, time.Time, error) {
	startText, stopText, ok := strings.Cut(strings.TrimSpace(window), "-")
	if !ok {
		return time.Time{}, time.Time{}, ErrInvalidWindow
	}

	start, err := timeOnDay(startText, now, loc)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidWindow
	}

	stop, err := timeOnDay(stopText, now, loc)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidWindow
	}

	if !stop.After(start) {
		return time.Time{}, time.Time{}, ErrInvalidWindow
	}

	return start, stop, nil
}

func timeOnDay(text string, now time.Time, loc *time.Location) (time.Time, error) {
	clockTime, err := time.Parse("15:04", strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, err
	}

	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), clockTime.Hour(), clockTime.Minute(), 0, 0, loc), nil
}
