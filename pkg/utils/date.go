package utils

import "time"

// APIDateLayout is the calendar date format used by the broker API.
const APIDateLayout = "2006-01-02"

func FormatAPIDate(t time.Time) string {
	return t.Format(APIDateLayout)
}

func ParseAPIDate(s string) (time.Time, error) {
	return time.Parse(APIDateLayout, s)
}

// HistoryRange returns the start and end dates covering the last n days,
// formatted for the broker API.
func HistoryRange(days int) (string, string) {
	now := time.Now().UTC()
	return FormatAPIDate(now.AddDate(0, 0, -days)), FormatAPIDate(now)
}
