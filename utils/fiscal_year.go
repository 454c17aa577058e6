package utils

import "time"

// IST is the Indian Standard Time location (UTC+5:30).
var IST *time.Location

func init() {
	var err error
	IST, err = time.LoadLocation("Asia/Kolkata")
	if err != nil {
		IST = time.FixedZone("IST", 5*60*60+30*60)
	}
}

const DateLayout = "2006-01-02"

// FiscalYear returns the first instant of the fiscal year starting in startYear
// and the last instant before the next one, both in IST.
func FiscalYear(startYear int, startMonth time.Month) (time.Time, time.Time) {
	start := time.Date(startYear, startMonth, 1, 0, 0, 0, 0, IST)
	end := start.AddDate(1, 0, 0).Add(-time.Millisecond)
	return start, end
}

// FiscalYearOf returns the start year of the fiscal year containing t.
func FiscalYearOf(t time.Time, startMonth time.Month) int {
	t = t.In(IST)
	if t.Month() < startMonth {
		return t.Year() - 1
	}
	return t.Year()
}

// ParseDateIST parses a YYYY-MM-DD date as midnight IST.
func ParseDateIST(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, IST)
}

// EndOfDay returns 23:59:59.999999999 IST of t's day.
func EndOfDay(t time.Time) time.Time {
	ist := t.In(IST)
	return time.Date(ist.Year(), ist.Month(), ist.Day(), 23, 59, 59, 999999999, IST)
}

// FormatDate formats t as 02-Jan-2006 in IST, "-" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(IST).Format("02-Jan-2006")
}
