package quiz

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date form used for due dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD due date.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}
	return parsed, nil
}

// FormatDate renders a due date in YYYY-MM-DD form.
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// FileName returns the suggested export name, e.g. group-3-Jan5.txt.
func FileName(groupNum int, due time.Time) string {
	return fmt.Sprintf("group-%d-%s.txt", groupNum, due.Format("Jan2"))
}
