package queries

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type periodUnit int

const (
	allTime periodUnit = iota
	days
	months
)

var periodPattern = regexp.MustCompile(`^(\d+)\s*(day|month)s?$`)

// Period is a window of whole days or months ending now. The zero Period
// covers all time; a count of zero is the empty window [now, now].
//
// Example:
//
//	ParsePeriod("7days")    // last 7 days
//	ParsePeriod("3 Months") // last 3 months
//	ParsePeriod("0 days")   // nothing but this instant
//	ParsePeriod("forever")  // all time
type Period struct {
	unit  periodUnit
	count int
}

// ParsePeriod reads "<N> day(s)" or "<N> month(s)". Anything else, including
// a missing or overflowing count, yields the all-time Period.
func ParsePeriod(s string) Period {
	m := periodPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if m == nil {
		return Period{}
	}

	count, err := strconv.Atoi(m[1])
	if err != nil {
		return Period{}
	}

	if m[2] == "day" {
		return Period{unit: days, count: count}
	}
	return Period{unit: months, count: count}
}

// IsAllTime reports whether the Period has no lower bound.
func (p Period) IsAllTime() bool {
	return p.unit == allTime
}

// Since returns the lower bound of the window ending at now.
// The second result is false for the all-time Period.
func (p Period) Since(now time.Time) (time.Time, bool) {
	switch p.unit {
	case days:
		return now.AddDate(0, 0, -p.count), true
	case months:
		return now.AddDate(0, -p.count, 0), true
	default:
		return time.Time{}, false
	}
}

func (p Period) String() string {
	switch p.unit {
	case days:
		return fmt.Sprintf("%d days", p.count)
	case months:
		return fmt.Sprintf("%d months", p.count)
	default:
		return "all time"
	}
}
