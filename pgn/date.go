/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pgn

import (
	"fmt"
	"strings"
	"time"

	"github.com/mikeb26/pgnfetch/internal"
)

// Date is a calendar date with no time of day or zone attached. PGN date tags
// and download cutoffs are both expressed this way.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Epoch is the cutoff used when the caller doesn't supply one; every game
// played on a modern server is on or after it.
var Epoch = Date{Year: 1970, Month: time.January, Day: 1}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a user supplied date such as "2023-01-15". Anything
// dateparse understands is accepted. An empty string yields Epoch.
func ParseDate(s string) (Date, error) {
	t, err := internal.ParseDateOrZero(strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("pgn: invalid date %q: %w", s, err)
	}
	if t.IsZero() {
		return Epoch, nil
	}

	return DateOf(t), nil
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// Time returns midnight UTC at the start of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// validDate reports whether y/m/d names a real calendar day, e.g. it rejects
// 2023.02.30 which time.Date would silently normalize into March.
func validDate(y int, m time.Month, d int) bool {
	if m < time.January || m > time.December || d < 1 {
		return false
	}
	return DateOf(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)) == Date{y, m, d}
}
