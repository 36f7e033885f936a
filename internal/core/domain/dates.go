package domain

import (
	"math/big"
	"time"
)

// DateLayout renders dates as weekday, month, day and year.
const DateLayout = "Mon Jan 02 2006"

// DateFromUnix converts an integer-second timestamp into a time in loc. A
// nil timestamp, or one that does not fit in int64, yields nil.
func DateFromUnix(ts *big.Int, loc *time.Location) *time.Time {
	if ts == nil || !ts.IsInt64() {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}
	t := time.Unix(ts.Int64(), 0).In(loc)
	return &t
}

// DeadlinePassed reports whether deadline lies strictly before now. A nil
// deadline never passes.
func DeadlinePassed(deadline *time.Time, now time.Time) bool {
	return deadline != nil && deadline.Before(now)
}
