package domain

import "time"

// DateRange is an inclusive since/until window passed to the Graph API
type DateRange struct {
	Since time.Time
	Until time.Time
}

// SingleDay builds a range covering exactly one day
func SingleDay(date time.Time) DateRange {
	return DateRange{Since: date, Until: date}
}

func (r DateRange) SinceString() string {
	return r.Since.Format(time.DateOnly)
}

func (r DateRange) UntilString() string {
	return r.Until.Format(time.DateOnly)
}
