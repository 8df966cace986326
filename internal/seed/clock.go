package seed

import "time"

// Clock abstracts time retrieval so generation is deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock returns the actual current time in UTC.
func SystemClock() Clock { return systemClock{} }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }
