package clock

import "time"

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// System reads the wall clock
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always returns the same instant
type Fixed struct {
	At time.Time
}

func (c Fixed) Now() time.Time { return c.At }
