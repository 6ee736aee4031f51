package timehelper

import (
	"sync"
	"time"
)

// Clock returns the current time.
type Clock func() time.Time

func System() Clock {
	return time.Now
}

// Fixed always returns t.
func Fixed(t time.Time) Clock {
	return func() time.Time {
		return t
	}
}

// Stepping starts at start and advances by step on every call.
func Stepping(start time.Time, step time.Duration) Clock {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current := next
		next = next.Add(step)
		return current
	}
}

// DateString formats the clock's current date as 'YYYY-MM-DD'.
func (c Clock) DateString() string {
	return c().Format("2006-01-02")
}
