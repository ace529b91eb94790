// Package clock provides the wall-clock source and the periodic holder that
// refreshes the displayed time.
package clock

import "time"

// Clock abstracts time.Now() so the current time can be injected and faked
// in tests.
type Clock interface {
	Now() time.Time
}

// System implements Clock using the standard time package.
type System struct{}

// Now returns the current local time.
func (System) Now() time.Time { return time.Now() }
