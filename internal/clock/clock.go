package clock

import (
	"time"

	rclock "github.com/raulk/clock"
)

// Clock is the time source of the program: instants for rendering and
// tickers for repeated renders.
type Clock = rclock.Clock

// Mock only moves when Set or Add is called. Tickers created from it fire as
// the mocked time passes their period.
type Mock = rclock.Mock

func NewSystemClock() Clock {
	return rclock.New()
}

// NewMock returns a mock clock frozen at t.
func NewMock(t time.Time) *Mock {
	m := rclock.NewMock()
	m.Set(t)

	return m
}

type located struct {
	Clock
	location *time.Location
}

// InLocation returns a clock whose instants are expressed in loc. Timers and
// tickers still come from c. A nil loc returns c unchanged.
func InLocation(c Clock, loc *time.Location) Clock {
	if loc == nil {
		return c
	}

	return &located{c, loc}
}

func (l *located) Now() time.Time {
	return l.Clock.Now().In(l.location)
}
