package clock

import (
	"log/slog"
	"time"
)

// Clock supplies the current time. Services never call time.Now directly.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

// NewSystemClock returns a Clock backed by the wall clock, reporting times in loc.
func NewSystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return systemClock{loc: loc}
}

// NewSystemClockForZone resolves an IANA zone name and falls back to UTC when it is unknown.
func NewSystemClockForZone(name string) Clock {
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("Unknown business timezone, falling back to UTC", slog.String("timezone", name), slog.String("error", err.Error()))
		loc = time.UTC
	}
	return NewSystemClock(loc)
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed is a Clock that always returns the same instant.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}
