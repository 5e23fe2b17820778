// Package clock provides the wall-clock implementation of service.Clock.
package clock

import (
	"time"

	"checkin/internal/domain/service"
)

type systemClock struct{}

// New returns a clock that reads the system time in UTC.
func New() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
