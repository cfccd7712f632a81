package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/shipcaptaincrew/internal/common/clock Clock

// Clock supplies timestamps for sessions and round results
type Clock interface {
	Now() time.Time
}

// DefaultClock implements Clock with the system clock in UTC
type DefaultClock struct{}

func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now().UTC()
}
