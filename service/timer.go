package service

import (
	"errors"
	"fmt"
	"time"
)

// ErrMeasuredPanic is returned by MeasureDuration when the measured work panics.
var ErrMeasuredPanic = errors.New("measured work panicked")

// MeasureDuration runs fn and returns the wall-clock time it took together
// with fn's error. A panic inside fn is recovered and reported as
// ErrMeasuredPanic so the elapsed time is always available.
func MeasureDuration(fn func() error) (elapsed time.Duration, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrMeasuredPanic, r)
		}
		elapsed = time.Since(start)
	}()

	err = fn()
	return elapsed, err
}
