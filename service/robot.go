package service

import (
	"fmt"
	"time"

	"github.com/beka-birhanu/cleaner-api/domain"
	"github.com/beka-birhanu/cleaner-api/logger"
	"github.com/beka-birhanu/cleaner-api/path"
)

// RobotOption customizes a Robot.
type RobotOption func(*Robot)

// Robot walks lists of moves and reports how many unique cells it cleaned.
// It keeps no state between runs, every Run builds its own path.
type Robot struct {
	measure func(func() error) (time.Duration, error)
	now     func() time.Time
	logger  logger.Logger
}

// WithTimer replaces the function used to time a run.
func WithTimer(measure func(func() error) (time.Duration, error)) RobotOption {
	return func(r *Robot) {
		r.measure = measure
	}
}

// WithClock replaces the clock used to timestamp reports.
func WithClock(now func() time.Time) RobotOption {
	return func(r *Robot) {
		r.now = now
	}
}

// NewRobot creates a Robot logging to l. A nil l discards logs.
func NewRobot(l logger.Logger, options ...RobotOption) *Robot {
	if l == nil {
		l = logger.Discard()
	}
	r := &Robot{
		measure: MeasureDuration,
		now:     time.Now,
		logger:  l,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Run places the robot on start and executes moves in order.
func (r *Robot) Run(start path.Coordinate, moves []path.Move) (*domain.Report, error) {
	var cleaned, segments int
	elapsed, err := r.measure(func() error {
		if err := start.Validate(); err != nil {
			return fmt.Errorf("start: %w", err)
		}

		p := path.New()
		pos := start
		for idx, m := range moves {
			seg, err := path.NewSegment(pos, m)
			if err != nil {
				return fmt.Errorf("command %d: %w", idx, err)
			}
			if err := p.Add(seg); err != nil {
				return fmt.Errorf("command %d: %w", idx, err)
			}
			pos = seg.End
		}
		cleaned = p.UniqueCells()
		segments = p.Segments()
		return nil
	})
	if err != nil {
		r.logger.Error(fmt.Sprintf("executing %d commands from %v: %s", len(moves), start, err))
		return nil, err
	}

	r.logger.Info(fmt.Sprintf("executed %d commands (%d segments) from %v, cleaned %d cells in %s", len(moves), segments, start, cleaned, elapsed))
	return &domain.Report{
		Timestamp: r.now().UTC(),
		Commands:  len(moves),
		Result:    cleaned,
		Duration:  elapsed.Seconds(),
	}, nil
}
