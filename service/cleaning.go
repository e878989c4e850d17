package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/beka-birhanu/cleaner-api/domain"
	"github.com/beka-birhanu/cleaner-api/logger"
	"github.com/beka-birhanu/cleaner-api/path"
	"github.com/beka-birhanu/cleaner-api/service/i"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	recentQueueKey    = "cleaner:executions:recent"
	defaultRecentSize = 10
	maxRecentSize     = 100
)

var tracer = otel.Tracer("github.com/beka-birhanu/cleaner-api/service")

// Cleaning service errors.
var (
	ErrReportNotFound    = errors.New("execution report not found")
	ErrStoreReport       = errors.New("storing execution report")
	ErrMissingDependency = errors.New("missing dependency")
)

// Cleaning runs robot paths and keeps their reports.
// The cache and the recent index are optional; failures in either are logged
// and never fail a request.
type Cleaning struct {
	robot  i.Robot
	repo   i.ReportRepo
	cache  i.ReportCache
	recent i.SortedQueue
	logger logger.Logger
}

// CleaningConfig holds the dependencies of a Cleaning service.
type CleaningConfig struct {
	Robot  i.Robot
	Repo   i.ReportRepo
	Cache  i.ReportCache // optional
	Recent i.SortedQueue // optional
	Logger logger.Logger
}

// NewCleaning creates a Cleaning service.
func NewCleaning(c CleaningConfig) (*Cleaning, error) {
	if c.Robot == nil || c.Repo == nil {
		return nil, fmt.Errorf("%w: robot and report repo are required", ErrMissingDependency)
	}
	if c.Logger == nil {
		c.Logger = logger.Discard()
	}

	return &Cleaning{
		robot:  c.Robot,
		repo:   c.Repo,
		cache:  c.Cache,
		recent: c.Recent,
		logger: c.Logger,
	}, nil
}

// Execute walks moves from start and stores the resulting report.
func (c *Cleaning) Execute(ctx context.Context, start path.Coordinate, moves []path.Move) (*domain.Report, error) {
	ctx, span := tracer.Start(ctx, "Cleaning.Execute", trace.WithAttributes(attribute.Int("cleaner.commands", len(moves))))
	defer span.End()

	report, err := c.robot.Run(start, moves)
	if err != nil {
		executionsTotal.WithLabelValues(statusRejected).Inc()
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	id, err := c.repo.Save(ctx, report)
	if err != nil {
		executionsTotal.WithLabelValues(statusStoreError).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "store failed")
		c.logger.Error(fmt.Sprintf("storing execution report: %s", err))
		return nil, fmt.Errorf("%w: %v", ErrStoreReport, err)
	}
	report.ID = id
	span.SetAttributes(attribute.Int("cleaner.report_id", id), attribute.Int("cleaner.result", report.Result))

	executionsTotal.WithLabelValues(statusSuccess).Inc()
	executionDuration.Observe(report.Duration)
	commandsPerExecution.Observe(float64(report.Commands))
	cellsCleanedTotal.Add(float64(report.Result))
	c.logger.Info(fmt.Sprintf("stored execution report: ID=%d Commands=%d Result=%d", report.ID, report.Commands, report.Result))

	c.cacheReport(ctx, report)
	if c.recent != nil {
		score := float64(report.Timestamp.UnixNano())
		if err := c.recent.Enqueue(ctx, recentQueueKey, score, strconv.Itoa(report.ID)); err != nil {
			c.logger.Warning(fmt.Sprintf("indexing execution report %d: %s", report.ID, err))
		} else {
			recentIndexSize.Set(float64(c.recent.Count(ctx, recentQueueKey)))
		}
	}

	return report, nil
}

// Report returns the stored report with the given ID.
func (c *Cleaning) Report(ctx context.Context, id int) (*domain.Report, error) {
	if c.cache != nil {
		cached, err := c.cache.Get(ctx, id)
		switch {
		case err != nil:
			reportCacheLookups.WithLabelValues("error").Inc()
			c.logger.Warning(fmt.Sprintf("reading cached report %d: %s", id, err))
		case cached != nil:
			reportCacheLookups.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			reportCacheLookups.WithLabelValues("miss").Inc()
		}
	}

	report, err := c.repo.ByID(ctx, id)
	if err != nil {
		c.logger.Error(fmt.Sprintf("fetching execution report %d: %s", id, err))
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}

	c.cacheReport(ctx, report)
	return report, nil
}

// Recent returns up to limit of the latest reports, newest first.
// A non-positive limit selects the default size.
func (c *Cleaning) Recent(ctx context.Context, limit int) ([]*domain.Report, error) {
	reports := make([]*domain.Report, 0)
	if c.recent == nil {
		return reports, nil
	}

	if limit <= 0 {
		limit = defaultRecentSize
	}
	limit = min(limit, maxRecentSize)

	members, err := c.recent.Tops(ctx, recentQueueKey, int64(limit))
	if err != nil {
		return nil, err
	}

	for _, member := range members {
		id, err := strconv.Atoi(member)
		if err != nil {
			c.logger.Warning(fmt.Sprintf("Non-integer value in recent index: %s", member))
			continue
		}

		report, err := c.Report(ctx, id)
		if errors.Is(err, ErrReportNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, nil
}

func (c *Cleaning) cacheReport(ctx context.Context, report *domain.Report) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, report); err != nil {
		c.logger.Warning(fmt.Sprintf("caching execution report %d: %s", report.ID, err))
	}
}
