package i

import (
	"context"

	"github.com/beka-birhanu/cleaner-api/domain"
)

// ReportCache keeps recently served reports close to the API.
type ReportCache interface {
	// Get returns the cached report, or (nil, nil) on a miss.
	Get(ctx context.Context, id int) (*domain.Report, error)
	Set(ctx context.Context, report *domain.Report) error
}

// SortedQueue is a bounded, score-ordered set of members.
type SortedQueue interface {
	// Enqueue adds member with score and drops the lowest scored members
	// beyond the queue capacity.
	Enqueue(ctx context.Context, queueKey string, score float64, member string) error

	// Tops returns up to amount members with the highest scores, highest first.
	Tops(ctx context.Context, queueKey string, amount int64) ([]string, error)

	// Count returns the number of members in the queue.
	Count(ctx context.Context, queueKey string) int64
}
