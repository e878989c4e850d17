package i

import (
	"context"

	"github.com/beka-birhanu/cleaner-api/domain"
	"github.com/beka-birhanu/cleaner-api/path"
)

// Robot executes a list of moves from a starting cell.
type Robot interface {
	Run(start path.Coordinate, moves []path.Move) (*domain.Report, error)
}

// Cleaner runs paths and serves the stored execution reports.
type Cleaner interface {
	Execute(ctx context.Context, start path.Coordinate, moves []path.Move) (*domain.Report, error)
	Report(ctx context.Context, id int) (*domain.Report, error)
	Recent(ctx context.Context, limit int) ([]*domain.Report, error)
}
