package i

import (
	"context"

	"github.com/beka-birhanu/cleaner-api/domain"
	"github.com/google/uuid"
)

// ReportRepo defines the interface for execution report persistence.
type ReportRepo interface {
	// Save stores a report and returns the identifier assigned to it.
	// The report's ID field is set to the same value.
	Save(ctx context.Context, report *domain.Report) (int, error)

	// ByID retrieves a report by its identifier.
	// Returns (nil, nil) when no report has that identifier.
	ByID(ctx context.Context, id int) (*domain.Report, error)
}

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(user *domain.User) error

	// ByID retrieves a user by their unique ID.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*domain.User, error)

	// ByUsername retrieves a user by their username.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByUsername(username string) (*domain.User, error)
}
