package repository

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/ybenali/rental-service/internal/apperrors"
)

// Postgres error codes surfaced as application errors.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// mapConstraint converts Postgres constraint violations into the
// application error taxonomy: unique violations become conflicts,
// foreign-key violations mean the referenced row does not exist.
func mapConstraint(err error, conflictMsg, refEntity string, refID int64) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return apperrors.Conflictf("%s", conflictMsg)
		case pqForeignKeyViolation:
			return apperrors.NotFound(refEntity, refID)
		}
	}
	return err
}

// mapForeignKey is mapConstraint for tables with no unique constraint:
// only a foreign-key violation can occur on insert.
func mapForeignKey(err error, refEntity string, refID int64) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
		return apperrors.NotFound(refEntity, refID)
	}
	return err
}
