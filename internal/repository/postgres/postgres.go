package postgres

import (
	"database/sql"
	"errors"

	"prospace-backend/internal/domain"
	"prospace-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.DeskRepository
	repository.BookingRepository
	repository.ReviewRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		UserRepository:    NewUserRepository(db),
		DeskRepository:    NewDeskRepository(db),
		BookingRepository: NewBookingRepository(db),
		ReviewRepository:  NewReviewRepository(db),
	}
}

// uniqueViolation is the Postgres SQLSTATE for a unique-constraint breach.
const uniqueViolation = "23505"

// violatedConstraint returns the name of the breached unique constraint,
// or "" if err is not a unique violation. The constraint check-then-write
// races in the services are closed here: whatever slipped past a pre-check
// surfaces as a violation on one of these constraints.
func violatedConstraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return pqErr.Constraint
	}
	return ""
}

func notFoundOr(err error, message string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewNotFound(message)
	}
	return err
}
