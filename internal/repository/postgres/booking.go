package postgres

import (
	"context"
	"database/sql"
	"time"

	"prospace-backend/internal/domain"
	"prospace-backend/internal/repository"

	"github.com/google/uuid"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// Constraint names declared in the initial migration. They decide which
// Conflict message the caller sees.
const (
	constraintUserDate = "bookings_user_date_key"
	constraintDeskDate = "bookings_desk_date_key"
)

func translateBookingConflict(err error) error {
	switch violatedConstraint(err) {
	case constraintUserDate:
		return domain.NewConflict("you already have a booking for that date - it may have just been created")
	case constraintDeskDate:
		return domain.NewConflict("this desk is already booked for that date - someone else may have just booked it")
	default:
		return err
	}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	query := `INSERT INTO bookings (id, user_id, desk_id, date, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, b.ID, b.UserID, b.DeskID, b.Date, b.Status, now, now)
	if err != nil {
		return translateBookingConflict(err)
	}
	b.CreatedOn = now.Format(time.RFC3339)
	b.UpdatedOn = now.Format(time.RFC3339)
	return nil
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	now := time.Now().UTC()
	query := `UPDATE bookings SET desk_id=$1, date=$2, status=$3, updated_on=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, b.DeskID, b.Date, b.Status, now, b.ID)
	if err != nil {
		return translateBookingConflict(err)
	}
	b.UpdatedOn = now.Format(time.RFC3339)
	return nil
}

const bookingSelect = `SELECT b.id, b.user_id, b.desk_id, b.date, b.status, b.created_on, b.updated_on,
	       d.desk_number, d.is_active, u.name, u.email
	FROM bookings b
	JOIN desks d ON d.id = b.desk_id
	JOIN users u ON u.id = b.user_id`

func scanBooking(row interface{ Scan(dest ...any) error }) (*domain.Booking, error) {
	b := &domain.Booking{Desk: &domain.Desk{}, User: &domain.User{}}
	var createdOn, updatedOn time.Time
	err := row.Scan(&b.ID, &b.UserID, &b.DeskID, &b.Date, &b.Status, &createdOn, &updatedOn,
		&b.Desk.DeskNumber, &b.Desk.IsActive, &b.User.Name, &b.User.Email)
	if err != nil {
		return nil, err
	}
	b.Desk.ID = b.DeskID
	b.User.ID = b.UserID
	b.CreatedOn = createdOn.Format(time.RFC3339)
	b.UpdatedOn = updatedOn.Format(time.RFC3339)
	return b, nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	row := r.db.QueryRowContext(ctx, bookingSelect+` WHERE b.id = $1`, id)
	b, err := scanBooking(row)
	if err != nil {
		return nil, notFoundOr(err, "booking not found")
	}
	return b, nil
}

// ExistsForUserAndDate reports whether the user holds any other booking
// row for the date, regardless of status. Cancelled rows count: they
// still occupy the (user, date) slot.
func (r *bookingRepository) ExistsForUserAndDate(ctx context.Context, userID, date, excludeID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM bookings WHERE user_id = $1 AND date = $2 AND id <> $3)`
	err := r.db.QueryRowContext(ctx, query, userID, date, excludeID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return r.queryBookings(ctx, bookingSelect+` WHERE b.user_id = $1 ORDER BY b.date DESC`, userID)
}

func (r *bookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	return r.queryBookings(ctx, bookingSelect+` ORDER BY b.created_on DESC`)
}

func (r *bookingRepository) ListByStatusAndDate(ctx context.Context, status domain.BookingStatus, date string) ([]domain.Booking, error) {
	return r.queryBookings(ctx, bookingSelect+` WHERE b.status = $1 AND b.date = $2 ORDER BY d.desk_number`, status, date)
}
