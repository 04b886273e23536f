package postgres

import (
	"context"
	"database/sql"

	"prospace-backend/internal/domain"
	"prospace-backend/internal/repository"

	"github.com/google/uuid"
)

type deskRepository struct {
	db *sql.DB
}

func NewDeskRepository(db *sql.DB) repository.DeskRepository {
	return &deskRepository{db: db}
}

const constraintDeskNumber = "desks_desk_number_key"

func translateDeskConflict(err error) error {
	if violatedConstraint(err) == constraintDeskNumber {
		return domain.NewConflict("desk number already in use")
	}
	return err
}

func (r *deskRepository) Create(ctx context.Context, d *domain.Desk) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	query := `INSERT INTO desks (id, desk_number, is_active) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, d.ID, d.DeskNumber, d.IsActive)
	if err != nil {
		return translateDeskConflict(err)
	}
	return nil
}

func (r *deskRepository) GetByID(ctx context.Context, id string) (*domain.Desk, error) {
	d := &domain.Desk{}
	query := `SELECT id, desk_number, is_active FROM desks WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.DeskNumber, &d.IsActive)
	if err != nil {
		return nil, notFoundOr(err, "desk not found")
	}
	return d, nil
}

func (r *deskRepository) GetByNumber(ctx context.Context, number string) (*domain.Desk, error) {
	d := &domain.Desk{}
	query := `SELECT id, desk_number, is_active FROM desks WHERE desk_number = $1`
	err := r.db.QueryRowContext(ctx, query, number).Scan(&d.ID, &d.DeskNumber, &d.IsActive)
	if err != nil {
		return nil, notFoundOr(err, "desk not found")
	}
	return d, nil
}

func (r *deskRepository) List(ctx context.Context) ([]domain.Desk, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, desk_number, is_active FROM desks ORDER BY desk_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var desks []domain.Desk
	for rows.Next() {
		var d domain.Desk
		if err := rows.Scan(&d.ID, &d.DeskNumber, &d.IsActive); err != nil {
			return nil, err
		}
		desks = append(desks, d)
	}
	return desks, rows.Err()
}

func (r *deskRepository) Update(ctx context.Context, d *domain.Desk) error {
	query := `UPDATE desks SET desk_number=$1, is_active=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, d.DeskNumber, d.IsActive, d.ID)
	if err != nil {
		return translateDeskConflict(err)
	}
	return nil
}

func (r *deskRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM desks WHERE id = $1`, id)
	return err
}
