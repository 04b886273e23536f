package postgres

import (
	"context"
	"database/sql"
	"time"

	"prospace-backend/internal/domain"
	"prospace-backend/internal/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const constraintUserEmail = "users_email_key"

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	query := `INSERT INTO users (id, name, email, password_hash, role, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Name, u.Email, u.PasswordHash, u.Role, now, now)
	if err != nil {
		if violatedConstraint(err) == constraintUserEmail {
			return domain.NewConflict("user already exists")
		}
		return err
	}
	u.CreatedOn = now.Format(time.RFC3339)
	u.UpdatedOn = now.Format(time.RFC3339)
	return nil
}

func (r *userRepository) getBy(ctx context.Context, where string, arg any) (*domain.User, error) {
	u := &domain.User{}
	var createdOn, updatedOn time.Time
	query := `SELECT id, name, email, password_hash, role, created_on, updated_on FROM users WHERE ` + where
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &createdOn, &updatedOn)
	if err != nil {
		return nil, notFoundOr(err, "user not found")
	}
	u.CreatedOn = createdOn.Format(time.RFC3339)
	u.UpdatedOn = updatedOn.Format(time.RFC3339)
	return u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getBy(ctx, `id = $1`, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, `email = $1`, email)
}
