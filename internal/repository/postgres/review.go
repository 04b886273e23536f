package postgres

import (
	"context"
	"database/sql"
	"time"

	"prospace-backend/internal/domain"
	"prospace-backend/internal/repository"

	"github.com/google/uuid"
)

type reviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

const constraintReviewUser = "reviews_user_key"

func (r *reviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	if rv.ID == "" {
		rv.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	query := `INSERT INTO reviews (id, user_id, rating, text, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, rv.ID, rv.UserID, rv.Rating, rv.Text, now, now)
	if err != nil {
		if violatedConstraint(err) == constraintReviewUser {
			return domain.NewConflict("you have already submitted a review - you can update it instead")
		}
		return err
	}
	rv.CreatedOn = now.Format(time.RFC3339)
	rv.UpdatedOn = now.Format(time.RFC3339)
	return nil
}

const reviewSelect = `SELECT r.id, r.user_id, r.rating, r.text, r.created_on, r.updated_on,
	       u.name, u.email,
	       (SELECT count(*) FROM review_likes l WHERE l.review_id = r.id) AS likes
	FROM reviews r
	JOIN users u ON u.id = r.user_id`

func scanReview(row interface{ Scan(dest ...any) error }) (*domain.Review, error) {
	rv := &domain.Review{User: &domain.User{}}
	var createdOn, updatedOn time.Time
	err := row.Scan(&rv.ID, &rv.UserID, &rv.Rating, &rv.Text, &createdOn, &updatedOn,
		&rv.User.Name, &rv.User.Email, &rv.Likes)
	if err != nil {
		return nil, err
	}
	rv.User.ID = rv.UserID
	rv.CreatedOn = createdOn.Format(time.RFC3339)
	rv.UpdatedOn = updatedOn.Format(time.RFC3339)
	return rv, nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	row := r.db.QueryRowContext(ctx, reviewSelect+` WHERE r.id = $1`, id)
	rv, err := scanReview(row)
	if err != nil {
		return nil, notFoundOr(err, "review not found")
	}
	return rv, nil
}

func (r *reviewRepository) GetByUser(ctx context.Context, userID string) (*domain.Review, error) {
	row := r.db.QueryRowContext(ctx, reviewSelect+` WHERE r.user_id = $1`, userID)
	rv, err := scanReview(row)
	if err != nil {
		return nil, notFoundOr(err, "review not found")
	}
	return rv, nil
}

func (r *reviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	now := time.Now().UTC()
	query := `UPDATE reviews SET rating=$1, text=$2, updated_on=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, rv.Rating, rv.Text, now, rv.ID)
	if err != nil {
		return err
	}
	rv.UpdatedOn = now.Format(time.RFC3339)
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	return err
}

func (r *reviewRepository) ListAll(ctx context.Context, viewerID string) ([]domain.Review, error) {
	query := `SELECT r.id, r.user_id, r.rating, r.text, r.created_on, r.updated_on,
	       u.name, u.email,
	       (SELECT count(*) FROM review_likes l WHERE l.review_id = r.id) AS likes,
	       EXISTS (SELECT 1 FROM review_likes l WHERE l.review_id = r.id AND l.user_id = $1) AS liked_by_me
	FROM reviews r
	JOIN users u ON u.id = r.user_id
	ORDER BY r.created_on DESC`

	rows, err := r.db.QueryContext(ctx, query, viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		rv := domain.Review{User: &domain.User{}}
		var createdOn, updatedOn time.Time
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.Rating, &rv.Text, &createdOn, &updatedOn,
			&rv.User.Name, &rv.User.Email, &rv.Likes, &rv.LikedByMe); err != nil {
			return nil, err
		}
		rv.User.ID = rv.UserID
		rv.CreatedOn = createdOn.Format(time.RFC3339)
		rv.UpdatedOn = updatedOn.Format(time.RFC3339)
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

// ToggleLike removes the viewer's like if present, otherwise adds it.
func (r *reviewRepository) ToggleLike(ctx context.Context, reviewID, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM review_likes WHERE review_id = $1 AND user_id = $2`, reviewID, userID)
	if err != nil {
		return err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if deleted > 0 {
		return nil
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO review_likes (review_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		reviewID, userID)
	return err
}
