package repository

import (
	"context"

	"prospace-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type DeskRepository interface {
	Create(ctx context.Context, desk *domain.Desk) error
	GetByID(ctx context.Context, id string) (*domain.Desk, error)
	GetByNumber(ctx context.Context, number string) (*domain.Desk, error)
	List(ctx context.Context) ([]domain.Desk, error)
	Update(ctx context.Context, desk *domain.Desk) error
	Delete(ctx context.Context, id string) error
}

type BookingRepository interface {
	// Create and Update report a uniqueness-constraint race on
	// (user, date) or (desk, date) as a domain Conflict error.
	Create(ctx context.Context, booking *domain.Booking) error
	Update(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ExistsForUserAndDate(ctx context.Context, userID, date, excludeID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
	ListByStatusAndDate(ctx context.Context, status domain.BookingStatus, date string) ([]domain.Booking, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	GetByUser(ctx context.Context, userID string) (*domain.Review, error)
	Update(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context, viewerID string) ([]domain.Review, error)
	ToggleLike(ctx context.Context, reviewID, userID string) error
}
