package service

import (
	"context"

	"prospace-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error) // token, user
}

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
}

type DeskService interface {
	Create(ctx context.Context, number string) (*domain.Desk, error)
	Get(ctx context.Context, id string) (*domain.Desk, error)
	List(ctx context.Context) ([]domain.Desk, error)
	Update(ctx context.Context, id string, number *string, active *bool) (*domain.Desk, error)
	Delete(ctx context.Context, id string) error
}

type BookingService interface {
	Create(ctx context.Context, userID, deskID, date string) (*domain.Booking, error)
	Update(ctx context.Context, bookingID, requesterID, deskID, date string) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, requesterID, reason string) (*domain.Booking, error)
	AdminCreate(ctx context.Context, userID, deskID, date string, status domain.BookingStatus) (*domain.Booking, error)
	Approve(ctx context.Context, bookingID string) (*domain.Booking, error)
	Reject(ctx context.Context, bookingID, reason string) (*domain.Booking, error)
	AdminCancel(ctx context.Context, bookingID, reason string) (*domain.Booking, error)
	MyHistory(ctx context.Context, userID string) ([]domain.Booking, error)
	AdminAll(ctx context.Context) ([]domain.Booking, error)
	AdminUserHistory(ctx context.Context, userID string) ([]domain.Booking, error)
}

type ReviewService interface {
	Create(ctx context.Context, userID string, rating int32, text string) (*domain.Review, error)
	Update(ctx context.Context, reviewID, requesterID string, rating *int32, text *string) (*domain.Review, error)
	Delete(ctx context.Context, reviewID, requesterID string) error
	Mine(ctx context.Context, userID string) (*domain.Review, error)
	ListAll(ctx context.Context, viewerID string) ([]domain.Review, error)
	ToggleLike(ctx context.Context, reviewID, userID string) (*domain.Review, error)
}

type EmailService interface {
	SendBookingApproved(ctx context.Context, to, userName, deskNumber, date string) error
	SendBookingRejected(ctx context.Context, to, userName, deskNumber, date, reason string) error
	SendBookingAdminCancelled(ctx context.Context, to, userName, deskNumber, date, reason string) error
	SendUserCancelledToAdmin(ctx context.Context, adminEmail, userName, userEmail, deskNumber, date, reason string) error
	SendBookingReminder(ctx context.Context, to, userName, deskNumber, date string) error
}
