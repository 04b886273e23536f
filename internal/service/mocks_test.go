package service_test

import (
	"context"

	"prospace-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) Update(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ExistsForUserAndDate(ctx context.Context, userID, date, excludeID string) (bool, error) {
	args := m.Called(ctx, userID, date, excludeID)
	return args.Bool(0), args.Error(1)
}
func (m *MockBookingRepo) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByStatusAndDate(ctx context.Context, status domain.BookingStatus, date string) ([]domain.Booking, error) {
	args := m.Called(ctx, status, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

// MockDeskRepo
type MockDeskRepo struct {
	mock.Mock
}

func (m *MockDeskRepo) Create(ctx context.Context, desk *domain.Desk) error {
	args := m.Called(ctx, desk)
	return args.Error(0)
}
func (m *MockDeskRepo) GetByID(ctx context.Context, id string) (*domain.Desk, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Desk), args.Error(1)
}
func (m *MockDeskRepo) GetByNumber(ctx context.Context, number string) (*domain.Desk, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Desk), args.Error(1)
}
func (m *MockDeskRepo) List(ctx context.Context) ([]domain.Desk, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Desk), args.Error(1)
}
func (m *MockDeskRepo) Update(ctx context.Context, desk *domain.Desk) error {
	args := m.Called(ctx, desk)
	return args.Error(0)
}
func (m *MockDeskRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockReviewRepo
type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}
func (m *MockReviewRepo) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}
func (m *MockReviewRepo) GetByUser(ctx context.Context, userID string) (*domain.Review, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}
func (m *MockReviewRepo) Update(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}
func (m *MockReviewRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockReviewRepo) ListAll(ctx context.Context, viewerID string) ([]domain.Review, error) {
	args := m.Called(ctx, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}
func (m *MockReviewRepo) ToggleLike(ctx context.Context, reviewID, userID string) error {
	args := m.Called(ctx, reviewID, userID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingApproved(ctx context.Context, to, userName, deskNumber, date string) error {
	args := m.Called(ctx, to, userName, deskNumber, date)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingRejected(ctx context.Context, to, userName, deskNumber, date, reason string) error {
	args := m.Called(ctx, to, userName, deskNumber, date, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingAdminCancelled(ctx context.Context, to, userName, deskNumber, date, reason string) error {
	args := m.Called(ctx, to, userName, deskNumber, date, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendUserCancelledToAdmin(ctx context.Context, adminEmail, userName, userEmail, deskNumber, date, reason string) error {
	args := m.Called(ctx, adminEmail, userName, userEmail, deskNumber, date, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingReminder(ctx context.Context, to, userName, deskNumber, date string) error {
	args := m.Called(ctx, to, userName, deskNumber, date)
	return args.Error(0)
}
