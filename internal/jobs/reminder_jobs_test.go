package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"prospace-backend/internal/config"
	"prospace-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type stubBookingRepo struct {
	mock.Mock
}

func (s *stubBookingRepo) Create(ctx context.Context, b *domain.Booking) error { return nil }
func (s *stubBookingRepo) Update(ctx context.Context, b *domain.Booking) error { return nil }
func (s *stubBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return nil, nil
}
func (s *stubBookingRepo) ExistsForUserAndDate(ctx context.Context, userID, date, excludeID string) (bool, error) {
	return false, nil
}
func (s *stubBookingRepo) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return nil, nil
}
func (s *stubBookingRepo) ListAll(ctx context.Context) ([]domain.Booking, error) { return nil, nil }
func (s *stubBookingRepo) ListByStatusAndDate(ctx context.Context, status domain.BookingStatus, date string) ([]domain.Booking, error) {
	args := s.Called(ctx, status, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type stubEmailService struct {
	mock.Mock
}

func (s *stubEmailService) SendBookingApproved(ctx context.Context, to, userName, deskNumber, date string) error {
	return nil
}
func (s *stubEmailService) SendBookingRejected(ctx context.Context, to, userName, deskNumber, date, reason string) error {
	return nil
}
func (s *stubEmailService) SendBookingAdminCancelled(ctx context.Context, to, userName, deskNumber, date, reason string) error {
	return nil
}
func (s *stubEmailService) SendUserCancelledToAdmin(ctx context.Context, adminEmail, userName, userEmail, deskNumber, date, reason string) error {
	return nil
}
func (s *stubEmailService) SendBookingReminder(ctx context.Context, to, userName, deskNumber, date string) error {
	args := s.Called(ctx, to, userName, deskNumber, date)
	return args.Error(0)
}

func reminderFixture(id, email, name, desk string) domain.Booking {
	return domain.Booking{
		ID:     id,
		UserID: "user-" + id,
		DeskID: "desk-" + id,
		Date:   time.Now().UTC().Add(24 * time.Hour).Format("2006-01-02"),
		Status: domain.BookingStatusApproved,
		User:   &domain.User{Email: email, Name: name},
		Desk:   &domain.Desk{DeskNumber: desk, IsActive: true},
	}
}

func TestSendBookingReminders(t *testing.T) {
	repo := new(stubBookingRepo)
	emailSvc := new(stubEmailService)
	runner := NewJobRunner(repo, emailSvc, &config.Config{})

	tomorrow := time.Now().UTC().Add(24 * time.Hour).Format("2006-01-02")
	repo.On("ListByStatusAndDate", mock.Anything, domain.BookingStatusApproved, tomorrow).
		Return([]domain.Booking{
			reminderFixture("1", "alice@example.com", "Alice Nguyen", "D-101"),
			reminderFixture("2", "bob@example.com", "Bob Okafor", "D-102"),
		}, nil)
	emailSvc.On("SendBookingReminder", mock.Anything, "alice@example.com", "Alice Nguyen", "D-101", tomorrow).Return(nil)
	emailSvc.On("SendBookingReminder", mock.Anything, "bob@example.com", "Bob Okafor", "D-102", tomorrow).Return(nil)

	runner.SendBookingReminders()

	repo.AssertExpectations(t)
	emailSvc.AssertExpectations(t)
}

// One failed send must not stop the rest of the batch.
func TestSendBookingReminders_ContinuesAfterFailure(t *testing.T) {
	repo := new(stubBookingRepo)
	emailSvc := new(stubEmailService)
	runner := NewJobRunner(repo, emailSvc, &config.Config{})

	tomorrow := time.Now().UTC().Add(24 * time.Hour).Format("2006-01-02")
	repo.On("ListByStatusAndDate", mock.Anything, domain.BookingStatusApproved, tomorrow).
		Return([]domain.Booking{
			reminderFixture("1", "alice@example.com", "Alice Nguyen", "D-101"),
			reminderFixture("2", "bob@example.com", "Bob Okafor", "D-102"),
		}, nil)
	emailSvc.On("SendBookingReminder", mock.Anything, "alice@example.com", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp unavailable"))
	emailSvc.On("SendBookingReminder", mock.Anything, "bob@example.com", mock.Anything, mock.Anything, mock.Anything).
		Return(nil)

	runner.SendBookingReminders()

	emailSvc.AssertNumberOfCalls(t, "SendBookingReminder", 2)
}

func TestSendBookingReminders_ListFailure(t *testing.T) {
	repo := new(stubBookingRepo)
	emailSvc := new(stubEmailService)
	runner := NewJobRunner(repo, emailSvc, &config.Config{})

	repo.On("ListByStatusAndDate", mock.Anything, domain.BookingStatusApproved, mock.Anything).
		Return(nil, errors.New("db down"))

	assert.NotPanics(t, func() { runner.SendBookingReminders() })
	emailSvc.AssertNotCalled(t, "SendBookingReminder", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
