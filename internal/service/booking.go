package service

import (
	"context"
	"time"

	"prospace-backend/internal/domain"
	"prospace-backend/internal/logger"
	"prospace-backend/internal/repository"
)

// bookingService is the booking lifecycle engine. It validates every
// transition up front, but the two composite unique indexes in the
// bookings table are the authority of record for (user, date) and
// (desk, date) uniqueness: any race that slips past a pre-check comes
// back from the repository as a domain Conflict.
type bookingService struct {
	bookingRepo repository.BookingRepository
	deskRepo    repository.DeskRepository
	emailSvc    EmailService
	adminEmail  string
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	deskRepo repository.DeskRepository,
	emailSvc EmailService,
	adminEmail string,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		deskRepo:    deskRepo,
		emailSvc:    emailSvc,
		adminEmail:  adminEmail,
	}
}

// todayISO is "today" at the moment of the call, on the UTC day boundary.
func todayISO() string {
	return time.Now().UTC().Format("2006-01-02")
}

// notifyAsync fires a notification after a transition has committed.
// The request context may be gone by the time the mail goes out, so the
// task gets its own. Failures are logged and never reach the caller.
func (s *bookingService) notifyAsync(event string, send func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := send(ctx); err != nil {
			logger.Error("Failed to send booking notification", "event", event, "error", err)
		}
	}()
}

// activeDesk loads the desk and checks it can take bookings.
func (s *bookingService) activeDesk(ctx context.Context, deskID string) (*domain.Desk, error) {
	desk, err := s.deskRepo.GetByID(ctx, deskID)
	if err != nil {
		return nil, err
	}
	if !desk.IsActive {
		return nil, domain.NewInvalidState("desk is not available")
	}
	return desk, nil
}

// Create inserts a new PENDING booking for the user. There is
// deliberately no past-date check here: only Update enforces one.
func (s *bookingService) Create(ctx context.Context, userID, deskID, date string) (*domain.Booking, error) {
	if deskID == "" || date == "" {
		return nil, domain.NewValidation("deskId and date are required")
	}
	if _, err := s.activeDesk(ctx, deskID); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		UserID: userID,
		DeskID: deskID,
		Date:   date,
		Status: domain.BookingStatusPending,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return s.bookingRepo.GetByID(ctx, booking.ID)
}

// Update moves a live booking to another desk and/or date. The explicit
// (user, date) pre-check exists because the unique index cannot express
// "excluding this row"; the index still backstops desk/date races.
func (s *bookingService) Update(ctx context.Context, bookingID, requesterID, deskID, date string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != requesterID {
		return nil, domain.NewForbidden("not your booking")
	}
	if !booking.Status.IsLive() {
		return nil, domain.NewInvalidState("cannot update - booking is rejected or cancelled")
	}
	if deskID == "" || date == "" {
		return nil, domain.NewValidation("deskId and date are required")
	}
	desk, err := s.deskRepo.GetByID(ctx, deskID)
	if err != nil {
		return nil, err
	}
	if !desk.IsActive {
		return nil, domain.NewValidation("desk is not available")
	}
	if date < todayISO() {
		return nil, domain.NewValidation("cannot update booking to past date")
	}
	taken, err := s.bookingRepo.ExistsForUserAndDate(ctx, requesterID, date, bookingID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.NewConflict("you already have a booking for this date")
	}

	booking.DeskID = deskID
	booking.Date = date
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return s.bookingRepo.GetByID(ctx, booking.ID)
}

// Cancel transitions a live booking to CANCELLED and notifies the admin
// channel. Cancelling is only meaningful before the booking date passes.
func (s *bookingService) Cancel(ctx context.Context, bookingID, requesterID, reason string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != requesterID {
		return nil, domain.NewForbidden("not your booking")
	}
	if !booking.Status.IsLive() {
		return nil, domain.NewInvalidState("cannot cancel - booking is already rejected or cancelled")
	}
	if booking.Date < todayISO() {
		return nil, domain.NewInvalidState("cannot cancel - booking date has passed")
	}

	booking.Status = domain.BookingStatusCancelled
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	userName, userEmail := booking.User.Name, booking.User.Email
	deskNumber, date := booking.Desk.DeskNumber, booking.Date
	s.notifyAsync("user cancelled booking", func(ctx context.Context) error {
		return s.emailSvc.SendUserCancelledToAdmin(ctx, s.adminEmail, userName, userEmail, deskNumber, date, reason)
	})

	return s.bookingRepo.GetByID(ctx, booking.ID)
}

// AdminCreate books on behalf of a user. Any requested status outside
// PENDING/APPROVED is silently coerced to PENDING.
func (s *bookingService) AdminCreate(ctx context.Context, userID, deskID, date string, status domain.BookingStatus) (*domain.Booking, error) {
	if userID == "" || deskID == "" || date == "" {
		return nil, domain.NewValidation("userId, deskId and date are required")
	}
	if _, err := s.activeDesk(ctx, deskID); err != nil {
		return nil, err
	}

	if status != domain.BookingStatusPending && status != domain.BookingStatusApproved {
		status = domain.BookingStatusPending
	}

	booking := &domain.Booking{
		UserID: userID,
		DeskID: deskID,
		Date:   date,
		Status: status,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return s.bookingRepo.GetByID(ctx, booking.ID)
}

// setStatus is the shared admin transition: no precondition on the
// current status, only existence.
func (s *bookingService) setStatus(ctx context.Context, bookingID string, status domain.BookingStatus) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	booking.Status = status
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return s.bookingRepo.GetByID(ctx, booking.ID)
}

func (s *bookingService) Approve(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.setStatus(ctx, bookingID, domain.BookingStatusApproved)
	if err != nil {
		return nil, err
	}
	to, name := booking.User.Email, booking.User.Name
	deskNumber, date := booking.Desk.DeskNumber, booking.Date
	s.notifyAsync("booking approved", func(ctx context.Context) error {
		return s.emailSvc.SendBookingApproved(ctx, to, name, deskNumber, date)
	})
	return booking, nil
}

func (s *bookingService) Reject(ctx context.Context, bookingID, reason string) (*domain.Booking, error) {
	booking, err := s.setStatus(ctx, bookingID, domain.BookingStatusRejected)
	if err != nil {
		return nil, err
	}
	to, name := booking.User.Email, booking.User.Name
	deskNumber, date := booking.Desk.DeskNumber, booking.Date
	s.notifyAsync("booking rejected", func(ctx context.Context) error {
		return s.emailSvc.SendBookingRejected(ctx, to, name, deskNumber, date, reason)
	})
	return booking, nil
}

func (s *bookingService) AdminCancel(ctx context.Context, bookingID, reason string) (*domain.Booking, error) {
	booking, err := s.setStatus(ctx, bookingID, domain.BookingStatusAdminCancelled)
	if err != nil {
		return nil, err
	}
	to, name := booking.User.Email, booking.User.Name
	deskNumber, date := booking.Desk.DeskNumber, booking.Date
	s.notifyAsync("booking cancelled by admin", func(ctx context.Context) error {
		return s.emailSvc.SendBookingAdminCancelled(ctx, to, name, deskNumber, date, reason)
	})
	return booking, nil
}

func (s *bookingService) MyHistory(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

func (s *bookingService) AdminAll(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.ListAll(ctx)
}

func (s *bookingService) AdminUserHistory(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}
