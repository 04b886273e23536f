package jobs

import (
	"context"
	"time"

	"prospace-backend/internal/domain"
	"prospace-backend/internal/logger"
)

// SendBookingReminders emails every user holding an APPROVED booking for
// tomorrow. A failed send is logged and the remaining reminders still go
// out.
func (jr *JobRunner) SendBookingReminders() {
	jr.runWithRecovery("SendBookingReminders", func() {
		ctx := context.Background()
		tomorrow := time.Now().UTC().Add(24 * time.Hour).Format("2006-01-02")

		bookings, err := jr.bookingRepo.ListByStatusAndDate(ctx, domain.BookingStatusApproved, tomorrow)
		if err != nil {
			logger.Error("Failed to list bookings for reminders", "error", err)
			return
		}

		sent := 0
		for _, b := range bookings {
			err := jr.emailSvc.SendBookingReminder(ctx, b.User.Email, b.User.Name, b.Desk.DeskNumber, b.Date)
			if err != nil {
				logger.Error("Failed to send booking reminder",
					"booking_id", b.ID, "user_id", b.UserID, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent booking reminders", "date", tomorrow, "count", sent)
	})
}
