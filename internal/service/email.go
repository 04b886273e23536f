package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func reasonOrDefault(reason string) string {
	if reason == "" {
		return "No reason provided."
	}
	return reason
}

func (s *emailService) SendBookingApproved(ctx context.Context, to, userName, deskNumber, date string) error {
	body := fmt.Sprintf("Hi %s,\n\nYour desk booking has been approved by the admin.\n\nDetails:\n- Desk: %s\n- Date: %s\n\nYou can view your bookings in the ProSpace app.\n\n- The ProSpace Team",
		userName, deskNumber, date)
	return s.send(to, "ProSpace - Your desk booking has been approved", body)
}

func (s *emailService) SendBookingRejected(ctx context.Context, to, userName, deskNumber, date, reason string) error {
	body := fmt.Sprintf("Hi %s,\n\nYour desk booking has been rejected by the admin.\n\nDetails:\n- Desk: %s\n- Date: %s\n\nReason: %s\n\nYou can book another desk from the ProSpace app.\n\n- The ProSpace Team",
		userName, deskNumber, date, reasonOrDefault(reason))
	return s.send(to, "ProSpace - Your desk booking was rejected", body)
}

func (s *emailService) SendBookingAdminCancelled(ctx context.Context, to, userName, deskNumber, date, reason string) error {
	body := fmt.Sprintf("Hi %s,\n\nYour desk booking has been cancelled by the admin.\n\nDetails:\n- Desk: %s\n- Date: %s\n\nReason: %s\n\nYou can book another desk from the ProSpace app.\n\n- The ProSpace Team",
		userName, deskNumber, date, reasonOrDefault(reason))
	return s.send(to, "ProSpace - Your desk booking was cancelled by admin", body)
}

func (s *emailService) SendUserCancelledToAdmin(ctx context.Context, adminEmail, userName, userEmail, deskNumber, date, reason string) error {
	body := fmt.Sprintf("A user has cancelled their desk booking.\n\nDetails:\n- User: %s (%s)\n- Desk: %s\n- Date: %s\n\nReason: %s\n\n- The ProSpace System",
		userName, userEmail, deskNumber, date, reasonOrDefault(reason))
	return s.send(adminEmail, "ProSpace - User cancelled a booking", body)
}

func (s *emailService) SendBookingReminder(ctx context.Context, to, userName, deskNumber, date string) error {
	body := fmt.Sprintf("Hi %s,\n\nA reminder for your approved desk booking tomorrow.\n\nDetails:\n- Desk: %s\n- Date: %s\n\nSee you at the office!\n\n- The ProSpace Team",
		userName, deskNumber, date)
	return s.send(to, "ProSpace - Desk booking reminder", body)
}
