package domain

type BookingStatus string

const (
	BookingStatusPending        BookingStatus = "PENDING"
	BookingStatusApproved       BookingStatus = "APPROVED"
	BookingStatusRejected       BookingStatus = "REJECTED"
	BookingStatusCancelled      BookingStatus = "CANCELLED"
	BookingStatusAdminCancelled BookingStatus = "ADMIN_CANCELLED"
)

// IsLive reports whether the booking is still mutable. REJECTED,
// CANCELLED and ADMIN_CANCELLED are terminal.
func (s BookingStatus) IsLive() bool {
	return s == BookingStatusPending || s == BookingStatusApproved
}

type Booking struct {
	ID     string        `json:"id"`
	UserID string        `json:"user_id"`
	DeskID string        `json:"desk_id"`
	// Date is a calendar date in YYYY-MM-DD form, never a timestamp.
	// Past/future checks compare these strings lexically.
	Date      string        `json:"date"`
	Status    BookingStatus `json:"status"`
	User      *User         `json:"user,omitempty"` // Populated on admin reads
	Desk      *Desk         `json:"desk,omitempty"` // Populated on reads
	CreatedOn string        `json:"created_on"`
	UpdatedOn string        `json:"updated_on"`
}
