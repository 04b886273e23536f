package domain

type Desk struct {
	ID         string `json:"id"`
	DeskNumber string `json:"desk_number"`
	IsActive   bool   `json:"is_active"`
}
