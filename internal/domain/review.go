package domain

type Review struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Rating    int32  `json:"rating"` // 1..5
	Text      string `json:"text"`
	User      *User  `json:"user,omitempty"` // Populated on reads
	Likes     int32  `json:"likes"`
	LikedByMe bool   `json:"liked_by_me"`
	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}
