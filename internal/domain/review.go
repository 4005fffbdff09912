package domain

type Review struct {
	ID         string  `json:"id"`
	UserID     string  `json:"userId"`
	UserName   string  `json:"userName"`
	Rating     int     `json:"rating"`
	Comment    string  `json:"comment"`
	Date       string  `json:"date"` // YYYY-MM-DD, assigned by the store
	UserAvatar *string `json:"userAvatar,omitempty"`
}

// NewReview is what a client submits; id and date are assigned on append.
type NewReview struct {
	UserID     string  `json:"userId" validate:"required"`
	UserName   string  `json:"userName" validate:"required"`
	Rating     int     `json:"rating" validate:"required,min=1,max=5"`
	Comment    string  `json:"comment" validate:"required"`
	UserAvatar *string `json:"userAvatar,omitempty"`
}

// DateLayout is the calendar-day format of Review.Date.
const DateLayout = "2006-01-02"
