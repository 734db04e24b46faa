package model

import "time"

type Book struct {
	ID     int    `json:"-" db:"id"`
	ISBN   string `json:"isbn" db:"isbn"`
	Title  string `json:"title" db:"title"`
	Author string `json:"author" db:"author"`
	Year   int    `json:"year" db:"pb_year"`
}

type Review struct {
	ID        int       `json:"-" db:"id"`
	ReviewUid string    `json:"reviewUid" db:"review_uid"`
	BookISBN  string    `json:"-" db:"book_isbn"`
	UserID    int       `json:"-" db:"user_id"`
	UserEmail string    `json:"userEmail" db:"user_email"`
	Body      string    `json:"body" db:"body"`
	Rating    int       `json:"rating" db:"rating"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// NewReview is the write model for the review ledger.
type NewReview struct {
	BookISBN  string
	UserID    int
	UserEmail string
	Body      string
	Rating    int
}

// RatingSnapshot holds the aggregate numbers reported by the remote
// rating service at request time. Never persisted.
type RatingSnapshot struct {
	Average float64 `json:"averageScore"`
	Count   int     `json:"reviewsCount"`
}

// BookDetail is the composed view of a book: catalog record, remote
// aggregates when the rating service answered, and local reviews in
// submission order. Ratings stays nil when the remote lookup failed.
type BookDetail struct {
	Book            Book            `json:"book"`
	Ratings         *RatingSnapshot `json:"ratings,omitempty"`
	Reviews         []Review        `json:"reviews"`
	AlreadyReviewed bool            `json:"alreadyReviewed,omitempty"`
}

type SubmitReview struct {
	ISBN      string
	UserID    int
	UserEmail string
	Body      string
	Rating    int
}

type User struct {
	ID        int    `json:"id" db:"id"`
	FirstName string `json:"firstName" db:"user_firstname"`
	LastName  string `json:"lastName" db:"user_lastname"`
	Email     string `json:"email" db:"user_email"`
	Hash      string `json:"-" db:"user_hash"`
}

type RegisterRequest struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword        string `json:"oldPassword" validate:"required"`
	NewPassword        string `json:"newPassword" validate:"required,min=6"`
	ConfirmNewPassword string `json:"confirmNewPassword" validate:"required,eqfield=NewPassword"`
}

type SubmitReviewRequest struct {
	Body   string `json:"body" validate:"required"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
}

// ReviewCreatedEvent is published to kafka after a successful submission.
type ReviewCreatedEvent struct {
	EventID   string    `json:"eventID"`
	BookISBN  string    `json:"bookIsbn"`
	UserID    int       `json:"userID"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}
