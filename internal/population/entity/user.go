package entity

import "time"

// User is a row in the `users` table. Rows are immutable once generated;
// UserID is the 0-based position in the generated population.
type User struct {
	UserID             int64     `db:"user_id"`
	SignupDate         time.Time `db:"signup_date"`
	Age                int       `db:"age"`
	Gender             string    `db:"gender"`
	Country            string    `db:"country"`
	DeviceType         string    `db:"device_type"`
	ReferralSource     string    `db:"referral_source"`
	LearningMotivation string    `db:"learning_motivation"`
	EmailVerified      bool      `db:"email_verified"`
	PremiumSubscribed  bool      `db:"premium_subscribed"`
}

// ChurnOutcome is computed alongside each user and kept in memory for the
// behavioral simulation; it is not a table of its own. ChurnDate is nil for
// users retained past the reference date.
type ChurnOutcome struct {
	IsChurner bool
	ChurnDate *time.Time
}
