package entity

import "time"

// UserCourse is a row in the `user_courses` table: one enrollment of a user
// into a course. Course ids are drawn over the full course set with no
// regard to language fit; the dataset keeps that simplification.
type UserCourse struct {
	UserID       int64     `db:"user_id"`
	CourseID     int       `db:"course_id"`
	StartDate    time.Time `db:"start_date"`
	CurrentLevel int       `db:"current_level"`
	TotalXP      int       `db:"total_xp"`
	CrownCount   int       `db:"crown_count"`
	LingotCount  int       `db:"lingot_count"`
}

// DailyActivity is a row in the `daily_activity` table: one row per calendar
// day from signup through the reference date.
type DailyActivity struct {
	UserID           int64     `db:"user_id"`
	ActivityDate     time.Time `db:"activity_date"`
	LessonsCompleted int       `db:"lessons_completed"`
	XPGained         int       `db:"xp_gained"`
	TimeSpentMinutes float64   `db:"time_spent_minutes"`
	StreakDays       int       `db:"streak_days"`
	DailyGoalMet     bool      `db:"daily_goal_met"`
	LeaderboardRank  *int      `db:"leaderboard_rank"`
	PremiumActive    bool      `db:"premium_active"`
}

// Active reports whether the day saw any completed lessons.
func (a DailyActivity) Active() bool { return a.LessonsCompleted > 0 }

// Session is a row in the `sessions` table. UserCourseID is nil when no
// enrollment for the user was visible in the generating batch.
type Session struct {
	ID                 string    `db:"id"`
	UserID             int64     `db:"user_id"`
	UserCourseID       *int      `db:"user_course_id"`
	SessionStart       time.Time `db:"session_start"`
	SessionEnd         time.Time `db:"session_end"`
	ExercisesCompleted int       `db:"exercises_completed"`
	AccuracyPercentage float64   `db:"accuracy_percentage"`
	SkillPracticed     string    `db:"skill_practiced"`
	HeartsLost         int       `db:"hearts_lost"`
	GemsEarned         int       `db:"gems_earned"`
}

// Notification is a row in the `notifications` table.
// ResponseTimeSeconds is present exactly when the notification was clicked.
type Notification struct {
	ID                  string    `db:"id"`
	UserID              int64     `db:"user_id"`
	SentDate            time.Time `db:"sent_date"`
	NotificationType    string    `db:"notification_type"`
	Opened              bool      `db:"opened"`
	Clicked             bool      `db:"clicked"`
	ResponseTimeSeconds *int      `db:"response_time_seconds"`
	Channel             string    `db:"channel"`
}

// ChurnLabel is a row in the `churn_labels` table: one summary per user,
// computed after the full activity series.
type ChurnLabel struct {
	UserID               int64      `db:"user_id"`
	ChurnFlag            bool       `db:"churn_flag"`
	ChurnDate            *time.Time `db:"churn_date"`
	LastActiveDate       *time.Time `db:"last_active_date"`
	ChurnReasonCategory  *string    `db:"churn_reason_category"`
	RetentionDays        int        `db:"retention_days"`
	ReactivationAttempts int        `db:"reactivation_attempts"`
}
