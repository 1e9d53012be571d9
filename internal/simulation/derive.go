package simulation

import (
	"time"

	"github.com/ovaphlow/pitchfork/service-datagen-go/internal/population/entity"
	"github.com/ovaphlow/pitchfork/service-datagen-go/internal/random"
	simentity "github.com/ovaphlow/pitchfork/service-datagen-go/internal/simulation/entity"
	"github.com/ovaphlow/pitchfork/service-datagen-go/pkg/utilities"
)

// minSessionMinutes floors the Normal(10, 3) duration draw so a session
// always ends after it starts.
const minSessionMinutes = 1.0

var (
	skills       = []string{"Vocabulary", "Grammar", "Listening", "Speaking"}
	notifTypes   = []string{"Streak Reminder", "Progress Update", "Friend Challenge", "Daily Goal"}
	channels     = []string{"Push", "Email", "In-App"}
	churnReasons = []string{"Inactivity", "Difficulty", "Time Constraints"}
)

// Enrollments draws 1-3 course enrollments for a user. Course ids are
// uniform over [1, courseCount] regardless of the user's languages.
//
// Per enrollment: course id, level, xp, crowns, lingots.
func Enrollments(rng *random.Source, userID int64, signup time.Time, courseCount int) []simentity.UserCourse {
	n := rng.IntBetween(1, 3)
	out := make([]simentity.UserCourse, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, simentity.UserCourse{
			UserID:       userID,
			CourseID:     rng.IntBetween(1, courseCount),
			StartDate:    signup,
			CurrentLevel: rng.IntBetween(1, 50),
			TotalXP:      rng.IntBetween(0, 10000),
			CrownCount:   rng.IntBetween(0, 200),
			LingotCount:  rng.IntBetween(0, 500),
		})
	}
	return out
}

// Sessions derives 1-3 session rows for each active day of the series.
// userCourseID comes from a batch-local lookup and may be nil when the
// user's enrollments were not generated in the same batch.
//
// Per session: start time-of-day, duration, exercises, accuracy, skill,
// hearts, gems.
func Sessions(rng *random.Source, userID int64, userCourseID *int, activity []simentity.DailyActivity) []simentity.Session {
	var out []simentity.Session
	for _, day := range activity {
		if !day.Active() {
			continue
		}
		n := rng.IntBetween(1, 3)
		for i := 0; i < n; i++ {
			start := day.ActivityDate.Add(rng.TimeOfDay())
			minutes := rng.Normal(10, 3)
			if minutes < minSessionMinutes {
				minutes = minSessionMinutes
			}
			out = append(out, simentity.Session{
				ID:                 utilities.NewKSUID(),
				UserID:             userID,
				UserCourseID:       userCourseID,
				SessionStart:       start,
				SessionEnd:         start.Add(time.Duration(minutes * float64(time.Minute))),
				ExercisesCompleted: rng.Poisson(10),
				AccuracyPercentage: clamp(rng.Normal(85, 10), 50, 100),
				SkillPracticed:     rng.Pick(skills),
				HeartsLost:         rng.IntBetween(0, 5),
				GemsEarned:         rng.IntBetween(0, 20),
			})
		}
	}
	return out
}

// Notifications emits, for each day of the series regardless of activity,
// one notification with probability 0.3.
//
// Per notification: send time-of-day, type, opened, clicked (drawn only
// when opened), response seconds (only when clicked), channel.
func Notifications(rng *random.Source, userID int64, activity []simentity.DailyActivity) []simentity.Notification {
	var out []simentity.Notification
	for _, day := range activity {
		if rng.Float64() >= 0.3 {
			continue
		}
		n := simentity.Notification{
			ID:               utilities.NewKSUID(),
			UserID:           userID,
			SentDate:         day.ActivityDate.Add(rng.TimeOfDay()),
			NotificationType: rng.Pick(notifTypes),
			Opened:           rng.Bernoulli(0.6),
		}
		if n.Opened {
			n.Clicked = rng.Bernoulli(0.5)
		}
		if n.Clicked {
			secs := rng.IntBetween(10, 3600)
			n.ResponseTimeSeconds = &secs
		}
		n.Channel = rng.Pick(channels)
		out = append(out, n)
	}
	return out
}

// Label summarizes a user's series into one churn label row. Retention is
// measured signup to last active day, zero when the user was never active.
//
// For churners: reason, then reactivation attempts.
func Label(rng *random.Source, userID int64, signup time.Time, outcome entity.ChurnOutcome, activity []simentity.DailyActivity) simentity.ChurnLabel {
	label := simentity.ChurnLabel{
		UserID:    userID,
		ChurnFlag: outcome.IsChurner,
		ChurnDate: outcome.ChurnDate,
	}
	for _, day := range activity {
		if day.Active() {
			d := day.ActivityDate
			label.LastActiveDate = &d
		}
	}
	if label.LastActiveDate != nil {
		label.RetentionDays = daysBetween(signup, *label.LastActiveDate)
	}
	if outcome.IsChurner {
		reason := rng.Pick(churnReasons)
		label.ChurnReasonCategory = &reason
		label.ReactivationAttempts = rng.IntBetween(0, 3)
	}
	return label
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
