// Package simulation turns a user's signup date, churn outcome and premium
// flag into a daily activity time series and the records derived from it.
// Every function is a pure transformation over the passed random source;
// the documented draw order per row is load-bearing for reproducibility.
package simulation

import (
	"math"
	"time"

	"github.com/ovaphlow/pitchfork/service-datagen-go/internal/random"
	"github.com/ovaphlow/pitchfork/service-datagen-go/internal/simulation/entity"
)

// churnDecayGraceDays is how long a churner behaves like a retained user
// before the exponential decay takes over.
const churnDecayGraceDays = 60

// DailyActivity produces one row per calendar day from signup through ref
// inclusive, carrying a running streak. A signup after ref yields an empty
// series, not an error.
//
// Per day: the activity Bernoulli; then for active days lessons, xp bonus,
// time spent, goal met, the rank coin and (heads only) the rank itself.
func DailyActivity(rng *random.Source, userID int64, signup time.Time, isChurner, premium bool, ref time.Time) []entity.DailyActivity {
	if signup.After(ref) {
		return nil
	}
	rows := make([]entity.DailyActivity, 0, daysBetween(signup, ref)+1)
	streak := 0
	for day := signup; !day.After(ref); day = day.AddDate(0, 0, 1) {
		prob := activityProbability(daysBetween(signup, day), isChurner, premium)
		row := entity.DailyActivity{
			UserID:        userID,
			ActivityDate:  day,
			PremiumActive: premium,
		}
		if rng.Bernoulli(prob) {
			row.LessonsCompleted = rng.Poisson(5)
			row.XPGained = row.LessonsCompleted*10 + rng.IntBetween(0, 50)
			row.TimeSpentMinutes = math.Max(0, rng.Normal(20, 5))
			streak++
			row.StreakDays = streak
			row.DailyGoalMet = rng.Bernoulli(0.7)
			if rng.Float64() > 0.5 {
				rank := rng.IntBetween(1, 100)
				row.LeaderboardRank = &rank
			}
		} else {
			streak = 0
		}
		rows = append(rows, row)
	}
	return rows
}

// activityProbability is flat (0.8 premium, 0.6 free) until a churner is
// past the grace window, after which it decays exponentially with the day
// offset from signup.
func activityProbability(offsetDays int, isChurner, premium bool) float64 {
	if isChurner && offsetDays > churnDecayGraceDays {
		return 0.5 * math.Exp(-float64(offsetDays)/100)
	}
	if premium {
		return 0.8
	}
	return 0.6
}

// daysBetween counts whole days from a to b; both are date-resolution UTC
// values so the division is exact.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
