// Package population generates the base user population and the churn
// outcome attached to each user.
package population

import (
	"math"
	"time"

	"github.com/ovaphlow/pitchfork/service-datagen-go/internal/population/entity"
	"github.com/ovaphlow/pitchfork/service-datagen-go/internal/random"
)

// signupWindowDays is how far back signup dates reach (about 2 years).
const signupWindowDays = 730

// minRetentionDays discounts immediate churn: every user keeps at least
// this many days before the geometric tail starts counting.
const minRetentionDays = 30

// churnP parameterizes the geometric retention draw (mean ~100 days).
const churnP = 0.01

var (
	genders         = []string{"Male", "Female", "Non-binary", "Prefer not to say"}
	deviceTypes     = []string{"iOS", "Android", "Web"}
	deviceWeights   = []float64{0.4, 0.4, 0.2}
	referralSources = []string{"Friend", "Ad", "Organic"}
	motivations     = []string{"Travel", "Career", "Hobby", "School"}
)

// Generate produces n users with sequential 0-based ids plus one churn
// outcome per user, index-aligned. Both slices stay in memory for the batch
// loop, which looks users up positionally by id.
//
// Draw order per user: signup date, premium, retention (churn), age,
// gender, country, device type, referral source, motivation, email verified.
func Generate(rng *random.Source, n int, ref time.Time) ([]entity.User, []entity.ChurnOutcome) {
	users := make([]entity.User, 0, n)
	churns := make([]entity.ChurnOutcome, 0, n)
	for id := 0; id < n; id++ {
		signup := rng.DaysAgo(ref, 1, signupWindowDays)
		premium := rng.Bernoulli(0.2)
		churn := SimulateChurn(rng, signup, ref)
		users = append(users, entity.User{
			UserID:             int64(id),
			SignupDate:         signup,
			Age:                drawAge(rng),
			Gender:             rng.Pick(genders),
			Country:            truncate(rng.Country(), 49),
			DeviceType:         deviceTypes[rng.WeightedIndex(deviceWeights)],
			ReferralSource:     rng.Pick(referralSources),
			LearningMotivation: rng.Pick(motivations),
			EmailVerified:      rng.Bernoulli(0.9),
			PremiumSubscribed:  premium,
		})
		churns = append(churns, churn)
	}
	return users, churns
}

// SimulateChurn draws a retention span of at least minRetentionDays and
// marks the user a churner when signup plus retention lands on or before
// the reference date. ChurnDate is nil for retained users.
func SimulateChurn(rng *random.Source, signup, ref time.Time) entity.ChurnOutcome {
	retentionDays := rng.Geometric(churnP) + minRetentionDays
	churnDate := signup.AddDate(0, 0, retentionDays)
	if !churnDate.After(ref) {
		return entity.ChurnOutcome{IsChurner: true, ChurnDate: &churnDate}
	}
	return entity.ChurnOutcome{}
}

// drawAge samples Normal(30, 10) clipped to [18, 100] and rounded.
func drawAge(rng *random.Source) int {
	a := rng.Normal(30, 10)
	if a < 18 {
		a = 18
	}
	if a > 100 {
		a = 100
	}
	return int(math.Round(a))
}

// truncate bounds s to max runes; country names feed a varchar(50) column.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
