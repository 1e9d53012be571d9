package population

import (
	"reflect"
	"testing"
	"time"

	"github.com/ovaphlow/pitchfork/service-datagen-go/internal/random"
)

var ref = time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)

func TestGenerateFieldBounds(t *testing.T) {
	users, churns := Generate(random.New(42), 200, ref)

	if len(users) != 200 || len(churns) != 200 {
		t.Fatalf("expected 200 users and outcomes, got %d/%d", len(users), len(churns))
	}
	for i, u := range users {
		if u.UserID != int64(i) {
			t.Fatalf("user %d has id %d, ids must be sequential from 0", i, u.UserID)
		}
		if u.Age < 18 || u.Age > 100 {
			t.Fatalf("user %d age %d out of [18,100]", i, u.Age)
		}
		if u.SignupDate.After(ref) {
			t.Fatalf("user %d signed up after the reference date", i)
		}
		if u.SignupDate.Before(ref.AddDate(0, 0, -730)) {
			t.Fatalf("user %d signup %v older than the 2-year window", i, u.SignupDate)
		}
		if u.Country == "" {
			t.Fatalf("user %d has no country", i)
		}
		if len([]rune(u.Country)) > 49 {
			t.Fatalf("user %d country %q exceeds the column width", i, u.Country)
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	usersA, churnsA := Generate(random.New(42), 5, ref)
	usersB, churnsB := Generate(random.New(42), 5, ref)

	if !reflect.DeepEqual(usersA, usersB) {
		t.Fatalf("equally seeded runs produced different users:\n%v\n%v", usersA, usersB)
	}
	if !reflect.DeepEqual(churnsA, churnsB) {
		t.Fatalf("equally seeded runs produced different churn outcomes")
	}
}

func TestSimulateChurnContract(t *testing.T) {
	rng := random.New(7)
	signups := []time.Time{
		ref.AddDate(0, 0, -1),
		ref.AddDate(0, 0, -31),
		ref.AddDate(0, 0, -200),
		ref.AddDate(0, 0, -730),
	}
	for i := 0; i < 2000; i++ {
		signup := signups[i%len(signups)]
		out := SimulateChurn(rng, signup, ref)
		if out.IsChurner {
			if out.ChurnDate == nil {
				t.Fatalf("churner without a churn date")
			}
			if out.ChurnDate.After(ref) {
				t.Fatalf("churner with churn date %v past the reference date", out.ChurnDate)
			}
			if out.ChurnDate.Before(signup.AddDate(0, 0, minRetentionDays+1)) {
				t.Fatalf("retention below the %d-day minimum: signup %v churn %v", minRetentionDays, signup, out.ChurnDate)
			}
		} else if out.ChurnDate != nil {
			t.Fatalf("retained user carries a churn date %v", out.ChurnDate)
		}
	}
}

func TestSimulateChurnRecentSignupNeverChurns(t *testing.T) {
	rng := random.New(3)
	// signup 10 days back: even minimum retention lands past the reference
	signup := ref.AddDate(0, 0, -10)
	for i := 0; i < 500; i++ {
		if out := SimulateChurn(rng, signup, ref); out.IsChurner {
			t.Fatalf("user inside the minimum retention window marked as churner")
		}
	}
}
