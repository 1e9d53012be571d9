package catalog

import (
	"testing"
	"time"

	"github.com/ovaphlow/pitchfork/service-datagen-go/internal/random"
)

var ref = time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)

func TestLanguagesStaticSet(t *testing.T) {
	langs := Languages()
	if len(langs) != 44 {
		t.Fatalf("expected the 44-language reference set, got %d", len(langs))
	}
	if langs[0].Name != "Spanish" || langs[43].Name != "Bulgarian" {
		t.Fatalf("language table order changed: first=%s last=%s", langs[0].Name, langs[43].Name)
	}

	// callers must not be able to corrupt the reference set
	langs[0].Name = "mutated"
	if Languages()[0].Name != "Spanish" {
		t.Fatalf("Languages returned shared backing storage")
	}
}

func TestBuildCoursesInvariants(t *testing.T) {
	courses := BuildCourses(random.New(42), ref)

	if len(courses) != 100 {
		t.Fatalf("expected truncation to 100 courses, got %d", len(courses))
	}
	oldest := ref.AddDate(0, 0, -courseHistoryDays)
	for i, c := range courses {
		if c.TargetLanguageID == c.BaseLanguageID {
			t.Fatalf("course %d pairs a language with itself", i)
		}
		if c.DifficultyLevel < 1 || c.DifficultyLevel > 5 {
			t.Fatalf("course %d difficulty %d out of [1,5]", i, c.DifficultyLevel)
		}
		if c.TotalLessons < 100 || c.TotalLessons > 300 {
			t.Fatalf("course %d lessons %d out of [100,300]", i, c.TotalLessons)
		}
		if c.CreatedDate.After(ref) || c.CreatedDate.Before(oldest) {
			t.Fatalf("course %d created %v outside the 5-year window", i, c.CreatedDate)
		}
	}
}

func TestBuildCoursesEnumerationOrder(t *testing.T) {
	courses := BuildCourses(random.New(1), ref)

	// target 1 pairs with bases 2..6, then target 2 starts over at base 1
	first := courses[0]
	if first.TargetLanguageID != 1 || first.BaseLanguageID != 2 {
		t.Fatalf("expected first pair (1,2), got (%d,%d)", first.TargetLanguageID, first.BaseLanguageID)
	}
	sixth := courses[5]
	if sixth.TargetLanguageID != 2 || sixth.BaseLanguageID != 1 {
		t.Fatalf("expected sixth pair (2,1), got (%d,%d)", sixth.TargetLanguageID, sixth.BaseLanguageID)
	}
}
