// Package catalog produces the static reference rows: the language table
// and the bounded course cross-product over it.
package catalog

import (
	"time"

	"github.com/ovaphlow/pitchfork/service-datagen-go/internal/catalog/entity"
	"github.com/ovaphlow/pitchfork/service-datagen-go/internal/random"
)

// maxCourses bounds the enumerated course cross-product.
const maxCourses = 100

// courseHistoryDays is the window for course creation dates (about 5 years).
const courseHistoryDays = 5 * 365

// Languages returns a copy of the static language reference set.
func Languages() []entity.Language {
	out := make([]entity.Language, len(languages))
	copy(out, languages)
	return out
}

// LanguageCount reports the size of the static language set.
func LanguageCount() int { return len(languages) }

// BuildCourses enumerates (target, base) language pairs with target != base,
// target as the outer loop over the full set and base as the inner loop over
// the base subset, truncated to the first maxCourses pairs in that order.
// The truncation keeps enumeration order, so early target languages are
// overrepresented; that bias is part of the dataset's contract.
//
// Draw order per course: difficulty, total lessons, completion days,
// created date.
func BuildCourses(rng *random.Source, ref time.Time) []entity.Course {
	courses := make([]entity.Course, 0, maxCourses)
	for target := 1; target <= len(languages); target++ {
		for base := 1; base <= baseLanguageCount; base++ {
			if target == base {
				continue
			}
			if len(courses) == maxCourses {
				return courses
			}
			courses = append(courses, entity.Course{
				TargetLanguageID: target,
				BaseLanguageID:   base,
				DifficultyLevel:  rng.IntBetween(1, 5),
				TotalLessons:     rng.IntBetween(100, 300),
				// Normal(90, 30), deliberately unclamped: a small share of
				// courses carries a negative completion time, as the dataset
				// consumers expect.
				AvgCompletionTimeDays: rng.Normal(90, 30),
				CreatedDate:           rng.DaysAgo(ref, 0, courseHistoryDays),
			})
		}
	}
	return courses
}
