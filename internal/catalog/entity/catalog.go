package entity

import "time"

// Language is a static reference row in the `languages` table.
type Language struct {
	Name                   string  `db:"language_name"`
	PopularityScore        float64 `db:"popularity_score"`
	ScriptType             string  `db:"script_type"`
	NativeSpeakersMillions float64 `db:"native_speakers_millions"`
}

// Course is a row in the `courses` table pairing a target language with a
// base (instruction) language. Language ids are 1-based positions in the
// static language table.
type Course struct {
	TargetLanguageID      int       `db:"target_language_id"`
	BaseLanguageID        int       `db:"base_language_id"`
	DifficultyLevel       int       `db:"difficulty_level"`
	TotalLessons          int       `db:"total_lessons"`
	AvgCompletionTimeDays float64   `db:"avg_completion_time_days"`
	CreatedDate           time.Time `db:"created_date"`
}
