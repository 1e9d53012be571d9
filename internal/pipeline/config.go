package pipeline

import (
	"os"
	"strconv"
	"time"
)

// defaultReferenceDate anchors all date arithmetic when REFERENCE_DATE is
// not set; runs against the same reference date are comparable.
const defaultReferenceDate = "2025-08-31"

type Config struct {
	// NumUsers is the target population size.
	NumUsers int
	// BatchSize bounds how many users' derived rows are held before a write.
	BatchSize int
	// ReferenceDate is the fixed "today" for all generated dates.
	ReferenceDate time.Time
	// Seed feeds the run's single pseudo-random source.
	Seed uint64
}

// ConfigFromEnv reads generation parameters from env vars, with defaults
// matching the production dataset (1M users, batches of 10k, seed 42).
func ConfigFromEnv() Config {
	return Config{
		NumUsers:      intFromEnv("NUM_USERS", 1_000_000),
		BatchSize:     intFromEnv("BATCH_SIZE", 10_000),
		ReferenceDate: dateFromEnv("REFERENCE_DATE", defaultReferenceDate),
		Seed:          uint64(intFromEnv("SEED", 42)),
	}
}

func intFromEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func dateFromEnv(key, def string) time.Time {
	v := os.Getenv(key)
	if v == "" {
		v = def
	}
	t, err := time.ParseInLocation("2006-01-02", v, time.UTC)
	if err != nil {
		t, _ = time.ParseInLocation("2006-01-02", def, time.UTC)
	}
	return t
}
