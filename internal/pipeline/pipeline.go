// Package pipeline drives the full generation run: reference catalog once,
// population once, then derived records batch by batch into the sink.
// Every sink failure is logged and skipped; the run always makes
// best-effort progress over the whole population.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ovaphlow/pitchfork/service-datagen-go/internal/catalog"
	"github.com/ovaphlow/pitchfork/service-datagen-go/internal/population"
	popentity "github.com/ovaphlow/pitchfork/service-datagen-go/internal/population/entity"
	"github.com/ovaphlow/pitchfork/service-datagen-go/internal/random"
	"github.com/ovaphlow/pitchfork/service-datagen-go/internal/simulation"
	simentity "github.com/ovaphlow/pitchfork/service-datagen-go/internal/simulation/entity"
	"github.com/ovaphlow/pitchfork/service-datagen-go/internal/sink"
)

// Pipeline owns one generation run. Single-threaded by design: the draw
// order through rng is the reproducibility contract.
type Pipeline struct {
	cfg  Config
	sink sink.Sink
	rng  *random.Source
	log  *zap.SugaredLogger
}

func New(cfg Config, s sink.Sink, rng *random.Source, log *zap.SugaredLogger) *Pipeline {
	return &Pipeline{cfg: cfg, sink: s, rng: rng, log: log}
}

// Run executes the whole generation. It returns an error only for context
// cancellation; individual write failures are logged and absorbed.
func (p *Pipeline) Run(ctx context.Context) error {
	started := time.Now()

	languages := catalog.Languages()
	p.submit(ctx, "languages", languages, len(languages))

	courses := catalog.BuildCourses(p.rng, p.cfg.ReferenceDate)
	p.submit(ctx, "courses", courses, len(courses))

	users, churns := population.Generate(p.rng, p.cfg.NumUsers, p.cfg.ReferenceDate)
	p.log.Infow("population generated", "users", len(users))
	p.writeUsers(ctx, users)

	for lo := 0; lo < p.cfg.NumUsers; lo += p.cfg.BatchSize {
		if err := ctx.Err(); err != nil {
			p.log.Warnw("run cancelled", "completed_users", lo)
			return err
		}
		hi := lo + p.cfg.BatchSize
		if hi > p.cfg.NumUsers {
			hi = p.cfg.NumUsers
		}
		p.runBatch(ctx, users, churns, len(courses), lo, hi)
	}

	p.log.Infow("data generation complete", "elapsed", time.Since(started).String())
	return nil
}

// writeUsers applies the idempotence guard: when the users table already
// holds at least the target population no rows are written. A failed count
// query skips the insert too, matching the guard's conservative contract.
func (p *Pipeline) writeUsers(ctx context.Context, users []popentity.User) {
	count, err := p.sink.Count(ctx, "users")
	if err != nil {
		p.log.Errorw("users count failed, skipping users insert", "error", err)
		return
	}
	p.log.Infow("users table row count", "existing", count)
	if count >= int64(p.cfg.NumUsers) {
		p.log.Infow("skipping users insert", "existing", count, "target", p.cfg.NumUsers)
		return
	}
	p.submit(ctx, "users", users, len(users))
}

// runBatch generates and writes every derived table for users [lo, hi).
// A failing user contributes no rows to any table; a failing table write
// does not stop the remaining tables.
func (p *Pipeline) runBatch(ctx context.Context, users []popentity.User, churns []popentity.ChurnOutcome, courseCount, lo, hi int) {
	p.log.Infow("starting batch", "from", lo, "to", hi)

	var enrollments []simentity.UserCourse
	for uid := lo; uid < hi; uid++ {
		enrollments = append(enrollments, simulation.Enrollments(p.rng, int64(uid), users[uid].SignupDate, courseCount)...)
	}
	p.submit(ctx, "user_courses", enrollments, len(enrollments))

	var (
		activity      []simentity.DailyActivity
		sessions      []simentity.Session
		notifications []simentity.Notification
		labels        []simentity.ChurnLabel
	)
	for uid := lo; uid < hi; uid++ {
		acts, sess, notifs, label, err := p.generateUser(users[uid], churns[uid], enrollments)
		if err != nil {
			p.log.Errorw("user generation failed", "user_id", uid, "batch_from", lo, "batch_to", hi, "error", err)
			continue
		}
		activity = append(activity, acts...)
		sessions = append(sessions, sess...)
		notifications = append(notifications, notifs...)
		labels = append(labels, label)
	}

	p.submit(ctx, "daily_activity", activity, len(activity))
	p.submit(ctx, "sessions", sessions, len(sessions))
	p.submit(ctx, "notifications", notifications, len(notifications))
	p.submit(ctx, "churn_labels", labels, len(labels))
}

// generateUser runs the per-user simulation chain. A panic anywhere in the
// chain becomes an error so one malformed user cannot take down the batch.
func (p *Pipeline) generateUser(u popentity.User, churn popentity.ChurnOutcome, enrollments []simentity.UserCourse) (acts []simentity.DailyActivity, sess []simentity.Session, notifs []simentity.Notification, label simentity.ChurnLabel, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("generation panicked: %v", r)
		}
	}()
	acts = simulation.DailyActivity(p.rng, u.UserID, u.SignupDate, churn.IsChurner, u.PremiumSubscribed, p.cfg.ReferenceDate)
	// The course lookup is batch-local: when the user's enrollments landed
	// in another batch the sessions carry no course reference.
	sess = simulation.Sessions(p.rng, u.UserID, firstCourse(enrollments, u.UserID), acts)
	notifs = simulation.Notifications(p.rng, u.UserID, acts)
	label = simulation.Label(p.rng, u.UserID, u.SignupDate, churn, acts)
	return acts, sess, notifs, label, nil
}

// firstCourse returns the course id of the user's first enrollment in the
// batch, or nil when none exists.
func firstCourse(enrollments []simentity.UserCourse, userID int64) *int {
	for i := range enrollments {
		if enrollments[i].UserID == userID {
			return &enrollments[i].CourseID
		}
	}
	return nil
}

// submit forwards one table's row set to the sink, logging either outcome.
// Failures are absorbed: the batch write for this table is abandoned and
// processing continues.
func (p *Pipeline) submit(ctx context.Context, table string, rows any, n int) {
	if err := p.sink.Insert(ctx, table, rows); err != nil {
		p.log.Errorw("batch insert failed", "table", table, "rows", n, "error", err)
		return
	}
	p.log.Infow("rows inserted", "table", table, "rows", n)
}
