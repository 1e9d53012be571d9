package sink

// tableSpec carries the bulk-insert statement and column count for one
// generated table. The column count bounds chunk sizes under the Postgres
// bind parameter ceiling.
type tableSpec struct {
	insert  string
	columns int
	ddl     string
}

// tableOrder fixes the schema creation order.
var tableOrder = []string{
	"languages",
	"courses",
	"users",
	"user_courses",
	"daily_activity",
	"sessions",
	"notifications",
	"churn_labels",
}

var tables = map[string]tableSpec{
	"languages": {
		insert: `INSERT INTO languages (language_name, popularity_score, script_type, native_speakers_millions)
			VALUES (:language_name, :popularity_score, :script_type, :native_speakers_millions)`,
		columns: 4,
		ddl: `CREATE TABLE languages (
			language_id bigserial PRIMARY KEY,
			language_name varchar(50) NOT NULL,
			popularity_score double precision NOT NULL,
			script_type varchar(20) NOT NULL,
			native_speakers_millions double precision NOT NULL
		)`,
	},
	"courses": {
		insert: `INSERT INTO courses (target_language_id, base_language_id, difficulty_level, total_lessons, avg_completion_time_days, created_date)
			VALUES (:target_language_id, :base_language_id, :difficulty_level, :total_lessons, :avg_completion_time_days, :created_date)`,
		columns: 6,
		ddl: `CREATE TABLE courses (
			course_id bigserial PRIMARY KEY,
			target_language_id bigint NOT NULL,
			base_language_id bigint NOT NULL,
			difficulty_level int NOT NULL,
			total_lessons int NOT NULL,
			avg_completion_time_days double precision NOT NULL,
			created_date date NOT NULL
		)`,
	},
	"users": {
		insert: `INSERT INTO users (user_id, signup_date, age, gender, country, device_type, referral_source, learning_motivation, email_verified, premium_subscribed)
			VALUES (:user_id, :signup_date, :age, :gender, :country, :device_type, :referral_source, :learning_motivation, :email_verified, :premium_subscribed)`,
		columns: 10,
		ddl: `CREATE TABLE users (
			user_id bigint PRIMARY KEY,
			signup_date date NOT NULL,
			age int NOT NULL,
			gender varchar(20) NOT NULL,
			country varchar(50) NOT NULL,
			device_type varchar(10) NOT NULL,
			referral_source varchar(10) NOT NULL,
			learning_motivation varchar(10) NOT NULL,
			email_verified boolean NOT NULL,
			premium_subscribed boolean NOT NULL
		)`,
	},
	"user_courses": {
		insert: `INSERT INTO user_courses (user_id, course_id, start_date, current_level, total_xp, crown_count, lingot_count)
			VALUES (:user_id, :course_id, :start_date, :current_level, :total_xp, :crown_count, :lingot_count)`,
		columns: 7,
		ddl: `CREATE TABLE user_courses (
			id bigserial PRIMARY KEY,
			user_id bigint NOT NULL,
			course_id bigint NOT NULL,
			start_date date NOT NULL,
			current_level int NOT NULL,
			total_xp int NOT NULL,
			crown_count int NOT NULL,
			lingot_count int NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_user_courses_user_id ON user_courses (user_id)`,
	},
	"daily_activity": {
		insert: `INSERT INTO daily_activity (user_id, activity_date, lessons_completed, xp_gained, time_spent_minutes, streak_days, daily_goal_met, leaderboard_rank, premium_active)
			VALUES (:user_id, :activity_date, :lessons_completed, :xp_gained, :time_spent_minutes, :streak_days, :daily_goal_met, :leaderboard_rank, :premium_active)`,
		columns: 9,
		ddl: `CREATE TABLE daily_activity (
			id bigserial PRIMARY KEY,
			user_id bigint NOT NULL,
			activity_date date NOT NULL,
			lessons_completed int NOT NULL,
			xp_gained int NOT NULL,
			time_spent_minutes double precision NOT NULL,
			streak_days int NOT NULL,
			daily_goal_met boolean NOT NULL,
			leaderboard_rank int,
			premium_active boolean NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_daily_activity_user_id ON daily_activity (user_id)`,
	},
	"sessions": {
		insert: `INSERT INTO sessions (id, user_id, user_course_id, session_start, session_end, exercises_completed, accuracy_percentage, skill_practiced, hearts_lost, gems_earned)
			VALUES (:id, :user_id, :user_course_id, :session_start, :session_end, :exercises_completed, :accuracy_percentage, :skill_practiced, :hearts_lost, :gems_earned)`,
		columns: 10,
		ddl: `CREATE TABLE sessions (
			id varchar(32) PRIMARY KEY,
			user_id bigint NOT NULL,
			user_course_id bigint,
			session_start timestamptz NOT NULL,
			session_end timestamptz NOT NULL,
			exercises_completed int NOT NULL,
			accuracy_percentage double precision NOT NULL,
			skill_practiced varchar(20) NOT NULL,
			hearts_lost int NOT NULL,
			gems_earned int NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions (user_id)`,
	},
	"notifications": {
		insert: `INSERT INTO notifications (id, user_id, sent_date, notification_type, opened, clicked, response_time_seconds, channel)
			VALUES (:id, :user_id, :sent_date, :notification_type, :opened, :clicked, :response_time_seconds, :channel)`,
		columns: 8,
		ddl: `CREATE TABLE notifications (
			id varchar(32) PRIMARY KEY,
			user_id bigint NOT NULL,
			sent_date timestamptz NOT NULL,
			notification_type varchar(20) NOT NULL,
			opened boolean NOT NULL,
			clicked boolean NOT NULL,
			response_time_seconds int,
			channel varchar(10) NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_notifications_user_id ON notifications (user_id)`,
	},
	"churn_labels": {
		insert: `INSERT INTO churn_labels (user_id, churn_flag, churn_date, last_active_date, churn_reason_category, retention_days, reactivation_attempts)
			VALUES (:user_id, :churn_flag, :churn_date, :last_active_date, :churn_reason_category, :retention_days, :reactivation_attempts)`,
		columns: 7,
		ddl: `CREATE TABLE churn_labels (
			user_id bigint PRIMARY KEY,
			churn_flag boolean NOT NULL,
			churn_date date,
			last_active_date date,
			churn_reason_category varchar(20),
			retention_days int NOT NULL,
			reactivation_attempts int NOT NULL
		)`,
	},
}
