package db

// SchemaSQL holds the full fitquest schema. Badge catalog rows are seeded here too.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS workout_sessions
(
    id                  UUID PRIMARY KEY,
    user_id             UUID        NOT NULL,
    title               VARCHAR     NOT NULL,
    category            VARCHAR     NOT NULL DEFAULT '',
    description         TEXT        NOT NULL DEFAULT '',
    status              VARCHAR     NOT NULL DEFAULT 'in_progress',
    started_at          TIMESTAMPTZ NOT NULL,
    completed_at        TIMESTAMPTZ,
    duration_minutes    INTEGER     NOT NULL DEFAULT 0,
    calories_burned     INTEGER     NOT NULL DEFAULT 0,
    sets_completed      INTEGER     NOT NULL DEFAULT 0,
    total_volume_kg     DOUBLE PRECISION NOT NULL DEFAULT 0,
    exercises_completed INTEGER     NOT NULL DEFAULT 0,
    difficulty_rating   INTEGER
);
CREATE INDEX IF NOT EXISTS ix_workout_sessions_user_completed
    ON workout_sessions (user_id, completed_at) WHERE status = 'completed';

CREATE TABLE IF NOT EXISTS user_meal_logs
(
    id        UUID PRIMARY KEY,
    user_id   UUID        NOT NULL,
    meal_type VARCHAR     NOT NULL,
    food_name VARCHAR     NOT NULL,
    calories  INTEGER     NOT NULL DEFAULT 0,
    protein_g DOUBLE PRECISION NOT NULL DEFAULT 0,
    carbs_g   DOUBLE PRECISION NOT NULL DEFAULT 0,
    fats_g    DOUBLE PRECISION NOT NULL DEFAULT 0,
    logged_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS ix_user_meal_logs_user_logged ON user_meal_logs (user_id, logged_at);

CREATE TABLE IF NOT EXISTS daily_steps
(
    user_id UUID    NOT NULL,
    day     DATE    NOT NULL,
    steps   INTEGER NOT NULL,
    PRIMARY KEY (user_id, day)
);

CREATE TABLE IF NOT EXISTS user_stats
(
    user_id                   UUID PRIMARY KEY,
    total_workouts            INTEGER     NOT NULL DEFAULT 0,
    total_calories_burned     BIGINT      NOT NULL DEFAULT 0,
    total_exercises_completed INTEGER     NOT NULL DEFAULT 0,
    total_steps               BIGINT      NOT NULL DEFAULT 0,
    current_streak            INTEGER     NOT NULL DEFAULT 0,
    longest_streak            INTEGER     NOT NULL DEFAULT 0,
    last_workout_date         DATE,
    total_points              BIGINT      NOT NULL DEFAULT 0,
    points_updated_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at                TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT user_stats_streaks CHECK (longest_streak >= current_streak)
);
CREATE INDEX IF NOT EXISTS ix_user_stats_total_points ON user_stats (total_points DESC);

CREATE TABLE IF NOT EXISTS points_ledger
(
    id         BIGSERIAL PRIMARY KEY,
    user_id    UUID        NOT NULL,
    source     VARCHAR     NOT NULL,
    source_id  VARCHAR     NOT NULL,
    points     INTEGER     NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    UNIQUE (source, source_id)
);
CREATE INDEX IF NOT EXISTS ix_points_ledger_created ON points_ledger (created_at, user_id);

CREATE TABLE IF NOT EXISTS badges
(
    id                VARCHAR PRIMARY KEY,
    name              VARCHAR NOT NULL,
    description       TEXT    NOT NULL DEFAULT '',
    requirement_type  VARCHAR NOT NULL,
    requirement_value BIGINT  NOT NULL,
    points            INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS user_badges
(
    user_id   UUID        NOT NULL,
    badge_id  VARCHAR     NOT NULL REFERENCES badges (id),
    earned_at TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (user_id, badge_id)
);

CREATE TABLE IF NOT EXISTS challenges
(
    id           UUID PRIMARY KEY,
    title        VARCHAR     NOT NULL,
    description  TEXT        NOT NULL DEFAULT '',
    metric       VARCHAR     NOT NULL,
    target_value DOUBLE PRECISION NOT NULL,
    starts_at    TIMESTAMPTZ NOT NULL UNIQUE,
    ends_at      TIMESTAMPTZ NOT NULL,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS challenge_participations
(
    challenge_id UUID        NOT NULL REFERENCES challenges (id),
    user_id      UUID        NOT NULL,
    score        DOUBLE PRECISION NOT NULL DEFAULT 0,
    progress     DOUBLE PRECISION NOT NULL DEFAULT 0,
    joined_at    TIMESTAMPTZ NOT NULL,
    updated_at   TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (challenge_id, user_id)
);

CREATE TABLE IF NOT EXISTS challenge_contributions
(
    challenge_id UUID        NOT NULL REFERENCES challenges (id),
    user_id      UUID        NOT NULL,
    source_id    VARCHAR     NOT NULL,
    value        DOUBLE PRECISION NOT NULL,
    created_at   TIMESTAMPTZ NOT NULL,
    UNIQUE (challenge_id, source_id)
);

CREATE TABLE IF NOT EXISTS weekly_leaderboard
(
    week_start   DATE        NOT NULL,
    position     INTEGER     NOT NULL,
    display_name VARCHAR     NOT NULL,
    points       BIGINT      NOT NULL,
    workouts     INTEGER     NOT NULL,
    refreshed_at TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (week_start, position)
);

CREATE TABLE IF NOT EXISTS weight_progress_tracking
(
    id          BIGSERIAL PRIMARY KEY,
    user_id     UUID             NOT NULL,
    weight_kg   DOUBLE PRECISION NOT NULL,
    measured_at TIMESTAMPTZ      NOT NULL
);
CREATE INDEX IF NOT EXISTS ix_weight_progress_user_measured ON weight_progress_tracking (user_id, measured_at DESC);

CREATE TABLE IF NOT EXISTS user_goals
(
    user_id          UUID PRIMARY KEY,
    maintenance_kcal INTEGER NOT NULL,
    goal_kcal        INTEGER NOT NULL
);

INSERT INTO badges (id, name, description, requirement_type, requirement_value, points)
VALUES ('first_workout', 'First Step', 'Complete your first workout', 'total_workouts', 1, 10),
       ('ten_workouts', 'Regular', 'Complete 10 workouts', 'total_workouts', 10, 25),
       ('fifty_workouts', 'Dedicated', 'Complete 50 workouts', 'total_workouts', 50, 75),
       ('hundred_workouts', 'Centurion', 'Complete 100 workouts', 'total_workouts', 100, 150),
       ('streak_3', 'On a Roll', 'Work out 3 days in a row', 'current_streak', 3, 15),
       ('streak_7', 'Week Warrior', 'Work out 7 days in a row', 'current_streak', 7, 40),
       ('streak_30', 'Unstoppable', 'Work out 30 days in a row', 'longest_streak', 30, 200),
       ('calories_5k', 'Furnace', 'Burn 5,000 calories', 'total_calories_burned', 5000, 30),
       ('calories_50k', 'Inferno', 'Burn 50,000 calories', 'total_calories_burned', 50000, 120),
       ('exercises_100', 'Well Rounded', 'Complete 100 exercises', 'total_exercises_completed', 100, 30),
       ('points_1k', 'Point Collector', 'Reach 1,000 points', 'total_points', 1000, 50)
ON CONFLICT (id) DO NOTHING;
`
