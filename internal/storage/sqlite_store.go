package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/stride-cli/stride/internal/dates"
	"github.com/stride-cli/stride/internal/models"
	"github.com/stride-cli/stride/internal/progression"
)

const schemaVersion = 1

// SQLiteStore persists the same logical snapshot relationally. Save
// rewrites the state in one transaction; Load materializes a full AppState.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	if err := s.open(); err != nil {
		return err
	}
	return s.Save(models.DefaultState(dates.Today()))
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s.db = db
	return s.migrate()
}

func (s *SQLiteStore) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}
	if version >= schemaVersion {
		return nil
	}

	const ddl = `
	CREATE TABLE IF NOT EXISTS user_stats (
		id               INTEGER PRIMARY KEY CHECK (id = 1),
		total_xp         INTEGER NOT NULL DEFAULT 0,
		display_name     TEXT NOT NULL DEFAULT '',
		last_streak_check TEXT NOT NULL DEFAULT '',
		rewards          TEXT NOT NULL DEFAULT '[]',
		badges           TEXT NOT NULL DEFAULT '[]'
	);
	CREATE TABLE IF NOT EXISTS habits (
		id               TEXT PRIMARY KEY,
		position         INTEGER NOT NULL,
		name             TEXT NOT NULL,
		description      TEXT NOT NULL DEFAULT '',
		category         TEXT NOT NULL DEFAULT 'other',
		color            TEXT NOT NULL DEFAULT 'emerald',
		frequency        TEXT NOT NULL DEFAULT 'daily',
		specific_days    TEXT NOT NULL DEFAULT '[]',
		goal_per_day     INTEGER NOT NULL DEFAULT 1,
		created_at       TEXT NOT NULL,
		xp_earned        INTEGER NOT NULL DEFAULT 0,
		reminder_enabled INTEGER,
		reminder_time    TEXT
	);
	CREATE TABLE IF NOT EXISTS completions (
		habit_id TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
		day      TEXT NOT NULL,
		count    INTEGER NOT NULL,
		PRIMARY KEY (habit_id, day)
	);
	CREATE TABLE IF NOT EXISTS friends (
		id       TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		name     TEXT NOT NULL,
		xp       INTEGER NOT NULL DEFAULT 0,
		level    INTEGER NOT NULL DEFAULT 1,
		badges   TEXT NOT NULL DEFAULT '[]',
		streak   INTEGER NOT NULL DEFAULT 0
	);
	CREATE TABLE IF NOT EXISTS challenges (
		id          TEXT NOT NULL,
		position    INTEGER NOT NULL,
		type        TEXT NOT NULL,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		target      INTEGER NOT NULL,
		progress    INTEGER NOT NULL DEFAULT 0,
		reward      INTEGER NOT NULL,
		start_date  TEXT NOT NULL,
		end_date    TEXT NOT NULL,
		completed   INTEGER NOT NULL DEFAULT 0
	);
	CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`
	if _, err := s.db.Exec(ddl); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	_, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion))
	return err
}

func (s *SQLiteStore) Load() (*models.AppState, error) {
	if err := s.open(); err != nil {
		return nil, err
	}

	today := dates.Today()
	state := models.DefaultState(today)

	if err := s.loadStats(state); err != nil {
		return nil, err
	}
	if err := s.loadHabits(state); err != nil {
		return nil, err
	}
	if err := s.loadFriends(state); err != nil {
		return nil, err
	}
	if err := s.loadChallenges(state); err != nil {
		return nil, err
	}
	if err := s.loadSettings(state); err != nil {
		return nil, err
	}

	state.Normalize(today)
	state.UserStats = progression.Recompute(state.UserStats)
	return state, nil
}

func (s *SQLiteStore) loadStats(state *models.AppState) error {
	var rewards, badges string
	row := s.db.QueryRow(`SELECT total_xp, display_name, last_streak_check, rewards, badges FROM user_stats WHERE id = 1`)
	err := row.Scan(&state.UserStats.TotalXP, &state.UserStats.DisplayName, &state.UserStats.LastStreakCheck, &rewards, &badges)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load stats: %w", err)
	}
	if err := json.Unmarshal([]byte(rewards), &state.UserStats.UnlockedRewards); err != nil {
		state.UserStats.UnlockedRewards = []string{}
	}
	if err := json.Unmarshal([]byte(badges), &state.UserStats.Badges); err != nil {
		state.UserStats.Badges = []string{}
	}
	return nil
}

func (s *SQLiteStore) loadHabits(state *models.AppState) error {
	rows, err := s.db.Query(`SELECT id, name, description, category, color, frequency, specific_days,
		goal_per_day, created_at, xp_earned, reminder_enabled, reminder_time
		FROM habits ORDER BY position`)
	if err != nil {
		return fmt.Errorf("load habits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var h models.Habit
		var specificDays, createdAt string
		var remEnabled sql.NullBool
		var remTime sql.NullString
		if err := rows.Scan(&h.ID, &h.Name, &h.Description, &h.Category, &h.Color, &h.Frequency,
			&specificDays, &h.GoalPerDay, &createdAt, &h.XPEarned, &remEnabled, &remTime); err != nil {
			return fmt.Errorf("scan habit: %w", err)
		}
		if err := json.Unmarshal([]byte(specificDays), &h.SpecificDays); err != nil {
			h.SpecificDays = nil
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			h.CreatedAt = t.Local()
		}
		if remEnabled.Valid || remTime.Valid {
			h.Reminder = &models.Reminder{Enabled: remEnabled.Bool, Time: remTime.String}
		}
		h.Completions = make(map[string]int)
		state.Habits = append(state.Habits, h)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load habits: %w", err)
	}

	return s.loadCompletions(state)
}

func (s *SQLiteStore) loadCompletions(state *models.AppState) error {
	rows, err := s.db.Query(`SELECT habit_id, day, count FROM completions`)
	if err != nil {
		return fmt.Errorf("load completions: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*models.Habit, len(state.Habits))
	for i := range state.Habits {
		byID[state.Habits[i].ID] = &state.Habits[i]
	}

	for rows.Next() {
		var habitID, day string
		var count int
		if err := rows.Scan(&habitID, &day, &count); err != nil {
			return fmt.Errorf("scan completion: %w", err)
		}
		if h, ok := byID[habitID]; ok {
			h.Completions[day] = count
		}
	}
	return rows.Err()
}

func (s *SQLiteStore) loadFriends(state *models.AppState) error {
	rows, err := s.db.Query(`SELECT id, name, xp, level, badges, streak FROM friends ORDER BY position`)
	if err != nil {
		return fmt.Errorf("load friends: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var f models.Friend
		var badges string
		if err := rows.Scan(&f.ID, &f.Name, &f.XP, &f.Level, &badges, &f.Streak); err != nil {
			return fmt.Errorf("scan friend: %w", err)
		}
		if err := json.Unmarshal([]byte(badges), &f.Badges); err != nil {
			f.Badges = nil
		}
		state.Friends = append(state.Friends, f)
	}
	return rows.Err()
}

func (s *SQLiteStore) loadChallenges(state *models.AppState) error {
	rows, err := s.db.Query(`SELECT id, type, name, description, target, progress, reward,
		start_date, end_date, completed FROM challenges ORDER BY position`)
	if err != nil {
		return fmt.Errorf("load challenges: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.Challenge
		if err := rows.Scan(&c.ID, &c.Type, &c.Name, &c.Description, &c.Target, &c.Progress,
			&c.Reward, &c.StartDate, &c.EndDate, &c.Completed); err != nil {
			return fmt.Errorf("scan challenge: %w", err)
		}
		state.Challenges = append(state.Challenges, c)
	}
	return rows.Err()
}

func (s *SQLiteStore) loadSettings(state *models.AppState) error {
	rows, err := s.db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return fmt.Errorf("scan setting: %w", err)
		}
		switch key {
		case "theme":
			state.Theme = value
		case "last_visit":
			state.LastVisit = value
		}
	}
	return rows.Err()
}

// Save rewrites the whole snapshot in one transaction. State is tiny (tens
// of habits, thousands of day entries), so replace-everything keeps the
// snapshot semantics identical to the JSON backend.
func (s *SQLiteStore) Save(state *models.AppState) error {
	if err := s.open(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"completions", "habits", "friends", "challenges", "user_stats", "settings"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	rewards, _ := json.Marshal(state.UserStats.UnlockedRewards)
	badges, _ := json.Marshal(state.UserStats.Badges)
	if _, err := tx.Exec(`INSERT INTO user_stats (id, total_xp, display_name, last_streak_check, rewards, badges)
		VALUES (1, ?, ?, ?, ?, ?)`,
		state.UserStats.TotalXP, state.UserStats.DisplayName, state.UserStats.LastStreakCheck,
		string(rewards), string(badges)); err != nil {
		return fmt.Errorf("save stats: %w", err)
	}

	for i := range state.Habits {
		h := &state.Habits[i]
		days, _ := json.Marshal(h.SpecificDays)
		var remEnabled sql.NullBool
		var remTime sql.NullString
		if h.Reminder != nil {
			remEnabled = sql.NullBool{Bool: h.Reminder.Enabled, Valid: true}
			remTime = sql.NullString{String: h.Reminder.Time, Valid: true}
		}
		if _, err := tx.Exec(`INSERT INTO habits (id, position, name, description, category, color,
			frequency, specific_days, goal_per_day, created_at, xp_earned, reminder_enabled, reminder_time)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			h.ID, i, h.Name, h.Description, string(h.Category), h.Color, string(h.Frequency),
			string(days), h.GoalPerDay, h.CreatedAt.Format(time.RFC3339), h.XPEarned,
			remEnabled, remTime); err != nil {
			return fmt.Errorf("save habit: %w", err)
		}
		for day, count := range h.Completions {
			if _, err := tx.Exec(`INSERT INTO completions (habit_id, day, count) VALUES (?, ?, ?)`,
				h.ID, day, count); err != nil {
				return fmt.Errorf("save completion: %w", err)
			}
		}
	}

	for i := range state.Friends {
		f := &state.Friends[i]
		fb, _ := json.Marshal(f.Badges)
		if _, err := tx.Exec(`INSERT INTO friends (id, position, name, xp, level, badges, streak)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			f.ID, i, f.Name, f.XP, f.Level, string(fb), f.Streak); err != nil {
			return fmt.Errorf("save friend: %w", err)
		}
	}

	for i, c := range state.Challenges {
		if _, err := tx.Exec(`INSERT INTO challenges (id, position, type, name, description,
			target, progress, reward, start_date, end_date, completed)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, i, string(c.Type), c.Name, c.Description, c.Target, c.Progress, c.Reward,
			c.StartDate, c.EndDate, c.Completed); err != nil {
			return fmt.Errorf("save challenge: %w", err)
		}
	}

	for key, value := range map[string]string{"theme": state.Theme, "last_visit": state.LastVisit} {
		if _, err := tx.Exec(`INSERT INTO settings (key, value) VALUES (?, ?)`, key, value); err != nil {
			return fmt.Errorf("save setting %s: %w", key, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
