// Package store is the SQLite persistence shim: three tables, point lookups
// and single-field updates. Failures degrade to defaults rather than
// propagating, matching the dashboard's never-fail display contract.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/adityab24840/SwachItHackathon/internal/model"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// DefaultPoints is the reward balance reported when the rewards row is
// missing or the query fails.
const DefaultPoints = 120

type Store struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

// Open opens (creating if needed) the database at path and seeds demo data.
func Open(path string, log *zap.SugaredLogger) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db, log: log}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.seedData(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'active'
	);

	CREATE TABLE IF NOT EXISTS waste_metrics (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		volume INTEGER NOT NULL,
		cleanliness_score INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS rewards (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		points INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (user_id) REFERENCES users(id)
	);

	CREATE INDEX IF NOT EXISTS idx_rewards_user ON rewards(user_id);
	CREATE INDEX IF NOT EXISTS idx_metrics_date ON waste_metrics(date);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) seedData() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil // already seeded
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	res, err := s.db.Exec(
		"INSERT INTO users (username, password, status) VALUES (?, ?, ?)",
		"demo", string(hashed), "active",
	)
	if err != nil {
		return fmt.Errorf("failed to seed demo user: %w", err)
	}

	userID, _ := res.LastInsertId()
	if _, err := s.db.Exec(
		"INSERT INTO rewards (user_id, points) VALUES (?, ?)",
		userID, DefaultPoints,
	); err != nil {
		return fmt.Errorf("failed to seed demo rewards: %w", err)
	}

	// Seed a week of city-level metric samples.
	now := time.Now()
	for i := 7; i > 0; i-- {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		volume := 35 + (i%3)*5
		cleanliness := 80 + (i%3)*5
		if _, err := s.db.Exec(
			"INSERT INTO waste_metrics (date, volume, cleanliness_score) VALUES (?, ?, ?)",
			date, volume, cleanliness,
		); err != nil {
			return fmt.Errorf("failed to seed waste metrics: %w", err)
		}
	}

	s.log.Infow("database seeded", "demo_user_id", userID)
	return nil
}

// GetUser looks up a user by username. Returns ErrNotFound for no match.
func (s *Store) GetUser(username string) (*model.User, error) {
	var u model.User
	err := s.db.QueryRow(
		"SELECT id, username, password, status FROM users WHERE username = ?",
		username,
	).Scan(&u.ID, &u.Username, &u.Password, &u.Status)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		s.log.Errorw("user lookup failed", "error", err)
		return nil, ErrNotFound
	}
	return &u, nil
}

// UpdateStatus sets a user's status field. Last write wins; the boolean
// result is the only failure surface.
func (s *Store) UpdateStatus(userID int, status string) bool {
	_, err := s.db.Exec("UPDATE users SET status = ? WHERE id = ?", status, userID)
	if err != nil {
		s.log.Errorw("status update failed", "user_id", userID, "error", err)
		return false
	}
	return true
}

// Points returns the persisted reward balance for a user, or DefaultPoints
// when the row is missing or the query fails.
func (s *Store) Points(userID int) int {
	var points int
	err := s.db.QueryRow("SELECT points FROM rewards WHERE user_id = ?", userID).Scan(&points)
	if err != nil {
		if err != sql.ErrNoRows {
			s.log.Errorw("points lookup failed", "user_id", userID, "error", err)
		}
		return DefaultPoints
	}
	return points
}

// SetPoints upserts the reward balance for a user.
func (s *Store) SetPoints(userID, points int) bool {
	res, err := s.db.Exec("UPDATE rewards SET points = ? WHERE user_id = ?", points, userID)
	if err != nil {
		s.log.Errorw("points update failed", "user_id", userID, "error", err)
		return false
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := s.db.Exec("INSERT INTO rewards (user_id, points) VALUES (?, ?)", userID, points); err != nil {
			s.log.Errorw("points insert failed", "user_id", userID, "error", err)
			return false
		}
	}
	return true
}

// RecentMetrics returns the newest n persisted metric samples, newest first.
func (s *Store) RecentMetrics(n int) ([]model.WasteMetricRow, error) {
	rows, err := s.db.Query(
		"SELECT id, date, volume, cleanliness_score FROM waste_metrics ORDER BY date DESC LIMIT ?", n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var metrics []model.WasteMetricRow
	for rows.Next() {
		var m model.WasteMetricRow
		if err := rows.Scan(&m.ID, &m.Date, &m.Volume, &m.CleanlinessScore); err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}
