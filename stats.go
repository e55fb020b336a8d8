package main

import (
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"
)

// Privacy-conscious visitor tracking struct
type VisitorMetric struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"` // Hashed instead of raw IP for privacy
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type ContactMetric struct {
	ID        string    `json:"id"`
	Channel   string    `json:"channel"`
	Timestamp time.Time `json:"timestamp"`
}

type Count struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

type AdminStats struct {
	TotalVisitors     int64           `json:"total_visitors"`
	UniqueVisitors    int64           `json:"unique_visitors"`
	VisitorsToday     int64           `json:"visitors_today"`
	VisitorsThisWeek  int64           `json:"visitors_this_week"`
	TopPaths          []Count         `json:"top_paths"`
	TotalContacts     int64           `json:"total_contacts"`
	ContactsByChannel []Count         `json:"contacts_by_channel"`
	RecentVisitors    []VisitorMetric `json:"recent_visitors"`
}

// statsStore keeps visitor and contact counters in sqlite. With the default
// ":memory:" DSN nothing survives a restart.
type statsStore struct {
	db   *sql.DB
	salt string
}

const statsSchema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	ts INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS visitors_ts ON visitors (ts);
CREATE TABLE IF NOT EXISTS contacts (
	id TEXT PRIMARY KEY,
	channel TEXT NOT NULL,
	ts INTEGER NOT NULL
);`

func openStats(dsn string) (*statsStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open stats db: %w", err)
	}
	// An in-memory database lives and dies with its connection.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec(statsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create stats tables: %w", err)
	}
	log.Println("Privacy-conscious visitor tracking initialized")
	return &statsStore{db: db, salt: randomToken()}, nil
}

func (s *statsStore) Close() error {
	return s.db.Close()
}

func randomToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate token:", err)
	}
	return hex.EncodeToString(bytes)
}

// Hash IP address for privacy compliance (consistent per IP for the process lifetime)
func (s *statsStore) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + s.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

func (s *statsStore) RecordVisit(ip, userAgent, path string, at time.Time) error {
	_, err := s.db.Exec(`INSERT INTO visitors (hashed_ip, user_agent, path, ts) VALUES (?, ?, ?, ?)`,
		s.hashIP(ip), userAgent, path, at.Unix())
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

func (s *statsStore) RecordContact(id, channel string, at time.Time) error {
	_, err := s.db.Exec(`INSERT INTO contacts (id, channel, ts) VALUES (?, ?, ?)`, id, channel, at.Unix())
	if err != nil {
		return fmt.Errorf("record contact: %w", err)
	}
	return nil
}

// Cleanup drops visitor rows older than retention.
func (s *statsStore) Cleanup(retention time.Duration, now time.Time) (int64, error) {
	result, err := s.db.Exec(`DELETE FROM visitors WHERE ts < ?`, now.Add(-retention).Unix())
	if err != nil {
		return 0, fmt.Errorf("cleanup visitors: %w", err)
	}
	n, _ := result.RowsAffected()
	if n > 0 {
		log.Printf("Privacy cleanup: Removed %d visitor records older than %s", n, retention)
	}
	return n, nil
}

func (s *statsStore) count(query string, args ...any) (int64, error) {
	var n int64
	if err := s.db.QueryRow(query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *statsStore) counts(query string, args ...any) ([]Count, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Count
	for rows.Next() {
		var c Count
		if err := rows.Scan(&c.Key, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Stats gathers the dashboard numbers. "Today" starts at midnight UTC.
func (s *statsStore) Stats(now time.Time) (*AdminStats, error) {
	stats := &AdminStats{}
	var err error
	midnight := now.UTC().Truncate(24 * time.Hour)

	if stats.TotalVisitors, err = s.count(`SELECT COUNT(*) FROM visitors`); err != nil {
		return nil, fmt.Errorf("total visitors: %w", err)
	}
	if stats.UniqueVisitors, err = s.count(`SELECT COUNT(DISTINCT hashed_ip) FROM visitors`); err != nil {
		return nil, fmt.Errorf("unique visitors: %w", err)
	}
	if stats.VisitorsToday, err = s.count(`SELECT COUNT(*) FROM visitors WHERE ts >= ?`, midnight.Unix()); err != nil {
		return nil, fmt.Errorf("visitors today: %w", err)
	}
	if stats.VisitorsThisWeek, err = s.count(`SELECT COUNT(*) FROM visitors WHERE ts >= ?`, now.Add(-7*24*time.Hour).Unix()); err != nil {
		return nil, fmt.Errorf("visitors this week: %w", err)
	}
	if stats.TopPaths, err = s.counts(`
		SELECT path, COUNT(*) AS n FROM visitors
		GROUP BY path ORDER BY n DESC, path LIMIT 10`); err != nil {
		return nil, fmt.Errorf("top paths: %w", err)
	}
	if stats.TotalContacts, err = s.count(`SELECT COUNT(*) FROM contacts`); err != nil {
		return nil, fmt.Errorf("total contacts: %w", err)
	}
	if stats.ContactsByChannel, err = s.counts(`
		SELECT channel, COUNT(*) AS n FROM contacts
		GROUP BY channel ORDER BY n DESC, channel`); err != nil {
		return nil, fmt.Errorf("contacts by channel: %w", err)
	}
	if stats.RecentVisitors, err = s.Visitors(50); err != nil {
		return nil, err
	}
	return stats, nil
}

// Visitors returns the most recent visits, newest first.
func (s *statsStore) Visitors(limit int) ([]VisitorMetric, error) {
	rows, err := s.db.Query(`
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), ts
		FROM visitors ORDER BY ts DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query visitors: %w", err)
	}
	defer rows.Close()

	var visitors []VisitorMetric
	for rows.Next() {
		var v VisitorMetric
		var ts int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("scan visitor: %w", err)
		}
		v.Timestamp = time.Unix(ts, 0).UTC()
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}

// Contacts returns the most recent contact submissions, newest first.
func (s *statsStore) Contacts(limit int) ([]ContactMetric, error) {
	rows, err := s.db.Query(`SELECT id, channel, ts FROM contacts ORDER BY ts DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	defer rows.Close()

	var contacts []ContactMetric
	for rows.Next() {
		var c ContactMetric
		var ts int64
		if err := rows.Scan(&c.ID, &c.Channel, &ts); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		c.Timestamp = time.Unix(ts, 0).UTC()
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}
