// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/siurna/uzkuraitis-eu/cliparse"
	"github.com/siurna/uzkuraitis-eu/db"
	"github.com/siurna/uzkuraitis-eu/scoring"
)

// TestAdminPassword is the admin password in GetTestConfig
const TestAdminPassword = "test-admin-password"

// FinalTop10 is a complete results top ten made of catalog entries
var FinalTop10 = []string{"se", "fr", "at", "il", "nl", "it", "ee", "fi", "pl", "gr"}

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3318,
		DatabaseURL:     ":memory:",
		DatabaseType:    db.TypeSQLite,
		AdminPassword:   TestAdminPassword,
		PredictionEntry: "lt",
	}
}

// Picks builds picks from entry codes in position order (12 points first)
func Picks(codes ...string) scoring.Picks {
	var p scoring.Picks
	copy(p[:], codes)
	return p
}

// CreateTestVoter inserts a voter with picks and returns the voter ID.
// createdAt orders voters; pass the zero time to use time.Now.
func CreateTestVoter(t *testing.T, conn *sql.DB, name string, picks scoring.Picks, prediction *int, createdAt time.Time) string {
	t.Helper()

	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	voterID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO voter (id, name, session_id, prediction, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, voterID, name, "session-"+voterID, prediction, createdAt, createdAt)
	if err != nil {
		t.Fatalf("Failed to create test voter: %v", err)
	}

	for i, entry := range picks {
		if entry == "" {
			continue
		}
		_, err := conn.Exec(`
			INSERT INTO pick (voter_id, entry_code, points)
			VALUES ($1, $2, $3)
		`, voterID, entry, int(scoring.PointValues[i]))
		if err != nil {
			t.Fatalf("Failed to create test pick: %v", err)
		}
	}

	return voterID
}

// SaveTestResults stores a results record as the admin would
func SaveTestResults(t *testing.T, conn *sql.DB, top10 []string, place any) {
	t.Helper()

	value, _ := json.Marshal(map[string]any{
		"top10":            top10,
		"prediction_place": place,
	})
	_, err := conn.Exec(`
		INSERT INTO setting (key, value, updated_at)
		VALUES ('final_results', $1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, string(value), time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to save test results: %v", err)
	}
}

// CountRows counts rows in a table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AdminHeaders returns headers carrying the test admin password
func AdminHeaders() map[string]string {
	return map[string]string{"X-Admin-Key": TestAdminPassword}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
