// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/danielhkuo/angelito/cliparse"
	"github.com/danielhkuo/angelito/db"
	"github.com/danielhkuo/angelito/models"
	"github.com/danielhkuo/angelito/store"
)

// PostgresURLEnv names the variable that enables postgres-backed tests
const PostgresURLEnv = "TEST_DATABASE_URL"

// SampleParticipants returns three fresh participants with codes a, b, c
func SampleParticipants() []models.Participant {
	return []models.Participant{
		{ID: 1, Name: "Ana", Code: "a"},
		{ID: 2, Name: "Bea", Code: "b"},
		{ID: 3, Name: "Carla", Code: "c"},
	}
}

// MakeParticipants returns n fresh participants with ids 1..n and codes p1..pn
func MakeParticipants(n int) []models.Participant {
	participants := make([]models.Participant, n)
	for i := range participants {
		id := i + 1
		participants[i] = models.Participant{
			ID:   id,
			Name: "Participant " + strconv.Itoa(id),
			Code: "p" + strconv.Itoa(id),
		}
	}
	return participants
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}

// WriteParticipantsFile writes participants to a temp file and returns its path
func WriteParticipantsFile(t *testing.T, participants []models.Participant) string {
	t.Helper()

	data, err := json.MarshalIndent(participants, "", "  ")
	if err != nil {
		t.Fatalf("Failed to encode participants: %v", err)
	}

	path := filepath.Join(t.TempDir(), "participants.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write participants file: %v", err)
	}
	return path
}

// ReadParticipantsFile decodes the participants file at path
func ReadParticipantsFile(t *testing.T, path string) []models.Participant {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read participants file: %v", err)
	}

	var participants []models.Participant
	if err := json.Unmarshal(data, &participants); err != nil {
		t.Fatalf("Failed to decode participants file: %v", err)
	}
	return participants
}

// SetupJSONStore creates a JSON store in a temp directory holding participants
func SetupJSONStore(t *testing.T, participants []models.Participant) *store.JSONStore {
	t.Helper()
	return store.NewJSONStore(WriteParticipantsFile(t, participants))
}

// SetupSQLiteStore creates a SQLite store in a temp directory holding participants
func SetupSQLiteStore(t *testing.T, participants []models.Participant) *store.SQLStore {
	t.Helper()

	conn, err := db.Open(models.StoreSQLite, "file:"+filepath.Join(t.TempDir(), "angelito.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	s := store.NewSQLStore(conn, models.StoreSQLite)
	t.Cleanup(func() { s.Close() })

	if err := s.Import(context.Background(), participants); err != nil {
		t.Fatalf("Failed to import participants: %v", err)
	}
	return s
}

// SetupPostgresStore creates a clean postgres store holding participants.
// Skips the test unless TEST_DATABASE_URL is set.
func SetupPostgresStore(t *testing.T, participants []models.Participant) *store.SQLStore {
	t.Helper()

	url := os.Getenv(PostgresURLEnv)
	if url == "" {
		t.Skip(PostgresURLEnv + " not set")
	}

	conn, err := db.Open(models.StorePostgres, url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Clean up tables before each test
	if _, err := conn.Exec(`DROP TABLE IF EXISTS participant CASCADE`); err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}
	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	s := store.NewSQLStore(conn, models.StorePostgres)
	t.Cleanup(func() { s.Close() })

	if err := s.Import(context.Background(), participants); err != nil {
		t.Fatalf("Failed to import participants: %v", err)
	}
	return s
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:      3000,
		StoreType: models.StoreJSON,
		DataFile:  "participants.json",
	}
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
