// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/one-pick/cliparse"
	"github.com/danielhkuo/one-pick/db"
	"github.com/danielhkuo/one-pick/models"
	"github.com/danielhkuo/one-pick/secrets"
)

// SetupTestDB creates a fresh in-memory database with the full schema.
// The pool is capped at one connection so the in-memory database is shared
// by every statement in the test.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration. Bcrypt runs at
// MinCost so change-key hashing does not dominate test time.
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3321,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		BcryptCost:   bcrypt.MinCost,
	}
}

// KeyManager returns the secrets manager matching GetTestConfig.
func KeyManager() *secrets.Manager {
	return secrets.New(bcrypt.MinCost)
}

// OrderID builds a structurally valid order number dated today (UTC) with
// the given 7-digit sequence, so fixtures never age out of the date window.
func OrderID(sequence string) string {
	now := time.Now().UTC()
	return fmt.Sprintf("TF%02d%02d%02d04%s", now.Year()%100, int(now.Month()), now.Day(), sequence)
}

// CreateTestPeriod inserts a period and returns its ID.
func CreateTestPeriod(t *testing.T, conn *sql.DB, name, status string) string {
	t.Helper()

	id := uuid.NewString()
	startAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	endAt := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)

	_, err := conn.Exec(`
		INSERT INTO periods (id, name, start_at, end_at, status)
		VALUES ($1, $2, $3, $4, $5)
	`, id, name, startAt, endAt, status)
	if err != nil {
		t.Fatalf("Failed to create test period: %v", err)
	}

	return id
}

// CreateTestBinding binds an order number to a PID.
func CreateTestBinding(t *testing.T, conn *sql.DB, pid, orderID string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO order_bindings (pid, order_id, created_at)
		VALUES ($1, $2, $3)
	`, pid, orderID, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test binding: %v", err)
	}
}

// CreateTestVote inserts a valid vote and returns its ID.
func CreateTestVote(t *testing.T, conn *sql.DB, periodID, orderID, candidateID string) string {
	t.Helper()

	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := conn.Exec(`
		INSERT INTO votes (id, period_id, order_id, candidate_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, id, periodID, orderID, candidateID, models.VoteValid, now, now)
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return id
}

// CreateTestChangeKey stores the bcrypt digest of key for the pair.
func CreateTestChangeKey(t *testing.T, conn *sql.DB, orderID, periodID, key string) {
	t.Helper()

	hash, err := KeyManager().Hash(key)
	if err != nil {
		t.Fatalf("Failed to hash test change key: %v", err)
	}
	_, err = conn.Exec(`
		INSERT INTO change_secrets (order_id, period_id, key_hash, issued_at)
		VALUES ($1, $2, $3, $4)
	`, orderID, periodID, hash, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test change key: %v", err)
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

// DecodeSuccess decodes a success envelope and unmarshals its data into v.
func DecodeSuccess(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&env); err != nil {
		t.Fatalf("Failed to decode envelope: %v", err)
	}
	if !env.Success {
		t.Fatalf("Expected success envelope, got: %s", env.Data)
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("Failed to decode data payload: %v", err)
	}
}

// DecodeError decodes an error envelope and returns its body.
func DecodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorBody {
	t.Helper()

	var env models.ErrorEnvelope
	if err := json.NewDecoder(w.Body).Decode(&env); err != nil {
		t.Fatalf("Failed to decode error envelope: %v", err)
	}
	if env.Success {
		t.Fatal("Expected error envelope, got success")
	}
	return env.Error
}
