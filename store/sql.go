// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/danielhkuo/angelito/db"
	"github.com/danielhkuo/angelito/models"
)

var ErrNotEmpty = errors.New("participant table is not empty")

// SQLStore keeps participants in the participant table of a sqlite or
// postgres database.
type SQLStore struct {
	db        *sql.DB
	storeType string
	mu        sync.Mutex
}

func NewSQLStore(conn *sql.DB, storeType string) *SQLStore {
	return &SQLStore{db: conn, storeType: storeType}
}

// Load reads all participants ordered by id
func (s *SQLStore) Load(ctx context.Context) ([]models.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, code, has_picked, assigned_to
		FROM participant
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()

	return scanParticipants(rows)
}

// Update loads participants inside a transaction, runs fn, and writes back
// the rows fn changed. Postgres holds an exclusive table lock for the
// duration so concurrent processes serialize too.
func (s *SQLStore) Update(ctx context.Context, fn func([]models.Participant) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if s.storeType == models.StorePostgres {
		if _, err := tx.ExecContext(ctx, `LOCK TABLE participant IN EXCLUSIVE MODE`); err != nil {
			return fmt.Errorf("failed to lock participants: %w", err)
		}
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT id, name, code, has_picked, assigned_to
		FROM participant
		ORDER BY id
	`)
	if err != nil {
		return fmt.Errorf("failed to query participants: %w", err)
	}
	participants, err := scanParticipants(rows)
	rows.Close()
	if err != nil {
		return err
	}

	before := make([]models.Participant, len(participants))
	copy(before, participants)

	if err := fn(participants); err != nil {
		return err
	}

	update := db.Rebind(s.storeType, `
		UPDATE participant
		SET has_picked = ?, assigned_to = ?
		WHERE id = ?
	`)
	for i, p := range participants {
		if i < len(before) && !changed(before[i], p) {
			continue
		}
		if _, err := tx.ExecContext(ctx, update, p.HasPicked, nullID(p.AssignedTo), p.ID); err != nil {
			return fmt.Errorf("failed to update participant %d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Import inserts participants into an empty table. Used to seed a database
// from a participants file.
func (s *SQLStore) Import(ctx context.Context, participants []models.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM participant`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count participants: %w", err)
	}
	if count > 0 {
		return ErrNotEmpty
	}

	// assigned_to references other rows, so insert everyone first
	insert := db.Rebind(s.storeType, `
		INSERT INTO participant (id, name, code, has_picked, assigned_to)
		VALUES (?, ?, ?, FALSE, NULL)
	`)
	for _, p := range participants {
		if _, err := tx.ExecContext(ctx, insert, p.ID, p.Name, p.Code); err != nil {
			return fmt.Errorf("failed to insert participant %d: %w", p.ID, err)
		}
	}

	update := db.Rebind(s.storeType, `
		UPDATE participant
		SET has_picked = ?, assigned_to = ?
		WHERE id = ?
	`)
	for _, p := range participants {
		if !p.HasPicked && p.AssignedTo == nil {
			continue
		}
		if _, err := tx.ExecContext(ctx, update, p.HasPicked, nullID(p.AssignedTo), p.ID); err != nil {
			return fmt.Errorf("failed to restore assignment for %d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Close closes the database handle
func (s *SQLStore) Close() error {
	return s.db.Close()
}

func scanParticipants(rows *sql.Rows) ([]models.Participant, error) {
	participants := []models.Participant{}
	for rows.Next() {
		var p models.Participant
		var assignedTo sql.NullInt64
		if err := rows.Scan(&p.ID, &p.Name, &p.Code, &p.HasPicked, &assignedTo); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		if assignedTo.Valid {
			id := int(assignedTo.Int64)
			p.AssignedTo = &id
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read participants: %w", err)
	}
	return participants, nil
}

func nullID(id *int) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*id), Valid: true}
}

func changed(a, b models.Participant) bool {
	if a.HasPicked != b.HasPicked {
		return true
	}
	if (a.AssignedTo == nil) != (b.AssignedTo == nil) {
		return true
	}
	return a.AssignedTo != nil && *a.AssignedTo != *b.AssignedTo
}
