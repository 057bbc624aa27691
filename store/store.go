// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/angelito/assign"
	"github.com/danielhkuo/angelito/cliparse"
	"github.com/danielhkuo/angelito/db"
	"github.com/danielhkuo/angelito/models"
)

// Backend is a participant store that owns resources
type Backend interface {
	assign.Store
	Close() error
}

// Open builds the store selected by cfg.StoreType. With cfg.Seed set, the
// participants file is imported into an empty SQL store.
func Open(ctx context.Context, cfg cliparse.Config) (Backend, error) {
	switch cfg.StoreType {
	case models.StoreJSON:
		return NewJSONStore(cfg.DataFile), nil

	case models.StoreSQLite, models.StorePostgres:
		conn, err := db.Open(cfg.StoreType, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		s := NewSQLStore(conn, cfg.StoreType)

		if cfg.Seed {
			if err := Seed(ctx, s, NewJSONStore(cfg.DataFile)); err != nil {
				s.Close()
				return nil, err
			}
		}
		return s, nil
	}

	return nil, fmt.Errorf("unknown store type %q", cfg.StoreType)
}

// Seed copies participants from src into dst if dst is empty
func Seed(ctx context.Context, dst *SQLStore, src *JSONStore) error {
	participants, err := src.Load(ctx)
	if err != nil {
		return err
	}
	if err := assign.Validate(participants); err != nil {
		return fmt.Errorf("seed from %s: %w", src.Path(), err)
	}

	err = dst.Import(ctx, participants)
	if errors.Is(err, ErrNotEmpty) {
		slog.Info("database already seeded, skipping import", "file", src.Path())
		return nil
	}
	if err != nil {
		return err
	}

	slog.Info("participants imported", "file", src.Path(), "count", len(participants))
	return nil
}
