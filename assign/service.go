// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package assign

import (
	"context"
	"fmt"

	"github.com/danielhkuo/angelito/models"
)

// Store is the persistence the Service needs.
//
// Update loads the current list, calls fn with it and persists the list
// only if fn returns nil. fn may modify elements in place. The whole call
// is atomic with respect to other Updates on the same store, and fn's
// error is returned unwrapped.
type Store interface {
	Load(ctx context.Context) ([]models.Participant, error)
	Update(ctx context.Context, fn func(participants []models.Participant) error) error
}

// Result describes a completed draw
type Result struct {
	GiverID  int
	Angelito models.Participant
}

type Service struct {
	store Store
	pick  Picker
}

func NewService(store Store, pick Picker) *Service {
	return &Service{store: store, pick: pick}
}

// Draw runs Draw against the store's current state and persists the result
func (s *Service) Draw(ctx context.Context, code string) (Result, error) {
	var res Result
	err := s.store.Update(ctx, func(participants []models.Participant) error {
		chosen, err := Draw(participants, code, s.pick)
		if err != nil {
			return err
		}
		res = Result{
			GiverID:  participants[IndexByCode(participants, code)].ID,
			Angelito: chosen,
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

// List returns the admin view of every participant
func (s *Service) List(ctx context.Context) ([]models.AdminEntry, error) {
	participants, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return Assignments(participants), nil
}

// Check loads the store and validates it. Returns the participant count.
func (s *Service) Check(ctx context.Context) (int, error) {
	participants, err := s.store.Load(ctx)
	if err != nil {
		return 0, err
	}
	if err := Validate(participants); err != nil {
		return 0, fmt.Errorf("check participants: %w", err)
	}
	return len(participants), nil
}
