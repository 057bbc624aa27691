// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package assign

import (
	"fmt"

	"github.com/danielhkuo/angelito/models"
)

// Validate reports the first broken invariant in participants.
// Errors name participant ids only, never codes.
func Validate(participants []models.Participant) error {
	ids := make(map[int]bool, len(participants))
	codes := make(map[string]int, len(participants))

	for _, p := range participants {
		if ids[p.ID] {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidData, p.ID)
		}
		ids[p.ID] = true

		code := NormalizeCode(p.Code)
		if code == "" {
			return fmt.Errorf("%w: participant %d has no code", ErrInvalidData, p.ID)
		}
		if other, ok := codes[code]; ok {
			return fmt.Errorf("%w: participants %d and %d share a code", ErrInvalidData, other, p.ID)
		}
		codes[code] = p.ID
	}

	drawnBy := make(map[int]int, len(participants))
	for _, p := range participants {
		if p.HasPicked != p.Assigned() {
			return fmt.Errorf("%w: participant %d hasPicked=%t but assignedTo is %s",
				ErrInvalidData, p.ID, p.HasPicked, describeAssigned(p.AssignedTo))
		}
		if p.AssignedTo == nil {
			continue
		}

		target := *p.AssignedTo
		if target == p.ID {
			return fmt.Errorf("%w: participant %d is assigned to itself", ErrInvalidData, p.ID)
		}
		if !ids[target] {
			return fmt.Errorf("%w: participant %d is assigned to unknown id %d", ErrInvalidData, p.ID, target)
		}
		if giver, ok := drawnBy[target]; ok {
			return fmt.Errorf("%w: participant %d is drawn by both %d and %d", ErrInvalidData, target, giver, p.ID)
		}
		drawnBy[target] = p.ID
	}

	return nil
}

func describeAssigned(assignedTo *int) string {
	if assignedTo == nil {
		return "unset"
	}
	return fmt.Sprintf("%d", *assignedTo)
}
