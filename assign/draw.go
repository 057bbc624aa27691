// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package assign

import (
	"strings"

	"github.com/danielhkuo/angelito/models"
)

// NormalizeCode trims whitespace and lowercases a code
func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// Draw assigns an angelito to the participant owning code and returns the
// chosen participant. The requester is updated in place only on success.
func Draw(participants []models.Participant, code string, pick Picker) (models.Participant, error) {
	code = NormalizeCode(code)
	if code == "" {
		return models.Participant{}, ErrInvalidInput
	}

	idx := IndexByCode(participants, code)
	if idx < 0 {
		return models.Participant{}, ErrNotFound
	}

	current := &participants[idx]
	if current.HasPicked || current.Assigned() {
		return models.Participant{}, ErrAlreadyUsed
	}

	candidates := Eligible(participants, current.ID)
	if len(candidates) == 0 {
		return models.Participant{}, ErrNoCandidates
	}

	chosen := candidates[pick(len(candidates))]

	assignedTo := chosen.ID
	current.HasPicked = true
	current.AssignedTo = &assignedTo

	return chosen, nil
}

// IndexByCode returns the position of the participant whose normalized code
// matches, or -1
func IndexByCode(participants []models.Participant, code string) int {
	code = NormalizeCode(code)
	if code == "" {
		return -1
	}
	for i, p := range participants {
		if NormalizeCode(p.Code) == code {
			return i
		}
	}
	return -1
}

// Eligible returns, in list order, every participant other than requesterID
// that nobody has drawn yet.
func Eligible(participants []models.Participant, requesterID int) []models.Participant {
	taken := make(map[int]bool, len(participants))
	for _, p := range participants {
		if p.AssignedTo != nil {
			taken[*p.AssignedTo] = true
		}
	}

	candidates := []models.Participant{}
	for _, p := range participants {
		if p.ID == requesterID || taken[p.ID] {
			continue
		}
		candidates = append(candidates, p)
	}
	return candidates
}

// Assignments builds the admin listing, resolving assignedTo to a name
func Assignments(participants []models.Participant) []models.AdminEntry {
	names := make(map[int]string, len(participants))
	for _, p := range participants {
		names[p.ID] = p.Name
	}

	entries := make([]models.AdminEntry, 0, len(participants))
	for _, p := range participants {
		entry := models.AdminEntry{
			ID:        p.ID,
			Name:      p.Name,
			Code:      p.Code,
			HasPicked: p.HasPicked,
		}
		if p.AssignedTo != nil {
			if name, ok := names[*p.AssignedTo]; ok {
				entry.Angelito = &name
			}
		}
		entries = append(entries, entry)
	}
	return entries
}
