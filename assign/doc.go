// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package assign implements the angelito draw.

# Draw

Draw claims a recipient for the participant holding a code:

	chosen, err := assign.Draw(participants, "ABC ", pick)

The code is trimmed and lowercased before matching. The eligible set is
every participant except the requester and anyone already named in
another participant's assignedTo. One of them is picked uniformly at
random and the requester is updated in place. Failures leave the slice
untouched and return one of:

  - ErrInvalidInput: empty code
  - ErrNotFound: no participant with that code
  - ErrAlreadyUsed: the code already drew
  - ErrNoCandidates: nobody left to draw

# Service

Service runs Draw inside a Store's atomic Update, so the
read-check-write of one draw never interleaves with another:

	svc := assign.NewService(store, pick)
	res, err := svc.Draw(ctx, code)

# Admin View

Assignments resolves assignedTo ids to names for the admin listing.
Validate checks the invariants of a participant list (unique ids and
codes, no self or double assignment, hasPicked iff assignedTo).
*/
package assign
