// Package access is the single place authorization decisions are made.
// Domain usecases wrap the returned denial with the entity id; delivery
// layers map it to 403 via errors.Is.
package access

import "errors"

// ErrDenied is returned when a viewer lacks the required capability.
var ErrDenied = errors.New("access denied")

// RequireOwner allows only the resource owner.
func RequireOwner(ownerID, viewerID int64) error {
	if ownerID != viewerID {
		return ErrDenied
	}
	return nil
}

// RequireParticipant allows any of the listed participants.
func RequireParticipant(viewerID int64, participantIDs ...int64) error {
	for _, id := range participantIDs {
		if id == viewerID {
			return nil
		}
	}
	return ErrDenied
}
