package model

import "time"

// ItemRequest is a user's post asking the community for an item matching
// a description. Items may declare it as their origin via RequestID.
type ItemRequest struct {
	ID          int64
	Description string
	Requester   User
	Created     time.Time
}
