package model

import "time"

// Item is a rentable object listed by an owning user.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	Owner       User
	// RequestID links the item to the item request it fulfills; 0 when
	// the item was listed without one.
	RequestID int64
}

// Comment is a post-rental note on an item. Immutable once created.
type Comment struct {
	ID      int64
	Text    string
	Item    Item
	Author  User
	Created time.Time
}
