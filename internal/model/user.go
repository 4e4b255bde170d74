package model

// User is the root entity: items, bookings, comments and item requests
// all reference a user by id.
type User struct {
	ID    int64
	Name  string
	Email string // unique across all users
}
