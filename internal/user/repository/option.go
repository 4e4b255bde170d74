package repository

// CreateUserOptions holds parameters for inserting a new user.
type CreateUserOptions struct {
	Name  string
	Email string
}

// GetUserOptions holds filter parameters for fetching a single user.
// All non-zero fields are applied as AND conditions.
type GetUserOptions struct {
	ID    int64
	Email string
}

// UpdateUserOptions holds the full merged state to persist.
type UpdateUserOptions struct {
	ID    int64
	Name  string
	Email string
}
