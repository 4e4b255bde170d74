package user

// CreateUserInput carries the fields for user registration.
type CreateUserInput struct {
	Name  string
	Email string
}

// UpdateUserInput carries a partial update. Blank fields keep the stored
// value.
type UpdateUserInput struct {
	ID    int64
	Name  string
	Email string
}
