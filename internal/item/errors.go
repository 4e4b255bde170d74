package item

import "errors"

var (
	ErrItemNotFound = errors.New("item not found")
	// ErrCommentNotAllowed rejects comments from users without a
	// completed booking of the item.
	ErrCommentNotAllowed = errors.New("commenting requires a completed booking of the item")
)
