package repository

import "time"

// CreateRequestOptions holds parameters for inserting an item request.
type CreateRequestOptions struct {
	Description string
	RequesterID int64
	Created     time.Time
}

// ListRequestsOptions holds filter parameters for listing requests.
// RequesterID and ExcludeRequesterID are mutually exclusive filters.
// Listings come back newest first.
type ListRequestsOptions struct {
	RequesterID        int64
	ExcludeRequesterID int64
}
