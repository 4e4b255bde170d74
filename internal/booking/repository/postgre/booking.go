package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msshishlin/shareit/internal/model"
	repo "github.com/msshishlin/shareit/internal/booking/repository"
)

// bookingSelect resolves the booker and the item with its owner in one
// round trip; the item's owner id is what authorization decisions need.
const bookingSelect = `
	SELECT b.id, b.start_date, b.end_date, b.status,
	       u.id AS booker_id, u.name AS booker_name, u.email AS booker_email,
	       i.id AS item_id, i.name AS item_name, i.description AS item_description,
	       i.available AS item_available, COALESCE(i.request_id, 0) AS item_request_id,
	       o.id AS owner_id, o.name AS owner_name, o.email AS owner_email
	FROM bookings b
	JOIN users u ON u.id = b.booker_id
	JOIN items i ON i.id = b.item_id
	JOIN users o ON o.id = i.owner_id`

type bookingRow struct {
	ID     int64     `db:"id"`
	Start  time.Time `db:"start_date"`
	End    time.Time `db:"end_date"`
	Status string    `db:"status"`

	BookerID    int64  `db:"booker_id"`
	BookerName  string `db:"booker_name"`
	BookerEmail string `db:"booker_email"`

	ItemID          int64  `db:"item_id"`
	ItemName        string `db:"item_name"`
	ItemDescription string `db:"item_description"`
	ItemAvailable   bool   `db:"item_available"`
	ItemRequestID   int64  `db:"item_request_id"`

	OwnerID    int64  `db:"owner_id"`
	OwnerName  string `db:"owner_name"`
	OwnerEmail string `db:"owner_email"`
}

func (row bookingRow) toModel() model.Booking {
	return model.Booking{
		ID:     row.ID,
		Start:  row.Start,
		End:    row.End,
		Status: model.BookingStatus(row.Status),
		Booker: model.User{ID: row.BookerID, Name: row.BookerName, Email: row.BookerEmail},
		Item: model.Item{
			ID:          row.ItemID,
			Name:        row.ItemName,
			Description: row.ItemDescription,
			Available:   row.ItemAvailable,
			Owner:       model.User{ID: row.OwnerID, Name: row.OwnerName, Email: row.OwnerEmail},
			RequestID:   row.ItemRequestID,
		},
	}
}

// CreateBooking inserts a booking row and reads it back with its
// references resolved.
func (r *implRepository) CreateBooking(ctx context.Context, opt repo.CreateBookingOptions) (model.Booking, error) {
	const query = `
		INSERT INTO bookings (start_date, end_date, status, booker_id, item_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.db.GetContext(ctx, &id, query, opt.Start, opt.End, string(opt.Status), opt.BookerID, opt.ItemID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateBooking"), err)
		return model.Booking{}, repo.ErrFailedToInsert
	}
	return r.GetBooking(ctx, id)
}

// GetBooking retrieves a single booking by id.
func (r *implRepository) GetBooking(ctx context.Context, id int64) (model.Booking, error) {
	query := bookingSelect + " WHERE b.id = $1"

	var row bookingRow
	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetBooking"), err)
		return model.Booking{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// ListBookings returns bookings matching the options, newest start first.
func (r *implRepository) ListBookings(ctx context.Context, opt repo.ListBookingsOptions) ([]model.Booking, error) {
	mods, args := buildListBookingsQuery(opt)
	query := fmt.Sprintf("%s %s", bookingSelect, mods)

	var rows []bookingRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBookings"), err)
		return nil, repo.ErrFailedToList
	}

	bookings := make([]model.Booking, len(rows))
	for i, row := range rows {
		bookings[i] = row.toModel()
	}
	return bookings, nil
}

// UpdateBookingStatus rewrites the status and reads the booking back.
func (r *implRepository) UpdateBookingStatus(ctx context.Context, id int64, status model.BookingStatus) (model.Booking, error) {
	if _, err := r.db.ExecContext(ctx, "UPDATE bookings SET status = $2 WHERE id = $1", id, string(status)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateBookingStatus"), err)
		return model.Booking{}, repo.ErrFailedToUpdate
	}
	return r.GetBooking(ctx, id)
}
