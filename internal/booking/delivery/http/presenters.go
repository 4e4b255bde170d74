package http

import (
	"time"

	"github.com/msshishlin/shareit/internal/booking"
	"github.com/msshishlin/shareit/internal/model"
	"github.com/msshishlin/shareit/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	BookerID int64             `json:"-"` // populated from the sharer header
	ItemID   int64             `json:"itemId"`
	Start    response.DateTime `json:"start"`
	End      response.DateTime `json:"end"`
}

func (r createReq) toInput() booking.CreateBookingInput {
	return booking.CreateBookingInput{
		BookerID: r.BookerID,
		ItemID:   r.ItemID,
		Start:    time.Time(r.Start),
		End:      time.Time(r.End),
	}
}

type listReq struct {
	UserID int64  `form:"-"`
	State  string `form:"state,default=ALL"`
	From   int    `form:"from,default=0"`
	Size   int    `form:"size,default=10"`
}

func (r listReq) toInput(state model.BookingSearchState) booking.ListInput {
	return booking.ListInput{
		UserID: r.UserID,
		State:  state,
		Limit:  r.Size,
		Offset: r.From,
	}
}

// --- Response DTOs ---

type bookerResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type bookedItemResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type bookingResp struct {
	ID     int64             `json:"id"`
	Start  response.DateTime `json:"start"`
	End    response.DateTime `json:"end"`
	Status string            `json:"status"`
	Booker bookerResp        `json:"booker"`
	Item   bookedItemResp    `json:"item"`
}

func newBookingResp(b model.Booking) bookingResp {
	return bookingResp{
		ID:     b.ID,
		Start:  response.DateTime(b.Start),
		End:    response.DateTime(b.End),
		Status: string(b.Status),
		Booker: bookerResp{ID: b.Booker.ID, Name: b.Booker.Name},
		Item:   bookedItemResp{ID: b.Item.ID, Name: b.Item.Name},
	}
}

func newBookingRespList(bookings []model.Booking) []bookingResp {
	out := make([]bookingResp, len(bookings))
	for i, b := range bookings {
		out[i] = newBookingResp(b)
	}
	return out
}
