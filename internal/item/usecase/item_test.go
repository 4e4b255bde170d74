package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/msshishlin/shareit/internal/access"
	bookingRepo "github.com/msshishlin/shareit/internal/booking/repository"
	bookingInmem "github.com/msshishlin/shareit/internal/booking/repository/inmem"
	"github.com/msshishlin/shareit/internal/item"
	itemInmem "github.com/msshishlin/shareit/internal/item/repository/inmem"
	"github.com/msshishlin/shareit/internal/item/usecase"
	"github.com/msshishlin/shareit/internal/model"
	"github.com/msshishlin/shareit/internal/user"
	userRepo "github.com/msshishlin/shareit/internal/user/repository"
	userInmem "github.com/msshishlin/shareit/internal/user/repository/inmem"
)

type fixture struct {
	uc       item.UseCase
	users    userRepo.Repository
	bookings bookingRepo.Repository
	now      time.Time
	owner    model.User
	renter   model.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	users := userInmem.New()
	items := itemInmem.New(users)
	bookings := bookingInmem.New(users, items)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	uc := usecase.New(items, users, bookings, &mockLogger{})
	uc.SetNow(func() time.Time { return now })

	owner, err := users.CreateUser(ctx, userRepo.CreateUserOptions{Name: "Owner", Email: "owner@mail.com"})
	if err != nil {
		t.Fatalf("fixture owner: %v", err)
	}
	renter, err := users.CreateUser(ctx, userRepo.CreateUserOptions{Name: "Renter", Email: "renter@mail.com"})
	if err != nil {
		t.Fatalf("fixture renter: %v", err)
	}

	return &fixture{uc: uc, users: users, bookings: bookings, now: now, owner: owner, renter: renter}
}

func (f *fixture) listItem(t *testing.T, name, description string) model.Item {
	t.Helper()
	created, err := f.uc.Create(context.Background(), item.CreateItemInput{
		OwnerID:     f.owner.ID,
		Name:        name,
		Description: description,
		Available:   true,
	})
	if err != nil {
		t.Fatalf("listItem: %v", err)
	}
	return created
}

func TestCreateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Resolves Owner", func(t *testing.T) {
		f := newFixture(t)
		created := f.listItem(t, "Drill", "Cordless drill")
		if created.Owner.ID != f.owner.ID || created.Owner.Name != "Owner" {
			t.Errorf("owner not resolved: %+v", created.Owner)
		}
	})

	t.Run("Absent Owner", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Create(ctx, item.CreateItemInput{OwnerID: 99, Name: "Drill", Description: "x", Available: true})
		if !errors.Is(err, user.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestSearchItems(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t)
	drill := f.listItem(t, "Drill", "Cordless drill")
	f.listItem(t, "Ladder", "Aluminium ladder")
	hidden := f.listItem(t, "Second drill", "Spare")
	if _, err := f.uc.Update(ctx, item.UpdateItemInput{ID: hidden.ID, OwnerID: f.owner.ID, Available: boolPtr(false)}); err != nil {
		t.Fatalf("hide item: %v", err)
	}

	t.Run("Blank Text Returns Empty", func(t *testing.T) {
		for _, text := range []string{"", "   "} {
			out, err := f.uc.Search(ctx, text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(out) != 0 {
				t.Errorf("blank search %q must be empty, got %d items", text, len(out))
			}
		}
	})

	t.Run("Case-Insensitive Substring Over Available Items", func(t *testing.T) {
		out, err := f.uc.Search(ctx, "dRiLl")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 || out[0].ID != drill.ID {
			t.Errorf("expected only the available drill, got %+v", out)
		}
	})
}

func TestUpdateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Blank Fields Keep Stored Values", func(t *testing.T) {
		f := newFixture(t)
		created := f.listItem(t, "Drill", "Cordless drill")

		updated, err := f.uc.Update(ctx, item.UpdateItemInput{ID: created.ID, OwnerID: f.owner.ID, Name: " "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Name != "Drill" || updated.Description != "Cordless drill" || !updated.Available {
			t.Errorf("blank update must not change anything: %+v", updated)
		}
	})

	t.Run("False Availability Overwrites", func(t *testing.T) {
		f := newFixture(t)
		created := f.listItem(t, "Drill", "Cordless drill")

		updated, err := f.uc.Update(ctx, item.UpdateItemInput{ID: created.ID, OwnerID: f.owner.ID, Available: boolPtr(false)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Available {
			t.Errorf("available=false must overwrite")
		}
	})

	t.Run("Non-Owner Is Denied", func(t *testing.T) {
		f := newFixture(t)
		created := f.listItem(t, "Drill", "Cordless drill")

		_, err := f.uc.Update(ctx, item.UpdateItemInput{ID: created.ID, OwnerID: f.renter.ID, Name: "Mine now"})
		if !errors.Is(err, access.ErrDenied) {
			t.Errorf("expected ErrDenied, got %v", err)
		}
	})

	t.Run("Absent Item", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Update(ctx, item.UpdateItemInput{ID: 42, OwnerID: f.owner.ID})
		if !errors.Is(err, item.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestOwnerItemsEnrichment(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t)
	drill := f.listItem(t, "Drill", "Cordless drill")

	book := func(t *testing.T, start, end time.Time) {
		t.Helper()
		_, err := f.bookings.CreateBooking(ctx, bookingRepo.CreateBookingOptions{
			Start: start, End: end, Status: model.BookingStatusApproved,
			BookerID: f.renter.ID, ItemID: drill.ID,
		})
		if err != nil {
			t.Fatalf("book: %v", err)
		}
	}
	book(t, f.now.Add(-24*time.Hour), f.now.Add(24*time.Hour))
	book(t, f.now.Add(96*time.Hour), f.now.Add(120*time.Hour))
	book(t, f.now.Add(48*time.Hour), f.now.Add(72*time.Hour))

	out, err := f.uc.OwnerItems(ctx, f.owner.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 item, got %d", len(out))
	}

	ext := out[0]
	if ext.LastBooking == nil || !ext.LastBooking.Equal(f.now.Add(24*time.Hour)) {
		t.Errorf("last booking should be the end of the span containing now, got %v", ext.LastBooking)
	}
	if ext.NextBooking == nil || !ext.NextBooking.Equal(f.now.Add(48*time.Hour)) {
		t.Errorf("next booking should be the start of the earliest future booking, got %v", ext.NextBooking)
	}
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("Completed Booking Allows Comment", func(t *testing.T) {
		f := newFixture(t)
		drill := f.listItem(t, "Drill", "Cordless drill")
		_, err := f.bookings.CreateBooking(ctx, bookingRepo.CreateBookingOptions{
			Start: f.now.Add(-96 * time.Hour), End: f.now.Add(-24 * time.Hour),
			Status: model.BookingStatusApproved, BookerID: f.renter.ID, ItemID: drill.ID,
		})
		if err != nil {
			t.Fatalf("book: %v", err)
		}

		created, err := f.uc.AddComment(ctx, item.CreateCommentInput{ItemID: drill.ID, AuthorID: f.renter.ID, Text: "Great drill"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Author.ID != f.renter.ID || created.Text != "Great drill" {
			t.Errorf("unexpected comment: %+v", created)
		}
		if !created.Created.Equal(f.now) {
			t.Errorf("created must be stamped now, got %v", created.Created)
		}
	})

	t.Run("Ongoing Booking Is Not Enough", func(t *testing.T) {
		f := newFixture(t)
		drill := f.listItem(t, "Drill", "Cordless drill")
		_, err := f.bookings.CreateBooking(ctx, bookingRepo.CreateBookingOptions{
			Start: f.now.Add(-24 * time.Hour), End: f.now.Add(24 * time.Hour),
			Status: model.BookingStatusApproved, BookerID: f.renter.ID, ItemID: drill.ID,
		})
		if err != nil {
			t.Fatalf("book: %v", err)
		}

		_, err = f.uc.AddComment(ctx, item.CreateCommentInput{ItemID: drill.ID, AuthorID: f.renter.ID, Text: "Too early"})
		if !errors.Is(err, item.ErrCommentNotAllowed) {
			t.Errorf("expected ErrCommentNotAllowed, got %v", err)
		}
	})

	t.Run("No Booking At All", func(t *testing.T) {
		f := newFixture(t)
		drill := f.listItem(t, "Drill", "Cordless drill")

		_, err := f.uc.AddComment(ctx, item.CreateCommentInput{ItemID: drill.ID, AuthorID: f.renter.ID, Text: "Never rented"})
		if !errors.Is(err, item.ErrCommentNotAllowed) {
			t.Errorf("expected ErrCommentNotAllowed, got %v", err)
		}
	})
}

func TestItemDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("Absent Item", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Detail(ctx, 42)
		if !errors.Is(err, item.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("Includes Comments", func(t *testing.T) {
		f := newFixture(t)
		drill := f.listItem(t, "Drill", "Cordless drill")
		_, err := f.bookings.CreateBooking(ctx, bookingRepo.CreateBookingOptions{
			Start: f.now.Add(-96 * time.Hour), End: f.now.Add(-24 * time.Hour),
			Status: model.BookingStatusApproved, BookerID: f.renter.ID, ItemID: drill.ID,
		})
		if err != nil {
			t.Fatalf("book: %v", err)
		}
		if _, err := f.uc.AddComment(ctx, item.CreateCommentInput{ItemID: drill.ID, AuthorID: f.renter.ID, Text: "Great drill"}); err != nil {
			t.Fatalf("comment: %v", err)
		}

		found, err := f.uc.Detail(ctx, drill.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found.Comments) != 1 || found.Comments[0] != "Great drill" {
			t.Errorf("expected the comment text, got %+v", found.Comments)
		}
	})
}

func boolPtr(b bool) *bool { return &b }
