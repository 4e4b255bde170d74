package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	bookingHTTP "github.com/msshishlin/shareit/internal/booking/delivery/http"
	bookingInmem "github.com/msshishlin/shareit/internal/booking/repository/inmem"
	"github.com/msshishlin/shareit/internal/booking/usecase"
	itemRepo "github.com/msshishlin/shareit/internal/item/repository"
	itemInmem "github.com/msshishlin/shareit/internal/item/repository/inmem"
	"github.com/msshishlin/shareit/internal/middleware"
	userRepo "github.com/msshishlin/shareit/internal/user/repository"
	userInmem "github.com/msshishlin/shareit/internal/user/repository/inmem"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}

// newRouter wires the booking routes over in-memory stores, seeded with
// an owner (id 1), a booker (id 2), the owner's drill (item 1) and an
// unavailable saw (item 2).
func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx := context.Background()
	l := &mockLogger{}

	users := userInmem.New()
	items := itemInmem.New(users)
	bookings := bookingInmem.New(users, items)

	if _, err := users.CreateUser(ctx, userRepo.CreateUserOptions{Name: "Owner", Email: "owner@mail.com"}); err != nil {
		t.Fatalf("seed owner: %v", err)
	}
	if _, err := users.CreateUser(ctx, userRepo.CreateUserOptions{Name: "Booker", Email: "booker@mail.com"}); err != nil {
		t.Fatalf("seed booker: %v", err)
	}
	if _, err := items.CreateItem(ctx, itemRepo.CreateItemOptions{
		Name:        "Drill",
		Description: "Cordless drill",
		Available:   true,
		OwnerID:     1,
	}); err != nil {
		t.Fatalf("seed item: %v", err)
	}
	if _, err := items.CreateItem(ctx, itemRepo.CreateItemOptions{
		Name:        "Broken saw",
		Description: "Waiting for repair",
		Available:   false,
		OwnerID:     1,
	}); err != nil {
		t.Fatalf("seed unavailable item: %v", err)
	}

	uc := usecase.New(bookings, users, items, l)
	h := bookingHTTP.New(l, uc)

	r := gin.New()
	bookingHTTP.RegisterRoutes(r.Group("/"), h, middleware.New(l))
	return r
}

func do(r *gin.Engine, method, path, body string, sharer int64) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if sharer != 0 {
		req.Header.Set(middleware.SharerHeader, strconv.FormatInt(sharer, 10))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createBody(itemID int64) string {
	const layout = "2006-01-02T15:04:05"
	start := time.Now().Add(24 * time.Hour).Format(layout)
	end := time.Now().Add(48 * time.Hour).Format(layout)
	return fmt.Sprintf(`{"itemId":%d,"start":%q,"end":%q}`, itemID, start, end)
}

func TestBookingEndpoints(t *testing.T) {
	t.Run("Create Returns 201 Waiting", func(t *testing.T) {
		r := newRouter(t)
		w := do(r, http.MethodPost, "/bookings", createBody(1), 2)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"status":"WAITING"`) {
			t.Errorf("expected WAITING status, got %s", w.Body.String())
		}
	})

	t.Run("Absent Item Returns 404", func(t *testing.T) {
		r := newRouter(t)
		w := do(r, http.MethodPost, "/bookings", createBody(99), 2)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("Unavailable Item Returns 400", func(t *testing.T) {
		r := newRouter(t)
		w := do(r, http.MethodPost, "/bookings", createBody(2), 2)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("Booker View Returns 200", func(t *testing.T) {
		r := newRouter(t)
		do(r, http.MethodPost, "/bookings", createBody(1), 2)
		w := do(r, http.MethodGet, "/bookings/1", "", 2)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 for booker view, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("Stranger View Returns 403", func(t *testing.T) {
		r := newRouter(t)
		do(r, http.MethodPost, "/bookings", createBody(1), 2)
		w := do(r, http.MethodGet, "/bookings/1", "", 99)
		if w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("Approve By Non Owner Returns 403", func(t *testing.T) {
		r := newRouter(t)
		do(r, http.MethodPost, "/bookings", createBody(1), 2)
		w := do(r, http.MethodPatch, "/bookings/1?approved=true", "", 2)
		if w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("Approve By Owner Returns 200 Approved", func(t *testing.T) {
		r := newRouter(t)
		do(r, http.MethodPost, "/bookings", createBody(1), 2)
		w := do(r, http.MethodPatch, "/bookings/1?approved=true", "", 1)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"status":"APPROVED"`) {
			t.Errorf("expected APPROVED status, got %s", w.Body.String())
		}
	})

	t.Run("Missing Sharer Header Returns 400", func(t *testing.T) {
		r := newRouter(t)
		w := do(r, http.MethodGet, "/bookings", "", 0)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("Unknown State Returns 400", func(t *testing.T) {
		r := newRouter(t)
		w := do(r, http.MethodGet, "/bookings?state=BOGUS", "", 2)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}
