package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	userHTTP "github.com/msshishlin/shareit/internal/user/delivery/http"
	"github.com/msshishlin/shareit/internal/user/repository/inmem"
	"github.com/msshishlin/shareit/internal/user/usecase"
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

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	l := &mockLogger{}
	uc := usecase.New(inmem.New(), l)
	h := userHTTP.New(l, uc)

	r := gin.New()
	userHTTP.RegisterRoutes(r.Group("/"), h)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUserEndpoints(t *testing.T) {
	t.Run("Create Returns 201 With Entity", func(t *testing.T) {
		r := newRouter()
		w := do(r, http.MethodPost, "/users", `{"name":"Alice","email":"alice@mail.com"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			ID    int64  `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if resp.ID == 0 || resp.Name != "Alice" || resp.Email != "alice@mail.com" {
			t.Errorf("unexpected body: %+v", resp)
		}
	})

	t.Run("Duplicate Email Returns 409", func(t *testing.T) {
		r := newRouter()
		do(r, http.MethodPost, "/users", `{"name":"Alice","email":"alice@mail.com"}`)
		w := do(r, http.MethodPost, "/users", `{"name":"Bob","email":"alice@mail.com"}`)
		if w.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "error") {
			t.Errorf("expected an error body, got %s", w.Body.String())
		}
	})

	t.Run("Get Absent Returns 404", func(t *testing.T) {
		r := newRouter()
		w := do(r, http.MethodGet, "/users/42", "")
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("Bad Path ID Returns 400", func(t *testing.T) {
		r := newRouter()
		w := do(r, http.MethodGet, "/users/abc", "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Patch Merges And Returns 200", func(t *testing.T) {
		r := newRouter()
		do(r, http.MethodPost, "/users", `{"name":"Alice","email":"alice@mail.com"}`)
		w := do(r, http.MethodPatch, "/users/1", `{"name":"Alicia"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "Alicia") || !strings.Contains(w.Body.String(), "alice@mail.com") {
			t.Errorf("unexpected merge result: %s", w.Body.String())
		}
	})

	t.Run("Delete Then Get Returns 404", func(t *testing.T) {
		r := newRouter()
		do(r, http.MethodPost, "/users", `{"name":"Alice","email":"alice@mail.com"}`)
		if w := do(r, http.MethodDelete, "/users/1", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200 on delete, got %d", w.Code)
		}
		if w := do(r, http.MethodGet, "/users/1", ""); w.Code != http.StatusNotFound {
			t.Errorf("expected 404 after delete, got %d", w.Code)
		}
	})
}
