package gateway_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/msshishlin/shareit/internal/gateway"
	"github.com/msshishlin/shareit/internal/gateway/relay"
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

// capture records what the backend saw for one forwarded request.
type capture struct {
	hit    bool
	method string
	path   string
	query  string
	body   string
	sharer string
	reqID  string
}

func newGateway(t *testing.T, backend http.Handler) (*gateway.Gateway, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ts := httptest.NewServer(backend)
	t.Cleanup(ts.Close)

	gw, err := gateway.New(gateway.Config{
		Logger: &mockLogger{},
		Port:   8080,
		Mode:   gin.TestMode,
		Relay:  relay.NewClient(ts.URL),
	})
	if err != nil {
		t.Fatalf("gateway.New: %v", err)
	}
	return gw, ts
}

func capturingBackend(cap *capture, status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		cap.hit = true
		cap.method = r.Method
		cap.path = r.URL.Path
		cap.query = r.URL.RawQuery
		cap.body = string(raw)
		cap.sharer = r.Header.Get("X-Sharer-User-Id")
		cap.reqID = r.Header.Get("X-Request-Id")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

func send(gw *gateway.Gateway, method, target, body string, sharer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if sharer != "" {
		req.Header.Set("X-Sharer-User-Id", sharer)
	}
	w := httptest.NewRecorder()
	gw.Handler().ServeHTTP(w, req)
	return w
}

func TestGatewayForwarding(t *testing.T) {
	t.Run("Copies Status And Body Verbatim", func(t *testing.T) {
		var cap capture
		gw, _ := newGateway(t, capturingBackend(&cap, http.StatusCreated, `{"id":1,"name":"Alice","email":"alice@mail.com"}`))

		w := send(gw, http.MethodPost, "/users", `{"name":"Alice","email":"alice@mail.com"}`, "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if w.Body.String() != `{"id":1,"name":"Alice","email":"alice@mail.com"}` {
			t.Errorf("body not verbatim: %s", w.Body.String())
		}
		if !cap.hit || cap.method != http.MethodPost || cap.path != "/users" {
			t.Errorf("backend saw %+v", cap)
		}
	})

	t.Run("Propagates Sharer And Request Id", func(t *testing.T) {
		var cap capture
		gw, _ := newGateway(t, capturingBackend(&cap, http.StatusOK, `[]`))

		w := send(gw, http.MethodGet, "/items", "", "7")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if cap.sharer != "7" {
			t.Errorf("expected sharer header 7, got %q", cap.sharer)
		}
		if cap.reqID == "" {
			t.Errorf("expected a generated request id")
		}
	})

	t.Run("Forwards Query Parameters", func(t *testing.T) {
		var cap capture
		gw, _ := newGateway(t, capturingBackend(&cap, http.StatusOK, `[]`))

		w := send(gw, http.MethodGet, "/bookings?state=WAITING&from=0&size=5", "", "7")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(cap.query, "state=WAITING") || !strings.Contains(cap.query, "size=5") {
			t.Errorf("query not forwarded: %q", cap.query)
		}
	})

	t.Run("Passes Server Errors Through", func(t *testing.T) {
		var cap capture
		gw, _ := newGateway(t, capturingBackend(&cap, http.StatusNotFound, `{"error":"user with id = 42: user not found"}`))

		w := send(gw, http.MethodGet, "/users/42", "", "")
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "user not found") {
			t.Errorf("body not verbatim: %s", w.Body.String())
		}
	})
}

func TestGatewayValidation(t *testing.T) {
	reject := func(t *testing.T, method, target, body, sharer string) {
		t.Helper()
		var cap capture
		gw, _ := newGateway(t, capturingBackend(&cap, http.StatusOK, `{}`))

		w := send(gw, method, target, body, sharer)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s %s: expected 400, got %d: %s", method, target, w.Code, w.Body.String())
		}
		if cap.hit {
			t.Errorf("%s %s: invalid request must not reach the server", method, target)
		}
	}

	t.Run("User Body", func(t *testing.T) {
		reject(t, http.MethodPost, "/users", `{"name":"Alice"}`, "")
		reject(t, http.MethodPost, "/users", `{"name":"Alice","email":"not-an-email"}`, "")
		reject(t, http.MethodPost, "/users", `{"name":"   ","email":"alice@mail.com"}`, "")
		reject(t, http.MethodPatch, "/users/1", `{"email":"still-not-an-email"}`, "")
	})

	t.Run("Missing Sharer Header", func(t *testing.T) {
		reject(t, http.MethodGet, "/items", "", "")
		reject(t, http.MethodGet, "/bookings", "", "abc")
		reject(t, http.MethodPost, "/requests", `{"description":"Need a drill"}`, "-4")
	})

	t.Run("Item Body", func(t *testing.T) {
		reject(t, http.MethodPost, "/items", `{"name":"Drill","description":"x"}`, "1")
		reject(t, http.MethodPost, "/items", `{"name":"","description":"x","available":true}`, "1")
		reject(t, http.MethodPost, "/items/1/comment", `{"text":""}`, "1")
		reject(t, http.MethodPost, "/items/1/comment", `{"text":"`+strings.Repeat("a", 513)+`"}`, "1")
	})

	t.Run("Request Body", func(t *testing.T) {
		reject(t, http.MethodPost, "/requests", `{}`, "1")
		reject(t, http.MethodPost, "/requests", `{"description":"`+strings.Repeat("a", 513)+`"}`, "1")
	})

	t.Run("Booking Body", func(t *testing.T) {
		past := time.Now().Add(-48 * time.Hour).Format("2006-01-02T15:04:05")
		future := time.Now().Add(48 * time.Hour).Format("2006-01-02T15:04:05")

		reject(t, http.MethodPost, "/bookings", `{"start":"`+future+`","end":"`+future+`"}`, "1")
		reject(t, http.MethodPost, "/bookings", `{"itemId":1,"start":"`+past+`","end":"`+future+`"}`, "1")
		reject(t, http.MethodPost, "/bookings", `{"itemId":1,"start":"`+future+`","end":"`+past+`"}`, "1")
	})

	t.Run("Booking Query", func(t *testing.T) {
		reject(t, http.MethodGet, "/bookings?state=BOGUS", "", "1")
		reject(t, http.MethodGet, "/bookings?from=-1", "", "1")
		reject(t, http.MethodGet, "/bookings/owner?size=0", "", "1")
		reject(t, http.MethodPatch, "/bookings/1?approved=maybe", "", "1")
	})

	t.Run("Valid Booking Is Forwarded", func(t *testing.T) {
		var cap capture
		gw, _ := newGateway(t, capturingBackend(&cap, http.StatusCreated, `{}`))

		future1 := time.Now().Add(24 * time.Hour).Format("2006-01-02T15:04:05")
		future2 := time.Now().Add(96 * time.Hour).Format("2006-01-02T15:04:05")
		w := send(gw, http.MethodPost, "/bookings", `{"itemId":1,"start":"`+future1+`","end":"`+future2+`"}`, "1")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if !cap.hit {
			t.Errorf("expected the backend to be hit")
		}
		if !strings.Contains(cap.body, `"itemId":1`) {
			t.Errorf("payload not re-encoded: %s", cap.body)
		}
	})
}
