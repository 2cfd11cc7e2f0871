package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const validReqIDHex = "0123456789abcdef0123456789abcdef"

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func idempHandler(rdb *redis.Client, calls *int) echo.HandlerFunc {
	return IdempotencyMiddleware(rdb, time.Minute)(func(c echo.Context) error {
		*calls++
		return c.JSON(http.StatusCreated, map[string]string{"result": "done"})
	})
}

func doPatch(t *testing.T, h echo.HandlerFunc, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/api/borrow-requests/R1/items", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/borrow-requests/:ref/items")
	if err := h(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	return rec
}

func validHeaders() map[string]string {
	return map[string]string{
		"Ax-Request-Id": validReqIDHex,
		"Ax-Request-At": strconv.FormatInt(time.Now().Unix(), 10),
		"Ax-Actor-Id":   "admin@lab.edu",
	}
}

func TestIdempotency_BypassesReads(t *testing.T) {
	rdb := newTestRedis(t)
	calls := 0
	h := IdempotencyMiddleware(rdb, time.Minute)(func(c echo.Context) error {
		calls++
		return c.NoContent(http.StatusOK)
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/loans", nil) // no headers at all
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK || calls != 1 {
		t.Fatalf("GET must bypass: code=%d calls=%d", rec.Code, calls)
	}
}

func TestIdempotency_HeaderValidation(t *testing.T) {
	rdb := newTestRedis(t)
	calls := 0
	h := idempHandler(rdb, &calls)

	cases := []struct {
		name   string
		mutate func(m map[string]string)
	}{
		{"missing request id", func(m map[string]string) { delete(m, "Ax-Request-Id") }},
		{"malformed request id", func(m map[string]string) { m["Ax-Request-Id"] = "not-a-token" }},
		{"missing actor id", func(m map[string]string) { delete(m, "Ax-Actor-Id") }},
		{"actor id too sloppy", func(m map[string]string) { m["Ax-Actor-Id"] = "has spaces!" }},
		{"missing request at", func(m map[string]string) { delete(m, "Ax-Request-At") }},
		{"naive timestamp", func(m map[string]string) { m["Ax-Request-At"] = "2025-09-05T10:00:00" }},
		{"skewed timestamp", func(m map[string]string) {
			m["Ax-Request-At"] = strconv.FormatInt(time.Now().Add(-time.Hour).Unix(), 10)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			headers := validHeaders()
			tc.mutate(headers)
			rec := doPatch(t, h, `{}`, headers)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("code = %d, want 400: %s", rec.Code, rec.Body)
			}
		})
	}
	if calls != 0 {
		t.Fatalf("handler ran %d times behind invalid headers", calls)
	}
}

func TestIdempotency_ReplaysFinalResponse(t *testing.T) {
	rdb := newTestRedis(t)
	calls := 0
	h := idempHandler(rdb, &calls)
	body := `{"items": [{"id": 41, "status": "approved"}]}`

	first := doPatch(t, h, body, validHeaders())
	if first.Code != http.StatusCreated {
		t.Fatalf("first call code = %d: %s", first.Code, first.Body)
	}

	second := doPatch(t, h, body, validHeaders())
	if second.Code != http.StatusCreated {
		t.Fatalf("replay code = %d, want 201: %s", second.Code, second.Body)
	}
	if second.Body.String() != first.Body.String() {
		t.Fatalf("replay body differs: %s vs %s", second.Body, first.Body)
	}
	if calls != 1 {
		t.Fatalf("handler ran %d times, want 1", calls)
	}
}

func TestIdempotency_BodyMismatchConflicts(t *testing.T) {
	rdb := newTestRedis(t)
	calls := 0
	h := idempHandler(rdb, &calls)

	doPatch(t, h, `{"items": [{"id": 41, "status": "approved"}]}`, validHeaders())
	rec := doPatch(t, h, `{"items": [{"id": 41, "status": "rejected"}]}`, validHeaders())
	if rec.Code != http.StatusConflict {
		t.Fatalf("code = %d, want 409: %s", rec.Code, rec.Body)
	}
	if calls != 1 {
		t.Fatalf("handler ran %d times, want 1", calls)
	}
}

func TestIdempotency_InProgressConflicts(t *testing.T) {
	rdb := newTestRedis(t)
	calls := 0
	h := idempHandler(rdb, &calls)
	headers := validHeaders()
	body := `{"items": [{"id": 41, "quantity": 2}]}`

	// simulate a concurrent first attempt that has not finished: provisional
	// entry present, no final response stored
	key := buildKey(http.MethodPatch, "/api/borrow-requests/:ref/items", headers["Ax-Actor-Id"], headers["Ax-Request-Id"])
	entry := idempEntry{InProgress: true, BodySHA256: bodyHash([]byte(body))}
	if _, err := provisionalSet(context.Background(), rdb, key, entry); err != nil {
		t.Fatalf("seed provisional: %v", err)
	}

	rec := doPatch(t, h, body, headers)
	if rec.Code != http.StatusConflict {
		t.Fatalf("code = %d, want 409: %s", rec.Code, rec.Body)
	}
	if calls != 0 {
		t.Fatalf("handler must not run while in progress")
	}
}

func TestIdempotency_UUIDRequestIDAccepted(t *testing.T) {
	rdb := newTestRedis(t)
	calls := 0
	h := idempHandler(rdb, &calls)

	headers := validHeaders()
	headers["Ax-Request-Id"] = "a3bb189e-8bf9-3888-9912-ace4e6543002"
	rec := doPatch(t, h, `{}`, headers)
	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %d, want 201: %s", rec.Code, rec.Body)
	}
	if calls != 1 {
		t.Fatalf("handler ran %d times, want 1", calls)
	}
}
