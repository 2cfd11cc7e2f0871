package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	requestDomain "github.com/Yughie/Phylab-System/internal/domain/request"
	"github.com/Yughie/Phylab-System/internal/domain/uow"
	"github.com/Yughie/Phylab-System/internal/testutil/requestmock"
	"github.com/Yughie/Phylab-System/internal/testutil/uowmock"
	"github.com/Yughie/Phylab-System/internal/usecase/lifecycle"
)

// uow mock that resolves the given request and runs the callback against the
// supplied repository, mimicking a committed transaction
func passthroughUoW(repo *requestmock.Repo, req *requestDomain.BorrowRequest) *uowmock.UoW {
	u := uowmock.New()
	u.WithinRequestTxFn = func(ctx context.Context, ref requestDomain.Ref, fn func(r uow.Repos, req *requestDomain.BorrowRequest) error) error {
		if req == nil {
			return requestDomain.ErrNotFound
		}
		return fn(uow.Repos{Requests: repo}, req)
	}
	return u
}

func patchCtx(e *echo.Echo, body string, ref string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPatch, "/api/borrow-requests/"+ref+"/items", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("ref")
	c.SetParamValues(ref)
	return c, rec
}

func TestUpdateItems(t *testing.T) {
	fixture := &requestDomain.BorrowRequest{
		ID:        7,
		RequestID: "R1",
		Status:    requestDomain.StatusPending,
		Items: []requestDomain.BorrowRequestItem{
			{ID: 41, BorrowRequestID: 7, ItemKey: "resistor", Quantity: 3, Status: requestDomain.StatusPending},
		},
	}
	repo := &requestmock.Repo{}
	h := NewLifecycleHandler(lifecycle.NewUsecase(repo, passthroughUoW(repo, fixture)))

	e := newEcho()
	c, rec := patchCtx(e, `{"items": [{"id": 41, "quantity": 5}]}`, "R1")
	if err := h.UpdateItems(c); err != nil {
		t.Fatalf("UpdateItems: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var out lifecycle.UpdateResult
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Request.Items[0].Quantity != 5 {
		t.Errorf("quantity not applied: %+v", out.Request.Items)
	}
	if len(out.CreatedLoans) != 0 {
		t.Errorf("unexpected loans: %+v", out.CreatedLoans)
	}
}

func TestUpdateItems_EmptyBatch(t *testing.T) {
	repo := &requestmock.Repo{}
	h := NewLifecycleHandler(lifecycle.NewUsecase(repo, uowmock.New()))

	e := newEcho()
	c, rec := patchCtx(e, `{"items": []}`, "R1")
	if err := h.UpdateItems(c); err != nil {
		t.Fatalf("UpdateItems: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body)
	}
}

func TestUpdateItems_InvalidStatus(t *testing.T) {
	repo := &requestmock.Repo{}
	h := NewLifecycleHandler(lifecycle.NewUsecase(repo, uowmock.New()))

	e := newEcho()
	c, rec := patchCtx(e, `{"items": [{"id": 41, "status": "lost"}]}`, "R1")
	if err := h.UpdateItems(c); err != nil {
		t.Fatalf("UpdateItems: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body)
	}
}

func TestUpdateItems_NotFound(t *testing.T) {
	repo := &requestmock.Repo{}
	h := NewLifecycleHandler(lifecycle.NewUsecase(repo, passthroughUoW(repo, nil)))

	e := newEcho()
	c, rec := patchCtx(e, `{"items": [{"id": 41, "quantity": 5}]}`, "ghost")
	if err := h.UpdateItems(c); err != nil {
		t.Fatalf("UpdateItems: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", rec.Code, rec.Body)
	}
}

func TestReject(t *testing.T) {
	fixture := &requestDomain.BorrowRequest{ID: 7, RequestID: "R1", Status: requestDomain.StatusPending}
	repo := &requestmock.Repo{}
	h := NewLifecycleHandler(lifecycle.NewUsecase(repo, passthroughUoW(repo, fixture)))

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/borrow-requests/R1/reject",
		strings.NewReader(`{"admin_remark": "out of stock", "remark_type": "availability"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("ref")
	c.SetParamValues("R1")

	if err := h.Reject(c); err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var out requestDomain.BorrowRequest
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Status != requestDomain.StatusRejected || out.AdminRemark != "out of stock" {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestListBorrowed(t *testing.T) {
	repo := &requestmock.Repo{
		ListByStatusFn: func(ctx context.Context, s requestDomain.Status) ([]requestDomain.BorrowRequest, error) {
			if s != requestDomain.StatusBorrowed {
				t.Fatalf("listed %s, want borrowed", s)
			}
			return []requestDomain.BorrowRequest{{RequestID: "R1-cafef00d", Status: s}}, nil
		},
	}
	h := NewLifecycleHandler(lifecycle.NewUsecase(repo, uowmock.New()))

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/loans", nil)
	rec := httptest.NewRecorder()

	if err := h.ListBorrowed(e.NewContext(req, rec)); err != nil {
		t.Fatalf("ListBorrowed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var out []requestDomain.BorrowRequest
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 1 || out[0].RequestID != "R1-cafef00d" {
		t.Fatalf("unexpected list: %+v", out)
	}
}
