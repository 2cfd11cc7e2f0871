package mysql

import (
	"context"
	"errors"
	"testing"

	domain "github.com/Yughie/Phylab-System/internal/domain/request"
	"github.com/Yughie/Phylab-System/internal/domain/uow"
)

func TestWithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	err := u.WithinTx(ctx, func(r uow.Repos) error {
		return r.Requests.Create(ctx, makeRequest("T1", "s1"))
	})
	if err != nil {
		t.Fatalf("WithinTx commit: %v", err)
	}

	if _, err := NewRequestRepository(db).GetByRequestID(ctx, "T1"); err != nil {
		t.Fatalf("GetByRequestID after commit: %v", err)
	}
}

func TestWithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	wantErr := errors.New("boom")
	_ = u.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Requests.Create(ctx, makeRequest("T2", "s1")); err != nil {
			return err
		}
		return wantErr // force rollback
	})

	_, err := NewRequestRepository(db).Resolve(ctx, domain.RefByRequestID("T2"))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found after rollback, got %v", err)
	}
}

func TestWithinRequestTx_ResolvesAndPassesRequest(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	seed := makeRequest("T3", "s1")
	if err := NewRequestRepository(db).Create(ctx, seed); err != nil {
		t.Fatalf("Create: %v", err)
	}

	var seen string
	err := u.WithinRequestTx(ctx, domain.ParseRef("T3"), func(r uow.Repos, req *domain.BorrowRequest) error {
		seen = req.RequestID
		if len(req.Items) != 2 {
			t.Fatalf("items not loaded inside tx: %+v", req.Items)
		}
		req.Status = domain.StatusBorrowed
		return r.Requests.Save(ctx, req)
	})
	if err != nil {
		t.Fatalf("WithinRequestTx: %v", err)
	}
	if seen != "T3" {
		t.Fatalf("callback saw %q", seen)
	}

	got, err := NewRequestRepository(db).GetByRequestID(ctx, "T3")
	if err != nil {
		t.Fatalf("GetByRequestID: %v", err)
	}
	if got.Status != domain.StatusBorrowed {
		t.Fatalf("status = %s, want borrowed", got.Status)
	}
}

func TestWithinRequestTx_NotFound(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	err := u.WithinRequestTx(ctx, domain.ParseRef("nope"), func(r uow.Repos, req *domain.BorrowRequest) error {
		t.Fatal("callback must not run")
		return nil
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWithinRequestTx_RollbackLeavesNoPartialState(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()
	repo := NewRequestRepository(db)

	seed := makeRequest("T4", "s1")
	if err := repo.Create(ctx, seed); err != nil {
		t.Fatalf("Create: %v", err)
	}

	wantErr := errors.New("mid-split failure")
	_ = u.WithinRequestTx(ctx, domain.ParseRef("T4"), func(r uow.Repos, req *domain.BorrowRequest) error {
		// simulate the dangerous window: loan created, source item not yet deleted
		if err := r.Requests.Create(ctx, makeRequest("T4-deadbeef", "s1")); err != nil {
			return err
		}
		return wantErr
	})

	// the half-made loan record must be gone
	_, err := repo.Resolve(ctx, domain.RefByRequestID("T4-deadbeef"))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("loan record survived rollback: %v", err)
	}
}
