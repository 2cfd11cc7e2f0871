package history

import (
	"context"
	"errors"
	"testing"

	domain "github.com/Yughie/Phylab-System/internal/domain/request"
	"github.com/Yughie/Phylab-System/internal/testutil/requestmock"
)

func TestList_PassesFiltersThrough(t *testing.T) {
	var seen domain.ItemFilter
	uc := NewUsecase(&requestmock.Repo{
		ListItemsFn: func(ctx context.Context, f domain.ItemFilter) ([]domain.FlatItem, error) {
			seen = f
			return []domain.FlatItem{{RequestID: "R1", ItemKey: "resistor"}}, nil
		},
	})

	got, err := uc.List(context.Background(), domain.StatusReturned, "2021-00017")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if seen.Status != domain.StatusReturned || seen.StudentID != "2021-00017" {
		t.Fatalf("filter not passed through: %+v", seen)
	}
	if len(got) != 1 {
		t.Fatalf("items = %d, want 1", len(got))
	}
}

func TestList_EmptyFiltersMeanEverything(t *testing.T) {
	var seen domain.ItemFilter
	uc := NewUsecase(&requestmock.Repo{
		ListItemsFn: func(ctx context.Context, f domain.ItemFilter) ([]domain.FlatItem, error) {
			seen = f
			return nil, nil
		},
	})

	if _, err := uc.List(context.Background(), "", ""); err != nil {
		t.Fatalf("List: %v", err)
	}
	if seen.Status != "" || seen.StudentID != "" {
		t.Fatalf("expected empty filter, got %+v", seen)
	}
}

func TestList_InvalidStatus(t *testing.T) {
	uc := NewUsecase(&requestmock.Repo{})

	_, err := uc.List(context.Background(), domain.Status("misplaced"), "")
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("want ErrInvalidStatus, got %v", err)
	}
}
