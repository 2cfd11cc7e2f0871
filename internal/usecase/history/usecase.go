// Package history flattens every line item with its parent request's
// context for reporting. Pure read side: no state, recomputed per query.
package history

import (
	"context"

	requestDomain "github.com/Yughie/Phylab-System/internal/domain/request"
)

type Usecase struct{ repo requestDomain.Repository }

func NewUsecase(r requestDomain.Repository) *Usecase { return &Usecase{repo: r} }

// List applies the optional status and student filters as a conjunction.
// Empty filters mean "everything".
func (u *Usecase) List(ctx context.Context, status requestDomain.Status, studentID string) ([]requestDomain.FlatItem, error) {
	if status != "" && !status.Valid() {
		return nil, requestDomain.ErrInvalidStatus
	}
	return u.repo.ListItems(ctx, requestDomain.ItemFilter{Status: status, StudentID: studentID})
}
