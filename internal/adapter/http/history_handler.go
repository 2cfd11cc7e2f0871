package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	requestDomain "github.com/Yughie/Phylab-System/internal/domain/request"
	"github.com/Yughie/Phylab-System/internal/usecase/history"
)

type HistoryHandler struct{ uc *history.Usecase }

func NewHistoryHandler(uc *history.Usecase) *HistoryHandler { return &HistoryHandler{uc: uc} }

type historyQuery struct {
	Status    string `query:"status"     validate:"omitempty,reqstatus"`
	StudentID string `query:"student_id"`
}

func (h *HistoryHandler) List(c echo.Context) error {
	var q historyQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query"})
	}
	if err := c.Validate(&q); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	out, err := h.uc.List(c.Request().Context(), requestDomain.Status(q.Status), q.StudentID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
