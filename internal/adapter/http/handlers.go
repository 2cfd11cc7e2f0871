package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	accountDomain "github.com/Yughie/Phylab-System/internal/domain/account"
	inventoryDomain "github.com/Yughie/Phylab-System/internal/domain/inventory"
	requestDomain "github.com/Yughie/Phylab-System/internal/domain/request"
	inventoryUC "github.com/Yughie/Phylab-System/internal/usecase/inventory"
	requestUC "github.com/Yughie/Phylab-System/internal/usecase/request"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// jsonError maps domain errors onto HTTP codes; anything unrecognized is a
// server error (transaction failures land here).
func jsonError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, requestDomain.ErrNotFound),
		errors.Is(err, inventoryDomain.ErrNotFound),
		errors.Is(err, accountDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, requestDomain.ErrEmptyBatch),
		errors.Is(err, requestDomain.ErrInvalidStatus),
		errors.Is(err, requestUC.ErrNoItems),
		errors.Is(err, inventoryUC.ErrInvalidStock):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, inventoryDomain.ErrDuplicateKey),
		errors.Is(err, accountDomain.ErrDuplicateEmail),
		errors.Is(err, accountDomain.ErrDuplicateIDNo):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
