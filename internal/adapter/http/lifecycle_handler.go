package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	requestDomain "github.com/Yughie/Phylab-System/internal/domain/request"
	"github.com/Yughie/Phylab-System/internal/usecase/lifecycle"
)

type LifecycleHandler struct{ uc *lifecycle.Usecase }

func NewLifecycleHandler(uc *lifecycle.Usecase) *LifecycleHandler {
	return &LifecycleHandler{uc: uc}
}

type updateItemsReq struct {
	Items []lifecycle.ItemUpdate `json:"items"`
}

// UpdateItems is the item-level transition endpoint; the usecase rejects
// empty batches and unrecognized status values, and silently skips unknown
// item ids.
func (h *LifecycleHandler) UpdateItems(c echo.Context) error {
	ref := requestDomain.ParseRef(c.Param("ref"))

	var req updateItemsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.ApplyItemStatusUpdates(c.Request().Context(), ref, req.Items)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LifecycleHandler) Approve(c echo.Context) error {
	ref := requestDomain.ParseRef(c.Param("ref"))
	out, err := h.uc.Approve(c.Request().Context(), ref)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type rejectReq struct {
	AdminRemark string `json:"admin_remark"`
	RemarkType  string `json:"remark_type"`
}

func (h *LifecycleHandler) Reject(c echo.Context) error {
	ref := requestDomain.ParseRef(c.Param("ref"))

	var req rejectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Reject(c.Request().Context(), ref, req.AdminRemark, req.RemarkType)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LifecycleHandler) MarkReturned(c echo.Context) error {
	ref := requestDomain.ParseRef(c.Param("ref"))
	out, err := h.uc.MarkReturned(c.Request().Context(), ref)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LifecycleHandler) ListBorrowed(c echo.Context) error {
	out, err := h.uc.ListCurrentlyBorrowed(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
