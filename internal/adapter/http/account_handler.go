package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	accountUC "github.com/Yughie/Phylab-System/internal/usecase/account"
)

type AccountHandler struct{ uc *accountUC.Usecase }

func NewAccountHandler(uc *accountUC.Usecase) *AccountHandler { return &AccountHandler{uc: uc} }

type registerReq struct {
	FullName string `json:"full_name" validate:"required"`
	IDNumber string `json:"id_number" validate:"required"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
}

func (h *AccountHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	out, err := h.uc.Register(c.Request().Context(), accountUC.RegisterInput{
		FullName: req.FullName,
		IDNumber: req.IDNumber,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *AccountHandler) ListStudents(c echo.Context) error {
	out, err := h.uc.ListStudents(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
