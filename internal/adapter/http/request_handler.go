package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	requestDomain "github.com/Yughie/Phylab-System/internal/domain/request"
	requestUC "github.com/Yughie/Phylab-System/internal/usecase/request"
)

type RequestHandler struct{ uc *requestUC.Usecase }

func NewRequestHandler(uc *requestUC.Usecase) *RequestHandler { return &RequestHandler{uc: uc} }

type submitItemReq struct {
	ItemName  string `json:"item_name"  validate:"required"`
	ItemKey   string `json:"item_key"`
	Quantity  int    `json:"quantity"   validate:"omitempty,gte=1"`
	ItemImage string `json:"item_image"`
}

type submitReq struct {
	RequestID   string          `json:"request_id"`
	StudentName string          `json:"student_name" validate:"required"`
	StudentID   string          `json:"student_id"   validate:"required"`
	Email       string          `json:"email"        validate:"required,email"`
	TeacherName string          `json:"teacher_name"`
	Purpose     string          `json:"purpose"`
	BorrowDate  string          `json:"borrow_date"  validate:"required,datetime=2006-01-02"`
	ReturnDate  string          `json:"return_date"  validate:"required,datetime=2006-01-02"`
	Items       []submitItemReq `json:"items"        validate:"required,min=1,dive"`
}

func (h *RequestHandler) Submit(c echo.Context) error {
	var req submitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	borrowDate, _ := time.Parse("2006-01-02", req.BorrowDate)
	returnDate, _ := time.Parse("2006-01-02", req.ReturnDate)

	in := requestUC.SubmitInput{
		RequestID:   req.RequestID,
		StudentName: req.StudentName,
		StudentID:   req.StudentID,
		Email:       req.Email,
		TeacherName: req.TeacherName,
		Purpose:     req.Purpose,
		BorrowDate:  borrowDate,
		ReturnDate:  returnDate,
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, requestUC.SubmitItemInput{
			ItemName:  it.ItemName,
			ItemKey:   it.ItemKey,
			Quantity:  it.Quantity,
			ItemImage: it.ItemImage,
		})
	}

	out, err := h.uc.Submit(c.Request().Context(), in)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *RequestHandler) Get(c echo.Context) error {
	ref := requestDomain.ParseRef(c.Param("ref"))
	out, err := h.uc.Get(c.Request().Context(), ref)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RequestHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	if s := c.QueryParam("status"); s != "" {
		out, err := h.uc.ListByStatus(ctx, requestDomain.Status(s))
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, out)
	}
	if sid := c.QueryParam("student_id"); sid != "" {
		out, err := h.uc.ListByStudent(ctx, sid)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, out)
	}
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "status or student_id query param required"})
}
