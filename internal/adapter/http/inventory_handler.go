package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	inventoryUC "github.com/Yughie/Phylab-System/internal/usecase/inventory"
)

type InventoryHandler struct{ uc *inventoryUC.Usecase }

func NewInventoryHandler(uc *inventoryUC.Usecase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

type upsertItemReq struct {
	ItemKey     string `json:"item_key" validate:"required"`
	Name        string `json:"name"     validate:"required"`
	Category    string `json:"category"`
	Stock       int    `json:"stock"    validate:"gte=0"`
	Cabinet     string `json:"cabinet"`
	Description string `json:"description"`
	ItemType    string `json:"type"`
	Use         string `json:"use"`
	ImageURL    string `json:"image_url"`
}

func (r upsertItemReq) input() inventoryUC.UpsertInput {
	return inventoryUC.UpsertInput{
		ItemKey:     r.ItemKey,
		Name:        r.Name,
		Category:    r.Category,
		Stock:       r.Stock,
		Cabinet:     r.Cabinet,
		Description: r.Description,
		ItemType:    r.ItemType,
		Use:         r.Use,
		ImageURL:    r.ImageURL,
	}
}

func (h *InventoryHandler) Create(c echo.Context) error {
	var req upsertItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	out, err := h.uc.Create(c.Request().Context(), req.input())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *InventoryHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("item_key"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InventoryHandler) Update(c echo.Context) error {
	var req upsertItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	req.ItemKey = c.Param("item_key")
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	out, err := h.uc.Update(c.Request().Context(), c.Param("item_key"), req.input())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InventoryHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("item_key")); err != nil {
		return jsonError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type adjustStockReq struct {
	Delta int `json:"delta" validate:"required"`
}

func (h *InventoryHandler) AdjustStock(c echo.Context) error {
	var req adjustStockReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	out, err := h.uc.AdjustStock(c.Request().Context(), c.Param("item_key"), req.Delta)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InventoryHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
