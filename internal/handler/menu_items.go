package handler

import (
	"net/http"

	"menucatalog/internal/dto"
	"menucatalog/internal/service"

	"github.com/gin-gonic/gin"
)

// MenuItemsHandler exposes the catalog verbs. Absent items are answered with
// 200 and a JSON null body so clients can tell them apart from errors.
type MenuItemsHandler struct{ svc service.MenuItemService }

func NewMenuItemsHandler(svc service.MenuItemService) *MenuItemsHandler {
	return &MenuItemsHandler{svc: svc}
}

// Create POST /v1/menu-items
func (h *MenuItemsHandler) Create(c *gin.Context) {
	var in dto.CreateMenuItemInput
	if !bindJSON(c, &in) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List GET /v1/menu-items
func (h *MenuItemsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID GET /v1/menu-items/:id
func (h *MenuItemsHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update PATCH /v1/menu-items/:id
// The path id wins over any id in the body.
func (h *MenuItemsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in dto.UpdateMenuItemInput
	if !bindJSON(c, &in) {
		return
	}
	in.ID = id
	resp, err := h.svc.Update(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /v1/menu-items/:id
func (h *MenuItemsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteMenuItemResponse{Success: deleted})
}
