package handler

import (
	"net/http"

	"github.com/Mouhib912/Event-Management-Platform/internal/dto"
	"github.com/Mouhib912/Event-Management-Platform/internal/service"

	"github.com/gin-gonic/gin"
)

type StandsHandler struct{ svc service.StandService }

func NewStandsHandler(svc service.StandService) *StandsHandler {
	return &StandsHandler{svc: svc}
}

// List GET /api/stands
func (h *StandsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary Create a stand and its supplier purchase orders
// @Tags stands
// @Accept json
// @Produce json
// @Param body body dto.CreateStandRequest true "Stand"
// @Success 201 {object} dto.CreateStandResponse
// @Failure 400 {object} apierror.APIError
// @Failure 403 {object} apierror.APIError
// @Router /api/stands [post]
func (h *StandsHandler) Create(c *gin.Context) {
	var req dto.CreateStandRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), actor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update PUT /api/stands/:id
func (h *StandsHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateStandRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Update(c.Request.Context(), actor(c), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Stand updated successfully"})
}

// Items GET /api/stands/:id/items
func (h *StandsHandler) Items(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListItems(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ReplaceItems PUT /api/stands/:id/items
func (h *StandsHandler) ReplaceItems(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ReplaceStandItemsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.ReplaceItems(c.Request.Context(), actor(c), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Stand items updated successfully"})
}

func (h *StandsHandler) ValidateLogistics(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ValidateLogistics(c.Request.Context(), actor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StandsHandler) ValidateFinance(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ValidateFinance(c.Request.Context(), actor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
