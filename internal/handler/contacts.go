package handler

import (
	"net/http"

	"github.com/Mouhib912/Event-Management-Platform/internal/apierror"
	"github.com/Mouhib912/Event-Management-Platform/internal/dto"
	"github.com/Mouhib912/Event-Management-Platform/internal/service"

	"github.com/gin-gonic/gin"
)

type ContactsHandler struct{ svc service.ContactService }

func NewContactsHandler(svc service.ContactService) *ContactsHandler {
	return &ContactsHandler{svc: svc}
}

// List GET /api/contacts?type=&nature=
func (h *ContactsHandler) List(c *gin.Context) {
	var filter dto.ContactFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid query: "+err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create POST /api/contacts
func (h *ContactsHandler) Create(c *gin.Context) {
	var req dto.CreateContactRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id, err := h.svc.Create(c.Request.Context(), actor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Contact created successfully", ID: id})
}

// Update PUT /api/contacts/:id
func (h *ContactsHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateContactRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Contact updated successfully"})
}

// Delete DELETE /api/contacts/:id
func (h *ContactsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Contact deleted successfully"})
}

func (h *ContactsHandler) Enterprises(c *gin.Context) {
	resp, err := h.svc.ListEnterprises(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ContactsHandler) Employees(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListEmployees(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
