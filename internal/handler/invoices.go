package handler

import (
	"net/http"

	"github.com/Mouhib912/Event-Management-Platform/internal/dto"
	"github.com/Mouhib912/Event-Management-Platform/internal/service"

	"github.com/gin-gonic/gin"
)

type InvoicesHandler struct {
	svc  service.InvoiceService
	docs service.DocumentService
	mail service.MailService
}

func NewInvoicesHandler(svc service.InvoiceService, docs service.DocumentService, mail service.MailService) *InvoicesHandler {
	return &InvoicesHandler{svc: svc, docs: docs, mail: mail}
}

// List GET /api/invoices
func (h *InvoicesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary Create a quote (devis) from a stand or directly
// @Tags invoices
// @Accept json
// @Produce json
// @Param body body dto.CreateInvoiceRequest true "Invoice"
// @Success 201 {object} dto.CreateInvoiceResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/invoices [post]
func (h *InvoicesHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceRequest
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

// Get GET /api/invoices/:id
func (h *InvoicesHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Edit an invoice or move it through devis → facture
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path int true "Invoice ID"
// @Param body body dto.UpdateInvoiceRequest true "Changes"
// @Success 200 {object} dto.UpdateInvoiceResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/invoices/{id} [put]
func (h *InvoicesHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateInvoiceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InvoicesHandler) Items(c *gin.Context) {
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

func (h *InvoicesHandler) PDF(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	doc, err := h.docs.InvoicePDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	sendPDF(c, doc.Filename, doc.Data)
}

func (h *InvoicesHandler) Send(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.SendDocumentRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	to, err := h.mail.SendInvoice(c.Request.Context(), id, req.To)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, dto.MessageResponse{Message: "Invoice queued for " + to})
}
