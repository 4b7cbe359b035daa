package handler

import (
	"net/http"

	"github.com/Mouhib912/Event-Management-Platform/internal/dto"
	"github.com/Mouhib912/Event-Management-Platform/internal/service"

	"github.com/gin-gonic/gin"
)

type PurchasesHandler struct {
	svc  service.PurchaseService
	docs service.DocumentService
	mail service.MailService
}

func NewPurchasesHandler(svc service.PurchaseService, docs service.DocumentService, mail service.MailService) *PurchasesHandler {
	return &PurchasesHandler{svc: svc, docs: docs, mail: mail}
}

func (h *PurchasesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PurchasesHandler) Create(c *gin.Context) {
	var req dto.CreatePurchaseRequest
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

// PDF godoc
// @Summary Download a purchase order
// @Tags purchases
// @Produce application/pdf
// @Param id path int true "Purchase ID"
// @Success 200 {file} file
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/purchases/{id}/pdf [get]
func (h *PurchasesHandler) PDF(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	doc, err := h.docs.PurchasePDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	sendPDF(c, doc.Filename, doc.Data)
}

// Send POST /api/purchases/:id/send
func (h *PurchasesHandler) Send(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.SendDocumentRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	to, err := h.mail.SendPurchase(c.Request.Context(), id, req.To)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, dto.MessageResponse{Message: "Purchase order queued for " + to})
}
