package handler

import (
	"net/http"

	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/dto"
	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/service"

	"github.com/gin-gonic/gin"
)

type FacturasHandler struct{ svc service.FacturaService }

func NewFacturasHandler(svc service.FacturaService) *FacturasHandler {
	return &FacturasHandler{svc: svc}
}

// Crear runs the invoice engine: validates the order, snapshots prices,
// computes totals and persists header + lines atomically. Responds with the
// full read-model view, like GET /api/facturas/:id.
func (h *FacturasHandler) Crear(c *gin.Context) {
	var req dto.CrearFacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *FacturasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FacturasHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FacturasHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DescargarPDF renders the factura as a PDF and streams the file.
func (h *FacturasHandler) DescargarPDF(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	path, err := h.svc.GenerarPDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Type", "application/pdf")
	c.File(path)
}
