package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// DetalleFacturaRequest is one requested invoice line. Cantidad positivity is
// enforced by the invoice engine (a zero or negative value must produce
// invalid_input, not a validation envelope), so it carries no validator tag.
type DetalleFacturaRequest struct {
	ProductoID uint `json:"producto_id" validate:"required"`
	Cantidad   int  `json:"cantidad"`
}

type CrearFacturaRequest struct {
	ClienteID uint                    `json:"cliente_id" validate:"required"`
	Detalles  []DetalleFacturaRequest `json:"detalles"   validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleFacturaResponse struct {
	ID             uint            `json:"id"`
	ProductoID     uint            `json:"producto_id"`
	NombreProducto string          `json:"nombre_producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	SubtotalLinea  decimal.Decimal `json:"subtotal_linea"`
}

// FacturaResponse is the full read-model view: invoice fields, a snapshot of
// the current cliente, and the ordered lines annotated with current product
// display data.
type FacturaResponse struct {
	ID        uint                     `json:"id"`
	Fecha     string                   `json:"fecha"` // RFC 3339
	ClienteID uint                     `json:"cliente_id"`
	Cliente   *ClienteResponse         `json:"cliente"`
	Subtotal  decimal.Decimal          `json:"subtotal"`
	IVA       decimal.Decimal          `json:"iva"`
	Total     decimal.Decimal          `json:"total"`
	Detalles  []DetalleFacturaResponse `json:"detalles"`
}

// FacturaListItem is the lightweight projection for GET /api/facturas.
type FacturaListItem struct {
	ID            uint            `json:"id"`
	Fecha         string          `json:"fecha"`
	ClienteID     uint            `json:"cliente_id"`
	NombreCliente string          `json:"nombre_cliente"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	IVA           decimal.Decimal `json:"iva"`
	Total         decimal.Decimal `json:"total"`
}
