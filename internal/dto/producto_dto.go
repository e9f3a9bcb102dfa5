package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearProductoRequest requires an explicit precio: a pointer distinguishes an
// absent field (400) from a legal price of exactly 0.
type CrearProductoRequest struct {
	Nombre      string           `json:"nombre"      validate:"required,min=1,max=100"`
	Descripcion *string          `json:"descripcion" validate:"omitempty,max=255"`
	Precio      *decimal.Decimal `json:"precio"      validate:"required"`
	Stock       *int             `json:"stock"       validate:"omitempty,min=0"`
}

// ActualizarProductoRequest is a partial update: only non-nil fields are applied.
type ActualizarProductoRequest struct {
	Nombre      *string          `json:"nombre"      validate:"omitempty,min=1,max=100"`
	Descripcion *string          `json:"descripcion" validate:"omitempty,max=255"`
	Precio      *decimal.Decimal `json:"precio"`
	Stock       *int             `json:"stock"       validate:"omitempty,min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID          uint            `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion *string         `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
}
