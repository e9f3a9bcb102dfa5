package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Factura is an invoice header. Monetary columns are decimal(10,2) and are
// written once at creation — facturas are never updated afterwards.
type Factura struct {
	ID        uint            `gorm:"primaryKey"`
	Fecha     time.Time       `gorm:"not null;index"`
	ClienteID uint            `gorm:"not null;index"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	IVA       decimal.Decimal `gorm:"column:iva;type:decimal(10,2);not null"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Cliente  *Cliente         `gorm:"foreignKey:ClienteID"`
	Detalles []DetalleFactura `gorm:"foreignKey:FacturaID"`
}

// DetalleFactura is one invoice line. PrecioUnitario is copied from the
// Producto at invoice-creation time and is immutable from then on,
// independent of later catalog price edits.
type DetalleFactura struct {
	ID             uint            `gorm:"primaryKey"`
	FacturaID      uint            `gorm:"not null;index"`
	ProductoID     uint            `gorm:"not null;index"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SubtotalLinea  decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID;constraint:OnDelete:RESTRICT"`
}
