package model

import (
	"github.com/shopspring/decimal"
)

// Producto is a catalog item. Precio is the CURRENT list price; facturas
// snapshot it per line at creation time, so editing it never rewrites history.
type Producto struct {
	ID          uint            `gorm:"primaryKey"`
	Nombre      string          `gorm:"size:100;not null"`
	Descripcion *string         `gorm:"size:255"`
	Precio      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
}
