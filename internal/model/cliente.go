package model

// Cliente is a billing customer. Email is unique across the table; a cliente
// that owns facturas cannot be deleted (RESTRICT, enforced by the FK and
// re-checked in the service layer).
type Cliente struct {
	ID        uint    `gorm:"primaryKey"`
	Nombre    string  `gorm:"size:100;not null"`
	Apellido  *string `gorm:"size:100"`
	Email     string  `gorm:"size:120;uniqueIndex;not null"`
	Telefono  *string `gorm:"size:20"`
	Direccion *string `gorm:"size:200"`

	Facturas []Factura `gorm:"foreignKey:ClienteID;constraint:OnDelete:RESTRICT"`
}
