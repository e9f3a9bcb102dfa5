package repository

import (
	"context"

	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/model"

	"gorm.io/gorm"
)

// FacturaRepository defines the data access contract for invoices.
// Writes go through *Tx methods so the service owns the transaction boundary:
// header + lines are committed or rolled back as one unit.
type FacturaRepository interface {
	// CreateTx inserts the factura header and its detalles inside tx.
	CreateTx(tx *gorm.DB, f *model.Factura) error

	// FindByID loads the factura with its cliente, its detalles in insertion
	// order, and each detalle's current producto (explicit preloads — no lazy
	// fetching).
	FindByID(ctx context.Context, id uint) (*model.Factura, error)

	// List returns all facturas with their cliente, newest first.
	List(ctx context.Context) ([]model.Factura, error)

	// DeleteTx removes the detalles first and then the header inside tx —
	// lines have no independent existence.
	DeleteTx(tx *gorm.DB, id uint) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type facturaRepo struct{ db *gorm.DB }

func NewFacturaRepository(db *gorm.DB) FacturaRepository { return &facturaRepo{db: db} }

func (r *facturaRepo) CreateTx(tx *gorm.DB, f *model.Factura) error {
	return tx.Create(f).Error
}

func (r *facturaRepo) FindByID(ctx context.Context, id uint) (*model.Factura, error) {
	var f model.Factura
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Detalles", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Detalles.Producto").
		First(&f, id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *facturaRepo) List(ctx context.Context) ([]model.Factura, error) {
	var facturas []model.Factura
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Order("fecha DESC").
		Find(&facturas).Error
	return facturas, err
}

func (r *facturaRepo) DeleteTx(tx *gorm.DB, id uint) error {
	if err := tx.Where("factura_id = ?", id).Delete(&model.DetalleFactura{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Factura{}, id).Error
}

func (r *facturaRepo) DB() *gorm.DB { return r.db }
