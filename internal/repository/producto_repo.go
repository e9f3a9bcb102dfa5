package repository

import (
	"context"

	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/model"

	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for products.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uint) (*model.Producto, error)
	List(ctx context.Context) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	Delete(ctx context.Context, id uint) error

	// CountDetalles is the referential guard for DELETE: a producto referenced
	// by any invoice line must not be removed.
	CountDetalles(ctx context.Context, productoID uint) (int64, error)
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uint) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) List(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Order("id ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Producto{}, id).Error
}

func (r *productoRepo) CountDetalles(ctx context.Context, productoID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.DetalleFactura{}).
		Where("producto_id = ?", productoID).Count(&n).Error
	return n, err
}
