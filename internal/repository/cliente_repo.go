package repository

import (
	"context"

	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/model"

	"gorm.io/gorm"
)

// ClienteRepository defines the data access contract for customers.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via in-memory stubs.
type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id uint) (*model.Cliente, error)
	FindByEmail(ctx context.Context, email string) (*model.Cliente, error)
	List(ctx context.Context) ([]model.Cliente, error)
	Update(ctx context.Context, c *model.Cliente) error
	Delete(ctx context.Context, id uint) error

	// CountFacturas is the referential guard for DELETE: a cliente that owns
	// facturas must not be removed.
	CountFacturas(ctx context.Context, clienteID uint) (int64, error)
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id uint) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepo) FindByEmail(ctx context.Context, email string) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepo) List(ctx context.Context) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).Order("id ASC").Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Cliente{}, id).Error
}

func (r *clienteRepo) CountFacturas(ctx context.Context, clienteID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Factura{}).
		Where("cliente_id = ?", clienteID).Count(&n).Error
	return n, err
}
