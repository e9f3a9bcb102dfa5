package service_test

import (
	"context"
	"sort"

	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/model"
	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── In-memory ClienteRepository stub ─────────────────────────────────────────

type stubClienteRepo struct {
	clientes     map[uint]*model.Cliente
	facturaCount map[uint]int64
	seq          uint
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{
		clientes:     make(map[uint]*model.Cliente),
		facturaCount: make(map[uint]int64),
	}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	r.seq++
	c.ID = r.seq
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uint) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) FindByEmail(_ context.Context, email string) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClienteRepo) List(_ context.Context) ([]model.Cliente, error) {
	ids := make([]uint, 0, len(r.clientes))
	for id := range r.clientes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]model.Cliente, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.clientes[id])
	}
	return out, nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) Delete(_ context.Context, id uint) error {
	delete(r.clientes, id)
	return nil
}

func (r *stubClienteRepo) CountFacturas(_ context.Context, clienteID uint) (int64, error) {
	return r.facturaCount[clienteID], nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// ── In-memory ProductoRepository stub ────────────────────────────────────────

type stubProductoRepo struct {
	productos    map[uint]*model.Producto
	detalleCount map[uint]int64
	seq          uint
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{
		productos:    make(map[uint]*model.Producto),
		detalleCount: make(map[uint]int64),
	}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	r.seq++
	p.ID = r.seq
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uint) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) List(_ context.Context) ([]model.Producto, error) {
	ids := make([]uint, 0, len(r.productos))
	for id := range r.productos {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]model.Producto, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.productos[id])
	}
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id uint) error {
	delete(r.productos, id)
	return nil
}

func (r *stubProductoRepo) CountDetalles(_ context.Context, productoID uint) (int64, error) {
	return r.detalleCount[productoID], nil
}

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── In-memory FacturaRepository stub ─────────────────────────────────────────

// stubFacturaRepo emulates the GORM repo including its preloads: FindByID and
// List attach the current cliente/producto rows, like Preload does.
type stubFacturaRepo struct {
	facturas   map[uint]*model.Factura
	clientes   *stubClienteRepo
	productos  *stubProductoRepo
	seq        uint
	detalleSeq uint
}

func newStubFacturaRepo(clientes *stubClienteRepo, productos *stubProductoRepo) *stubFacturaRepo {
	return &stubFacturaRepo{
		facturas:  make(map[uint]*model.Factura),
		clientes:  clientes,
		productos: productos,
	}
}

func (r *stubFacturaRepo) CreateTx(_ *gorm.DB, f *model.Factura) error {
	r.seq++
	f.ID = r.seq
	for i := range f.Detalles {
		r.detalleSeq++
		f.Detalles[i].ID = r.detalleSeq
		f.Detalles[i].FacturaID = f.ID
	}
	stored := *f
	stored.Detalles = append([]model.DetalleFactura(nil), f.Detalles...)
	r.facturas[f.ID] = &stored
	r.clientes.facturaCount[f.ClienteID]++
	for _, d := range f.Detalles {
		r.productos.detalleCount[d.ProductoID]++
	}
	return nil
}

func (r *stubFacturaRepo) FindByID(_ context.Context, id uint) (*model.Factura, error) {
	f, ok := r.facturas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.enrich(f), nil
}

func (r *stubFacturaRepo) List(_ context.Context) ([]model.Factura, error) {
	out := make([]model.Factura, 0, len(r.facturas))
	for _, f := range r.facturas {
		out = append(out, *r.enrich(f))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Fecha.After(out[j].Fecha) })
	return out, nil
}

func (r *stubFacturaRepo) DeleteTx(_ *gorm.DB, id uint) error {
	if f, ok := r.facturas[id]; ok {
		r.clientes.facturaCount[f.ClienteID]--
		for _, d := range f.Detalles {
			r.productos.detalleCount[d.ProductoID]--
		}
	}
	delete(r.facturas, id)
	return nil
}

func (r *stubFacturaRepo) DB() *gorm.DB { return nil }

func (r *stubFacturaRepo) enrich(f *model.Factura) *model.Factura {
	copied := *f
	copied.Cliente = r.clientes.clientes[f.ClienteID]
	copied.Detalles = make([]model.DetalleFactura, len(f.Detalles))
	for i, d := range f.Detalles {
		d.Producto = r.productos.productos[d.ProductoID]
		copied.Detalles[i] = d
	}
	return &copied
}

var _ repository.FacturaRepository = (*stubFacturaRepo)(nil)

// ── Seed helpers ─────────────────────────────────────────────────────────────

func seedCliente(r *stubClienteRepo, nombre, apellido, email string) *model.Cliente {
	c := &model.Cliente{Nombre: nombre, Email: email}
	if apellido != "" {
		c.Apellido = &apellido
	}
	_ = r.Create(context.Background(), c)
	return c
}

func seedProducto(r *stubProductoRepo, nombre, precio string) *model.Producto {
	p := &model.Producto{Nombre: nombre, Precio: decimal.RequireFromString(precio)}
	_ = r.Create(context.Background(), p)
	return p
}
