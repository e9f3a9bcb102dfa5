package service

import (
	"context"

	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/apierror"
	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/dto"
	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/model"
	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/repository"
)

// ProductoService defines the business logic contract for products.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.ProductoResponse, error)
	Listar(ctx context.Context) ([]dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type productoService struct {
	repo repository.ProductoRepository
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if req.Precio == nil {
		return nil, apierror.InvalidInput("El precio es requerido")
	}
	if req.Precio.IsNegative() {
		return nil, apierror.InvalidInput("El precio no puede ser negativo")
	}
	p := model.Producto{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Precio:      *req.Precio,
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	return productoToResponse(&p), nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uint) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFound("Producto no encontrado")
		}
		return nil, err
	}
	return productoToResponse(p), nil
}

func (s *productoService) Listar(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		resp = append(resp, *productoToResponse(&productos[i]))
	}
	return resp, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFound("Producto no encontrado")
		}
		return nil, err
	}

	if req.Precio != nil {
		if req.Precio.IsNegative() {
			return nil, apierror.InvalidInput("El precio no puede ser negativo")
		}
		p.Precio = *req.Precio
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, apierror.InvalidInput("El stock no puede ser negativo")
		}
		p.Stock = *req.Stock
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productoToResponse(p), nil
}

// Eliminar rejects the delete when the producto appears on any factura —
// historical invoices keep their snapshotted prices, so the row must stay.
func (s *productoService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if isNotFound(err) {
			return apierror.NotFound("Producto no encontrado")
		}
		return err
	}
	n, err := s.repo.CountDetalles(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return apierror.Conflict("No se puede eliminar el producto porque está asociado a una o más facturas")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if isFKViolation(err) {
			return apierror.Conflict("No se puede eliminar el producto porque está asociado a una o más facturas")
		}
		return err
	}
	return nil
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Precio:      p.Precio,
		Stock:       p.Stock,
	}
}
