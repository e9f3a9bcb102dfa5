package service

import (
	"context"

	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/apierror"
	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/dto"
	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/model"
	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/repository"
)

// ClienteService defines the business logic contract for customers.
type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apierror.Conflict("El email ya está registrado")
	} else if !isNotFound(err) {
		// A storage failure is not an "email free" answer.
		return nil, err
	}
	c := model.Cliente{
		Nombre:    req.Nombre,
		Apellido:  req.Apellido,
		Email:     req.Email,
		Telefono:  req.Telefono,
		Direccion: req.Direccion,
	}
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, err
	}
	return clienteToResponse(&c), nil
}

func (s *clienteService) ObtenerPorID(ctx context.Context, id uint) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFound("Cliente no encontrado")
		}
		return nil, err
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		resp = append(resp, *clienteToResponse(&clientes[i]))
	}
	return resp, nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uint, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFound("Cliente no encontrado")
		}
		return nil, err
	}

	if req.Email != nil && *req.Email != c.Email {
		if _, err := s.repo.FindByEmail(ctx, *req.Email); err == nil {
			return nil, apierror.Conflict("El nuevo email ya está registrado por otro cliente")
		} else if !isNotFound(err) {
			return nil, err
		}
		c.Email = *req.Email
	}
	if req.Nombre != nil {
		c.Nombre = *req.Nombre
	}
	if req.Apellido != nil {
		c.Apellido = req.Apellido
	}
	if req.Telefono != nil {
		c.Telefono = req.Telefono
	}
	if req.Direccion != nil {
		c.Direccion = req.Direccion
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return clienteToResponse(c), nil
}

// Eliminar rejects the delete when the cliente owns facturas. The count check
// gives a clean error for the common case; the FK translation covers the race
// against a concurrent factura creation.
func (s *clienteService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if isNotFound(err) {
			return apierror.NotFound("Cliente no encontrado")
		}
		return err
	}
	n, err := s.repo.CountFacturas(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return apierror.Conflict("No se puede eliminar el cliente porque tiene facturas asociadas")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if isFKViolation(err) {
			return apierror.Conflict("No se puede eliminar el cliente porque tiene facturas asociadas")
		}
		return err
	}
	return nil
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Apellido:  c.Apellido,
		Email:     c.Email,
		Telefono:  c.Telefono,
		Direccion: c.Direccion,
	}
}
