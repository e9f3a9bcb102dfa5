package service_test

import (
	"context"
	"testing"

	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/apierror"
	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/dto"
	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearProducto(t *testing.T) {
	repo := newStubProductoRepo()
	svc := service.NewProductoService(repo)

	resp, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre: "Teclado",
		Precio: ptr(decimal.RequireFromString("29.90")),
		Stock:  ptr(5),
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assertDecimal(t, "29.90", resp.Precio)
	assert.Equal(t, 5, resp.Stock)
}

func TestCrearProducto_StockPorDefecto(t *testing.T) {
	repo := newStubProductoRepo()
	svc := service.NewProductoService(repo)

	resp, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre: "Ratón",
		Precio: ptr(decimal.RequireFromString("9.99")),
	})
	require.NoError(t, err)
	assert.Zero(t, resp.Stock)
}

func TestCrearProducto_PrecioCeroExplicito(t *testing.T) {
	repo := newStubProductoRepo()
	svc := service.NewProductoService(repo)

	resp, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre: "Muestra gratuita",
		Precio: ptr(decimal.Zero),
	})
	require.NoError(t, err)
	assertDecimal(t, "0", resp.Precio)
}

func TestCrearProducto_SinPrecio(t *testing.T) {
	repo := newStubProductoRepo()
	svc := service.NewProductoService(repo)

	_, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre: "Teclado",
	})
	requireAPIError(t, err, apierror.CodeInvalidInput)
	assert.Empty(t, repo.productos)
}

func TestCrearProducto_PrecioNegativo(t *testing.T) {
	repo := newStubProductoRepo()
	svc := service.NewProductoService(repo)

	_, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre: "Teclado",
		Precio: ptr(decimal.RequireFromString("-1.00")),
	})
	requireAPIError(t, err, apierror.CodeInvalidInput)
	assert.Empty(t, repo.productos)
}

func TestActualizarProducto_Parcial(t *testing.T) {
	repo := newStubProductoRepo()
	svc := service.NewProductoService(repo)
	p := seedProducto(repo, "Teclado", "29.90")

	nuevoPrecio := decimal.RequireFromString("24.50")
	resp, err := svc.Actualizar(context.Background(), p.ID, dto.ActualizarProductoRequest{
		Precio: &nuevoPrecio,
	})
	require.NoError(t, err)
	assert.Equal(t, "Teclado", resp.Nombre)
	assertDecimal(t, "24.50", resp.Precio)
}

func TestActualizarProducto_PrecioNegativo(t *testing.T) {
	repo := newStubProductoRepo()
	svc := service.NewProductoService(repo)
	p := seedProducto(repo, "Teclado", "29.90")

	negativo := decimal.RequireFromString("-0.01")
	_, err := svc.Actualizar(context.Background(), p.ID, dto.ActualizarProductoRequest{
		Precio: &negativo,
	})
	requireAPIError(t, err, apierror.CodeInvalidInput)

	// El precio original queda intacto.
	releido, err := svc.ObtenerPorID(context.Background(), p.ID)
	require.NoError(t, err)
	assertDecimal(t, "29.90", releido.Precio)
}

func TestActualizarProducto_NoEncontrado(t *testing.T) {
	repo := newStubProductoRepo()
	svc := service.NewProductoService(repo)

	_, err := svc.Actualizar(context.Background(), 7, dto.ActualizarProductoRequest{
		Nombre: ptr("Nada"),
	})
	requireAPIError(t, err, apierror.CodeNotFound)
}

func TestEliminarProducto(t *testing.T) {
	repo := newStubProductoRepo()
	svc := service.NewProductoService(repo)
	p := seedProducto(repo, "Teclado", "29.90")

	require.NoError(t, svc.Eliminar(context.Background(), p.ID))

	_, err := svc.ObtenerPorID(context.Background(), p.ID)
	requireAPIError(t, err, apierror.CodeNotFound)
}

func TestEliminarProducto_Facturado(t *testing.T) {
	repo := newStubProductoRepo()
	svc := service.NewProductoService(repo)
	p := seedProducto(repo, "Teclado", "29.90")
	repo.detalleCount[p.ID] = 1

	err := svc.Eliminar(context.Background(), p.ID)
	requireAPIError(t, err, apierror.CodeConflict)

	_, err = svc.ObtenerPorID(context.Background(), p.ID)
	require.NoError(t, err)
}

func TestListarProductos(t *testing.T) {
	repo := newStubProductoRepo()
	svc := service.NewProductoService(repo)
	seedProducto(repo, "Teclado", "29.90")
	seedProducto(repo, "Ratón", "9.99")

	resp, err := svc.Listar(context.Background())
	require.NoError(t, err)
	require.Len(t, resp, 2)
}
