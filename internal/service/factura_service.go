package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/apierror"
	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/dto"
	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/infra"
	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/model"
	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// tasaIVA is the flat tax rate applied to every factura (21%).
var tasaIVA = decimal.RequireFromString("0.21")

// round2 rounds a monetary amount to 2 decimal places, half up (commercial
// rounding: 0.125 → 0.13). decimal.Round is half-away-from-zero, which is
// half-up for the non-negative amounts handled here.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FacturaService is the invoice engine plus its read model.
type FacturaService interface {
	Crear(ctx context.Context, req dto.CrearFacturaRequest) (*dto.FacturaResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.FacturaResponse, error)
	Listar(ctx context.Context) ([]dto.FacturaListItem, error)
	Eliminar(ctx context.Context, id uint) error
	GenerarPDF(ctx context.Context, id uint) (string, error)
}

type facturaService struct {
	repo         repository.FacturaRepository
	clienteRepo  repository.ClienteRepository
	productoRepo repository.ProductoRepository
	pdfDir       string
}

func NewFacturaService(
	repo repository.FacturaRepository,
	clienteRepo repository.ClienteRepository,
	productoRepo repository.ProductoRepository,
	pdfDir string,
) FacturaService {
	return &facturaService{repo: repo, clienteRepo: clienteRepo, productoRepo: productoRepo, pdfDir: pdfDir}
}

// ── Crear ────────────────────────────────────────────────────────────────────
// Invoice creation:
//  1. Resolve the cliente (404 if absent) — fail fast, before any write.
//  2. Per line, in input order: validate producto_id/cantidad, resolve the
//     producto (404), snapshot its CURRENT price as an exact decimal, compute
//     subtotal_linea = precio × cantidad with no intermediate rounding.
//  3. iva = round2(subtotal × 0.21); total = round2(subtotal + iva).
//  4. One ACID transaction: factura header + all detalles, or nothing.
//
// The price snapshot is the load-bearing rule: a factura must reflect the
// price charged at the time of sale, independent of later catalog edits.
func (s *facturaService) Crear(ctx context.Context, req dto.CrearFacturaRequest) (*dto.FacturaResponse, error) {
	if req.ClienteID == 0 {
		return nil, apierror.InvalidInput("cliente_id y detalles son requeridos")
	}
	if len(req.Detalles) == 0 {
		return nil, apierror.InvalidInput("Detalles debe ser una lista no vacía de productos")
	}

	if _, err := s.clienteRepo.FindByID(ctx, req.ClienteID); err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFound("Cliente con id %d no encontrado", req.ClienteID)
		}
		return nil, err
	}

	// Resolve products and calculate totals (pre-flight, outside TX).
	// One bad line aborts the whole factura — no partial invoices.
	type lineaResuelta struct {
		productoID     uint
		cantidad       int
		precioUnitario decimal.Decimal
		subtotalLinea  decimal.Decimal
	}

	var resueltas []lineaResuelta
	subtotal := decimal.Zero

	for _, d := range req.Detalles {
		if d.ProductoID == 0 {
			return nil, apierror.InvalidInput("Cada detalle debe tener producto_id y cantidad")
		}
		if d.Cantidad <= 0 {
			return nil, apierror.InvalidInput("La cantidad debe ser un entero positivo")
		}

		p, err := s.productoRepo.FindByID(ctx, d.ProductoID)
		if err != nil {
			if isNotFound(err) {
				return nil, apierror.NotFound("Producto con id %d no encontrado", d.ProductoID)
			}
			return nil, err
		}

		// Snapshot of the current price; exact decimal multiplication.
		subtotalLinea := p.Precio.Mul(decimal.NewFromInt(int64(d.Cantidad)))
		subtotal = subtotal.Add(subtotalLinea)

		resueltas = append(resueltas, lineaResuelta{
			productoID:     d.ProductoID,
			cantidad:       d.Cantidad,
			precioUnitario: p.Precio,
			subtotalLinea:  subtotalLinea,
		})
	}

	iva := round2(subtotal.Mul(tasaIVA))
	total := round2(subtotal.Add(iva))

	factura := model.Factura{
		Fecha:     time.Now().UTC(),
		ClienteID: req.ClienteID,
		Subtotal:  round2(subtotal),
		IVA:       iva,
		Total:     total,
	}
	for _, l := range resueltas {
		factura.Detalles = append(factura.Detalles, model.DetalleFactura{
			ProductoID:     l.productoID,
			Cantidad:       l.cantidad,
			PrecioUnitario: l.precioUnitario,
			SubtotalLinea:  round2(l.subtotalLinea),
		})
	}

	if err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.CreateTx(tx, &factura)
	}); err != nil {
		return nil, err
	}

	return s.ObtenerPorID(ctx, factura.ID)
}

// ── Read model ───────────────────────────────────────────────────────────────

func (s *facturaService) ObtenerPorID(ctx context.Context, id uint) (*dto.FacturaResponse, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFound("Factura no encontrada")
		}
		return nil, err
	}
	return facturaToResponse(f), nil
}

func (s *facturaService) Listar(ctx context.Context) ([]dto.FacturaListItem, error) {
	facturas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FacturaListItem, 0, len(facturas))
	for _, f := range facturas {
		items = append(items, dto.FacturaListItem{
			ID:            f.ID,
			Fecha:         f.Fecha.Format(time.RFC3339),
			ClienteID:     f.ClienteID,
			NombreCliente: nombreCliente(f.Cliente, f.ClienteID),
			Subtotal:      f.Subtotal,
			IVA:           f.IVA,
			Total:         f.Total,
		})
	}
	return items, nil
}

// ── Eliminar ─────────────────────────────────────────────────────────────────

// Eliminar removes the factura and cascades to its detalles in one transaction.
func (s *facturaService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if isNotFound(err) {
			return apierror.NotFound("Factura no encontrada")
		}
		return err
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.DeleteTx(tx, id)
	})
}

// GenerarPDF renders the factura as a PDF and returns the file path.
// The PDF is rendered from the read-model view, so it carries the snapshotted
// prices and the current cliente/producto display data.
func (s *facturaService) GenerarPDF(ctx context.Context, id uint) (string, error) {
	f, err := s.ObtenerPorID(ctx, id)
	if err != nil {
		return "", err
	}
	return infra.GenerateFacturaPDF(f, s.pdfDir)
}

// ── helpers ──────────────────────────────────────────────────────────────────

// nombreCliente builds the customer display name for the list projection.
// Cliente details are not versioned: this is the current catalog data, with
// fallbacks for rows predating the referential guard.
func nombreCliente(c *model.Cliente, clienteID uint) string {
	if c == nil {
		return "Cliente no encontrado"
	}
	nombre := c.Nombre
	if c.Apellido != nil {
		nombre += " " + *c.Apellido
	}
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return fmt.Sprintf("Cliente #%d", clienteID)
	}
	return nombre
}

func facturaToResponse(f *model.Factura) *dto.FacturaResponse {
	resp := &dto.FacturaResponse{
		ID:        f.ID,
		Fecha:     f.Fecha.Format(time.RFC3339),
		ClienteID: f.ClienteID,
		Subtotal:  f.Subtotal,
		IVA:       f.IVA,
		Total:     f.Total,
		Detalles:  make([]dto.DetalleFacturaResponse, 0, len(f.Detalles)),
	}
	if f.Cliente != nil {
		resp.Cliente = clienteToResponse(f.Cliente)
	}
	for _, d := range f.Detalles {
		// Product display data is current catalog state. The referential guard
		// normally prevents deleting referenced productos, but already-broken
		// rows must still render.
		nombre := "Producto no encontrado"
		if d.Producto != nil {
			nombre = d.Producto.Nombre
		}
		resp.Detalles = append(resp.Detalles, dto.DetalleFacturaResponse{
			ID:             d.ID,
			ProductoID:     d.ProductoID,
			NombreProducto: nombre,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			SubtotalLinea:  d.SubtotalLinea,
		})
	}
	return resp
}
