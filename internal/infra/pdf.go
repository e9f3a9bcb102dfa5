package infra

// pdf.go — A4 invoice rendering with go-pdf/fpdf:
//   - Header with business name and factura number
//   - Cliente block (name, email, address)
//   - Line table (product, quantity, unit price, line subtotal)
//   - Subtotal / IVA 21% / bold total
//
// The output file is saved to storagePath/factura_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerateFacturaPDF renders the read-model view of a factura as a PDF.
// storagePath is the directory where the file is written (created if needed).
// Returns the absolute path to the generated file.
func GenerateFacturaPDF(f *dto.FacturaResponse, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("factura_%d.pdf", f.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	// The core Helvetica font is cp1252; tr converts the UTF-8 source strings
	// (accented names, °, …) so they render correctly.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30 // total margins = 30mm

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 10, "FacturaApp", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW/2, 8, tr(fmt.Sprintf("Factura N° %d", f.ID)), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW/2, 8, f.Fecha, "", 1, "R", false, 0, "")
	pdf.Ln(4)

	// ── Cliente block ────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, "Cliente", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if c := f.Cliente; c != nil {
		nombre := c.Nombre
		if c.Apellido != nil {
			nombre += " " + *c.Apellido
		}
		pdf.CellFormat(contentW, 5, tr(nombre), "", 1, "L", false, 0, "")
		pdf.CellFormat(contentW, 5, tr(c.Email), "", 1, "L", false, 0, "")
		if c.Direccion != nil && *c.Direccion != "" {
			pdf.CellFormat(contentW, 5, tr(*c.Direccion), "", 1, "L", false, 0, "")
		}
	} else {
		pdf.CellFormat(contentW, 5, "Cliente no encontrado", "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// ── Line table ───────────────────────────────────────────────────────────
	col1 := contentW * 0.46 // product name
	col2 := contentW * 0.14 // qty
	col3 := contentW * 0.20 // unit price
	col4 := contentW * 0.20 // line subtotal

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Cantidad", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 6, "Precio unit.", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, d := range f.Detalles {
		// Truncate by runes, not bytes, so accented names are never cut mid-rune.
		nombre := d.NombreProducto
		if r := []rune(nombre); len(r) > 48 {
			nombre = string(r[:47]) + "…"
		}
		pdf.CellFormat(col1, 6, tr(nombre), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, fmt.Sprintf("x%d", d.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, "$"+d.PrecioUnitario.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, "$"+d.SubtotalLinea.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(3)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(3)

	// ── Totals ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(col1+col2+col3, 6, "Subtotal:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "$"+f.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(col1+col2+col3, 6, "IVA (21%):", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "$"+f.IVA.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(col1+col2+col3, 8, "TOTAL:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 8, "$"+f.Total.StringFixed(2), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
