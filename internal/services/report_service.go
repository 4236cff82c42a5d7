package services

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"pipas/internal/domain"
	"pipas/internal/domain/models"
	"pipas/internal/utils"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const defaultCurrency = "Bs"

// ReportService builds the downloadable daily summary PDF.
type ReportService struct {
	Ventas    VentaStore
	Gastos    GastoStore
	Currency  string
	RequestID string
	Log       *zap.Logger
}

// Report is the print layout of one day, independent of the output format.
type Report struct {
	Title       string
	Fecha       string
	Currency    string
	Secciones   []ReportSeccion
	Gastos      []ReportGasto
	TotalPipas  int
	TotalVentas decimal.Decimal
	TotalGastos decimal.Decimal
	TotalDia    decimal.Decimal
}

// ReportSeccion is one sales table. Viaje is 0 for the combined table.
type ReportSeccion struct {
	Titulo   string
	Viaje    int
	Filas    []ReportVenta
	Pipas    int
	Subtotal decimal.Decimal
}

type ReportVenta struct {
	Pipas          int
	Referencia     string
	PrecioUnitario decimal.Decimal
	Total          decimal.Decimal
}

type ReportGasto struct {
	Descripcion string
	Monto       decimal.Decimal
}

// ReportFilename is the attachment name for fecha.
func ReportFilename(fecha string) string {
	return "resumen_" + utils.SafeFilenamePart(fecha) + ".pdf"
}

// GenerarResumen loads the day's records and renders them. Unlike the
// dashboard, a failed read aborts the export instead of printing partial
// totals.
func (s ReportService) GenerarResumen(ctx context.Context, fecha string, agrupar bool) ([]byte, string, error) {
	fecha, err := validateFecha(fecha)
	if err != nil {
		return nil, "", err
	}

	ventas, err := s.Ventas.List(ctx, models.VentaFilter{Fecha: fecha})
	if err != nil {
		return nil, "", err
	}
	gastos, err := s.Gastos.List(ctx, models.GastoFilter{Fecha: fecha})
	if err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.Log, s.RequestID, "report", "generate_resumen",
		zap.String("fecha", fecha), zap.Int("ventas", len(ventas)), zap.Int("gastos", len(gastos)), zap.Bool("agrupar", agrupar))

	rep := BuildReport(fecha, ventas, gastos, agrupar)
	rep.Currency = s.currency()
	pdf, err := RenderPDF(rep)
	if err != nil {
		return nil, "", domain.InternalError{Msg: "no se pudo generar el PDF", Err: err}
	}
	return pdf, ReportFilename(fecha), nil
}

func (s ReportService) currency() string {
	if s.Currency != "" {
		return s.Currency
	}
	return defaultCurrency
}

// BuildReport lays out ventas and gastos of fecha. With agrupar every trip
// gets its own section in first-seen order; otherwise all sales share one.
// A day without sales always gets one empty "Ventas" section.
func BuildReport(fecha string, ventas []models.Venta, gastos []models.Gasto, agrupar bool) Report {
	rep := Report{Title: "Resumen del día", Fecha: fecha, Currency: defaultCurrency}

	if agrupar && len(ventas) > 0 {
		for _, g := range domain.AgruparPorViaje(ventas) {
			rep.Secciones = append(rep.Secciones, seccion("Viaje "+strconv.Itoa(g.Viaje), g.Viaje, g.Ventas))
		}
	} else {
		rep.Secciones = []ReportSeccion{seccion("Ventas", 0, ventas)}
	}

	for _, g := range gastos {
		rep.Gastos = append(rep.Gastos, ReportGasto{Descripcion: g.Descripcion, Monto: g.Monto})
	}

	tot := domain.ComputeTotales(ventas, gastos)
	rep.TotalPipas = tot.TotalPipas
	rep.TotalVentas = tot.TotalVentas
	rep.TotalGastos = tot.TotalGastos
	rep.TotalDia = tot.TotalDia
	return rep
}

func seccion(titulo string, viaje int, ventas []models.Venta) ReportSeccion {
	s := ReportSeccion{Titulo: titulo, Viaje: viaje, Subtotal: decimal.Zero}
	for _, v := range ventas {
		s.Filas = append(s.Filas, ReportVenta{
			Pipas:          v.Pipas,
			Referencia:     v.Referencia,
			PrecioUnitario: v.PrecioUnitario,
			Total:          v.Total(),
		})
	}
	s.Pipas = domain.SumPipas(ventas)
	s.Subtotal = domain.SumVentas(ventas)
	return s
}

const (
	rowH         = 7.0
	bottomMargin = 20.0
)

var (
	ventaCols = []float64{25, 85, 35, 37}
	gastoCols = []float64{130, 52}
)

// RenderPDF writes rep as an A4 document. Tables break across pages with
// their header repeated, and every page carries a "Página n/N" footer.
func RenderPDF(rep Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(rep.Title+" "+rep.Fecha), false)
	pdf.AliasNbPages("")
	pdf.SetAutoPageBreak(true, bottomMargin)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Página %d/{nb}", pdf.PageNo())), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	money := func(d decimal.Decimal) string { return utils.FormatMoney(d) }
	withCurrency := func(d decimal.Decimal) string { return utils.FormatCurrency(rep.Currency, d) }

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, tr(rep.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, tr("Fecha: "+rep.Fecha), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	for _, sec := range rep.Secciones {
		sectionTitle(pdf, tr(sec.Titulo))
		header := []string{"Pipas", "Referencia", "Precio U.", "Total"}
		tableHeader(pdf, ventaCols, header, tr)
		pdf.SetFont("Helvetica", "", 10)
		for _, f := range sec.Filas {
			ensureRoom(pdf, func() { tableHeader(pdf, ventaCols, header, tr) })
			pdf.SetFont("Helvetica", "", 10)
			pdf.CellFormat(ventaCols[0], rowH, strconv.Itoa(f.Pipas), "1", 0, "C", false, 0, "")
			pdf.CellFormat(ventaCols[1], rowH, tr(truncate(f.Referencia, 45)), "1", 0, "L", false, 0, "")
			pdf.CellFormat(ventaCols[2], rowH, money(f.PrecioUnitario), "1", 0, "R", false, 0, "")
			pdf.CellFormat(ventaCols[3], rowH, money(f.Total), "1", 1, "R", false, 0, "")
		}
		ensureRoom(pdf, nil)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(ventaCols[0], rowH, strconv.Itoa(sec.Pipas), "1", 0, "C", false, 0, "")
		pdf.CellFormat(ventaCols[1]+ventaCols[2], rowH, "Subtotal", "1", 0, "R", false, 0, "")
		pdf.CellFormat(ventaCols[3], rowH, withCurrency(sec.Subtotal), "1", 1, "R", false, 0, "")
		pdf.Ln(4)
	}

	sectionTitle(pdf, "Gastos")
	header := []string{"Descripción", "Monto"}
	tableHeader(pdf, gastoCols, header, tr)
	for _, g := range rep.Gastos {
		ensureRoom(pdf, func() { tableHeader(pdf, gastoCols, header, tr) })
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(gastoCols[0], rowH, tr(truncate(g.Descripcion, 70)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(gastoCols[1], rowH, money(g.Monto), "1", 1, "R", false, 0, "")
	}
	ensureRoom(pdf, nil)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(gastoCols[0], rowH, "Total gastos", "1", 0, "R", false, 0, "")
	pdf.CellFormat(gastoCols[1], rowH, withCurrency(rep.TotalGastos), "1", 1, "R", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Total pipas: %d", rep.TotalPipas)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Total ventas: "+withCurrency(rep.TotalVentas)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Total gastos: "+withCurrency(rep.TotalGastos)), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 9, tr("Total del día: "+withCurrency(rep.TotalDia)), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sectionTitle(pdf *gofpdf.Fpdf, title string) {
	ensureRoomFor(pdf, 8+3*rowH, nil)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

func tableHeader(pdf *gofpdf.Fpdf, widths []float64, cols []string, tr func(string) string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, c := range cols {
		ln := 0
		if i == len(cols)-1 {
			ln = 1
		}
		pdf.CellFormat(widths[i], rowH, tr(c), "1", ln, "C", true, 0, "")
	}
}

// ensureRoom starts a new page when the next row would cross the bottom
// margin, then runs onBreak (typically to repeat a table header).
func ensureRoom(pdf *gofpdf.Fpdf, onBreak func()) {
	ensureRoomFor(pdf, rowH, onBreak)
}

func ensureRoomFor(pdf *gofpdf.Fpdf, h float64, onBreak func()) {
	_, pageH := pdf.GetPageSize()
	if pdf.GetY()+h <= pageH-bottomMargin {
		return
	}
	pdf.AddPage()
	if onBreak != nil {
		onBreak()
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
