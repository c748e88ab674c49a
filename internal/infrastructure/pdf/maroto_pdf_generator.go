// Package pdf genera los documentos descargables del panel con Maroto v2.
//
// Estado de cuenta (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Embutidos Mardely      │  Estado de cuenta + fecha │
//	│  CLIENTE: Nombre + CI + contacto                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  POR VENTA: fecha, vendedor, total, saldo                   │
//	│     Producto | Cant. | Precio | Subtotal                    │
//	│     Pagos aplicados: fecha, método, monto                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Vendido / Pagado / Deuda                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/embutidos-web/internal/domain/entity"
	"github.com/jhoicas/embutidos-web/pkg/money"
)

const company = "Embutidos Mardely"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 153, Green: 27, Blue: 27}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.DocumentRenderer usando Maroto v2.
type MarotoPDFGenerator struct {
	now func() time.Time
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{now: time.Now}
}

func (g *MarotoPDFGenerator) document(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(company, true).
		Build()
	return maroto.New(cfg)
}

// StatementPDF estado de cuenta de un cliente con sus ventas y pagos aplicados.
func (g *MarotoPDFGenerator) StatementPDF(client entity.User, report entity.ClientStatement) ([]byte, error) {
	m := g.document("Estado de cuenta - " + client.Name)

	m.AddRows(headerRow("ESTADO DE CUENTA", g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(report.Ventas) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("El cliente no tiene ventas en el período seleccionado.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	for _, v := range report.Ventas {
		m.AddRows(saleRows(v)...)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar estado de cuenta: %w", err)
	}
	return doc.GetBytes(), nil
}

// QRCardPDF tarjeta de acceso por QR de un usuario.
func (g *MarotoPDFGenerator) QRCardPDF(user entity.User, qr entity.QRCode) ([]byte, error) {
	if qr.QRCodeURL == "" {
		return nil, fmt.Errorf("pdf: QR vacío para el usuario %s", user.ID)
	}
	qrCol, err := qrColumn(qr.QRCodeURL)
	if err != nil {
		return nil, err
	}

	m := g.document("Acceso QR - " + user.Name)
	m.AddRows(headerRow("ACCESO CON CÓDIGO QR", g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(14).Add(col.New(12).Add(
		text.New(user.Name, props.Text{Style: fontstyle.Bold, Size: 14, Align: align.Center, Top: 4}),
		text.New(nonEmpty(user.RoleName(), "—"), props.Text{Size: 9, Align: align.Center, Top: 10, Color: colorGray}),
	)))
	m.AddRows(row.New(80).Add(col.New(3), qrCol, col.New(3)))
	m.AddRows(row.New(16).Add(col.New(12).Add(
		text.New("Escanee este código desde la pantalla de inicio de sesión.\nNo lo comparta: da acceso a su cuenta.", props.Text{
			Size: 9, Align: align.Center, Color: colorGray, Top: 4,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar tarjeta QR: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la empresa (izq) y título + fecha de emisión (der).
func headerRow(title string, now time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Sistema de gestión de embutidos", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+now.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos del cliente.
func clientRow(c entity.User) core.Row {
	ci, phone := "—", "—"
	if c.CI != 0 {
		ci = strconv.FormatInt(c.CI, 10)
	}
	if c.ContactInfo.Phone != 0 {
		phone = strconv.FormatInt(c.ContactInfo.Phone, 10)
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(c.Name, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("CI: %s   |   Email: %s   |   Tel: %s   |   Dirección: %s",
				ci,
				nonEmpty(c.Email, "—"),
				phone,
				nonEmpty(c.ContactInfo.Address, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// saleRows: cabecera de la venta, sus líneas y los pagos aplicados a ella.
func saleRows(v entity.StatementSale) []core.Row {
	rows := []core.Row{
		row.New(10).Add(
			col.New(6).Add(text.New(
				fmt.Sprintf("Venta del %s  ·  Vendedor: %s", v.FechaVenta.Format(), nonEmpty(v.Vendedor, "—")),
				props.Text{Style: fontstyle.Bold, Size: 9, Top: 3},
			)),
			col.New(3).Add(text.New("Total: "+money.Format(v.TotalVenta),
				props.Text{Size: 9, Align: align.Right, Top: 3})),
			col.New(3).Add(text.New("Saldo: "+money.Format(v.SaldoVenta),
				props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 3, Color: colorPrimary})),
		),
		tableHeaderRow(),
	}
	for _, l := range v.Productos {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(l.Producto, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(strconv.FormatFloat(l.Cantidad, 'f', -1, 64),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(money.Format(l.Precio),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(money.Format(l.Precio.Mul(decimal.NewFromFloat(l.Cantidad))),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	if v.PagoInicial.IsPositive() {
		rows = append(rows, paymentRow("Pago inicial", v.FechaVenta, "", v.PagoInicial))
	}
	for _, p := range v.Pagos {
		applied := p.MontoPagado
		for _, a := range p.PagosAplicados {
			if a.VentaID == v.VentaID {
				applied = a.PagoAplicado
				break
			}
		}
		rows = append(rows, paymentRow("Pago", p.FechaPago, p.MetodoPago, applied))
	}
	return append(rows, line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.1}))
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Producto", 6, align.Left),
		h("Cant.", 2, align.Center),
		h("Precio", 2, align.Right),
		h("Subtotal", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func paymentRow(label string, date entity.Date, method string, amount decimal.Decimal) core.Row {
	desc := label + " " + date.Format()
	if method != "" {
		desc += " (" + method + ")"
	}
	return row.New(5).Add(
		col.New(8).Add(text.New(desc, props.Text{Size: 7.5, Top: 1, Left: 4, Color: colorGray})),
		col.New(4).Add(text.New("- "+money.Format(amount), props.Text{
			Size: 7.5, Align: align.Right, Top: 1, Right: 1, Color: colorGray,
		})),
	)
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(r entity.ClientStatement) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grand := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(22).Add(
		col.New(6),
		col.New(3).Add(
			label("Total vendido:"),
			label("Total pagado:"),
			label("DEUDA:"),
		),
		col.New(3).Add(
			value(money.Format(r.TotalVendido)),
			value(money.Format(r.TotalPagado)),
			grand(money.Format(r.TotalDeuda)),
		),
	)
}

// qrColumn incrusta el PNG si el backend envió una data URL; si no, dibuja el
// valor como código QR.
func qrColumn(v string) (core.Col, error) {
	rect := props.Rect{Percent: 95, Center: true}
	if !strings.HasPrefix(v, "data:image/") {
		return col.New(6).Add(code.NewQr(v, rect)), nil
	}
	meta, data, ok := strings.Cut(strings.TrimPrefix(v, "data:"), ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return nil, fmt.Errorf("pdf: data URL de QR inválida")
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("pdf: decodificar QR: %w", err)
	}
	ext := extension.Png
	if strings.HasPrefix(meta, "image/jpeg") || strings.HasPrefix(meta, "image/jpg") {
		ext = extension.Jpg
	}
	return col.New(6).Add(image.NewFromBytes(raw, ext, rect)), nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
