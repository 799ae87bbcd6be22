// Package pdf genera el comprobante de pedido en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Bapesu + N° pedido  │  Fecha + Estado               │
//	│  CLIENTE: Nombre / Email / Tel                               │
//	│  ENVÍO: Dirección / Ciudad / Método                          │
//	│  TABLA: Cant | Producto | P.Unit | Total                     │
//	│  TOTALES: Subtotal / Envío / TOTAL                           │
//	│  FOOTER: QR con el ID del pedido + seguimiento               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"

	"github.com/bapesu/bapesu-api/internal/application/ports"
	"github.com/bapesu/bapesu-api/internal/domain/entity"
)

var _ ports.ReceiptRenderer = (*ReceiptGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 175}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var statusLabels = map[entity.OrderStatus]string{
	entity.OrderPending:    "Pendiente",
	entity.OrderConfirmed:  "Confirmado",
	entity.OrderProcessing: "En proceso",
	entity.OrderShipped:    "Enviado",
	entity.OrderDelivered:  "Entregado",
	entity.OrderCancelled:  "Cancelado",
}

// ReceiptGenerator implementa ports.ReceiptRenderer con Maroto v2.
type ReceiptGenerator struct {
	storeName string
	money     accounting.Accounting
}

// NewReceiptGenerator construye el generador. Montos en pesos colombianos, sin decimales.
func NewReceiptGenerator(storeName string) *ReceiptGenerator {
	return &ReceiptGenerator{
		storeName: storeName,
		money:     accounting.Accounting{Symbol: "$", Precision: 0, Thousand: ".", Decimal: ","},
	}
}

// RenderOrderReceipt genera el PDF y devuelve sus bytes.
func (g *ReceiptGenerator) RenderOrderReceipt(o *entity.Order) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de pedido "+o.ID, true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(o))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(o), shippingRow(o))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.itemRows(o.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(o))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(o))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *ReceiptGenerator) headerRow(o *entity.Order) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1}),
			text.New("Pedido N° "+shortID(o.ID), props.Text{Size: 9, Top: 10, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("COMPROBANTE DE PEDIDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+o.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
			text.New("Estado: "+statusLabel(o.Status), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 12,
			}),
		),
	)
}

func customerRow(o *entity.Order) core.Row {
	return row.New(14).Add(col.New(12).Add(
		text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New(o.CustomerName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 5}),
		text.New(fmt.Sprintf("Email: %s   |   Tel: %s", nonEmpty(o.CustomerEmail, "-"), nonEmpty(o.CustomerPhone, "-")),
			props.Text{Size: 8, Top: 10, Color: colorGray}),
	))
}

func shippingRow(o *entity.Order) core.Row {
	place := strings.Join(nonBlank(o.ShippingCity, o.ShippingState, o.ShippingZipCode, o.ShippingCountry), ", ")
	return row.New(14).Add(col.New(12).Add(
		text.New("ENVÍO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New(o.ShippingAddress+" - "+place, props.Text{Size: 9, Top: 5}),
		text.New(fmt.Sprintf("Método de envío: %s   |   Pago: %s", o.ShippingMethod, o.PaymentMethod),
			props.Text{Size: 8, Top: 10, Color: colorGray}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

func (g *ReceiptGenerator) itemRows(items []entity.OrderItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(it.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(6).Add(text.New(it.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(g.format(it.ProductPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(g.format(it.TotalPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func (g *ReceiptGenerator) totalsRow(o *entity.Order) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:", 0),
			label("Envío:", 5),
			text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 11}),
		),
		col.New(3).Add(
			value(g.format(o.Subtotal), 0),
			value(g.format(o.ShippingCost), 5),
			text.New(g.format(o.TotalAmount), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 11}),
		),
	)
}

func footerRow(o *entity.Order) core.Row {
	tracking := "Número de seguimiento pendiente."
	if o.TrackingNumber != "" {
		tracking = "Seguimiento: " + o.TrackingNumber
		if o.TrackingURL != "" {
			tracking += "\n" + o.TrackingURL
		}
	}
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(o.ID, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New(tracking, props.Text{Size: 8, Top: 4, Left: 3, Color: colorGray}),
			text.New("Gracias por tu compra.", props.Text{Style: fontstyle.Bold, Size: 10, Top: 20, Left: 3, Color: colorPrimary}),
		),
	)
}

func (g *ReceiptGenerator) format(d decimal.Decimal) string {
	return g.money.FormatMoneyFloat64(d.InexactFloat64())
}

func statusLabel(s entity.OrderStatus) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

func shortID(id string) string {
	if len(id) > 8 {
		return strings.ToUpper(id[:8])
	}
	return strings.ToUpper(id)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func nonBlank(parts ...string) []string {
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}
