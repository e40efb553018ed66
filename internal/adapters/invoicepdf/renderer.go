// Package invoicepdf renders bill and order invoices as A4 PDFs.
//
// Layout:
//
//	seller header (name, email, GSTIN, address) | invoice no + date
//	bill-to block
//	product table: Product Type | Size | Style Coat | Qty | Unit | Price | Total
//	totals: amount, discount, price after discount, CGST + SGST, invoice total, words
//	bank details footer
package invoicepdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
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
	"github.com/shopspring/decimal"

	"github.com/jhaverenterprises/uniform-admin/internal/domain/model"
	"github.com/jhaverenterprises/uniform-admin/internal/money"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
)

var (
	colorHeader = &props.Color{Red: 211, Green: 211, Blue: 211}
	colorGray   = &props.Color{Red: 90, Green: 90, Blue: 90}
	colorRule   = &props.Color{Red: 0, Green: 0, Blue: 0}
)

// Renderer implements ports.InvoiceRenderer with maroto.
type Renderer struct{}

var _ ports.InvoiceRenderer = (*Renderer)(nil)

// NewRenderer creates a renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// invoice is the printable view shared by bills and online orders.
type invoice struct {
	number   string
	date     string
	customer [3]string // name, phone, email
	address  string
	lines    []invoiceLine
	totals   model.InvoiceTotals
}

type invoiceLine struct {
	productType string
	size        string
	styleCoat   string
	qty         int
	unit        decimal.Decimal
	total       decimal.Decimal
}

// RenderBill renders a store bill invoice.
func (r *Renderer) RenderBill(ctx context.Context, bill model.BillDetails) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	inv := invoice{
		number: bill.InvoiceNo,
		date:   displayDate(bill.DateOfBill),
		customer: [3]string{
			bill.Customer.Name,
			bill.Customer.Phone,
			bill.Customer.Email,
		},
		totals: model.TotalsFor(bill),
	}
	for _, l := range bill.Lines() {
		inv.lines = append(inv.lines, invoiceLine{
			productType: l.ProductType,
			size:        l.Size,
			styleCoat:   l.StyleCoat,
			qty:         l.BilledQuantity,
			unit:        l.Price,
			total:       l.SubTotal(),
		})
	}
	return r.render(inv)
}

// RenderOrder renders the customer invoice of an online order.
func (r *Renderer) RenderOrder(ctx context.Context, order model.OrderDetails) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	addr := order.AddressDetails
	inv := invoice{
		number: order.OrderID,
		date:   displayDate(order.DateOfOrder),
		customer: [3]string{
			order.UserDetails.Name,
			order.ContactPhone(),
			order.UserDetails.Email,
		},
		address: fmt.Sprintf("%s, %s, %s - %s", addr.Address, addr.City, addr.State, addr.PinCode),
		totals:  model.OrderTotals(order),
	}
	for _, p := range order.Products {
		qty := decimal.NewFromInt(int64(p.QuantityOrdered))
		inv.lines = append(inv.lines, invoiceLine{
			productType: p.ProductDetails.ProductType,
			size:        p.Size,
			styleCoat:   p.Color.Name,
			qty:         p.QuantityOrdered,
			unit:        p.Price,
			total:       p.Price.Mul(qty),
		})
	}
	return r.render(inv)
}

func (r *Renderer) render(inv invoice) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+inv.number, true).
		WithAuthor(model.SellerName, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorRule, Thickness: 0.4}))
	m.AddRows(billToRows(inv)...)
	m.AddRows(row.New(3))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(inv.lines)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorRule, Thickness: 0.3}))
	m.AddRows(totalsRows(inv.totals)...)
	m.AddRows(row.New(4))
	m.AddRows(line.NewRow(1, props.Line{Color: colorRule, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("Bank Details: "+model.SellerBank, props.Text{Size: 8, Top: 2, Color: colorGray}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate invoice %s: %w", inv.number, err)
	}
	return doc.GetBytes(), nil
}

func headerRow(inv invoice) core.Row {
	return row.New(24).Add(
		col.New(8).Add(
			text.New(model.SellerName, props.Text{Style: fontstyle.Bold, Size: 14, Top: 1}),
			text.New("Email: "+model.SellerEmail, props.Text{Size: 8, Top: 9, Color: colorGray}),
			text.New("GSTIN: "+model.SellerGSTIN, props.Text{Size: 8, Top: 13, Color: colorGray}),
			text.New(model.SellerAddress, props.Text{Size: 8, Top: 17, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("TAX INVOICE", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1}),
			text.New("Invoice No: "+orNA(inv.number), props.Text{Size: 8, Align: align.Right, Top: 9}),
			text.New("Date: "+orNA(inv.date), props.Text{Size: 8, Align: align.Right, Top: 13}),
		),
	)
}

func billToRows(inv invoice) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("Bill To:", props.Text{Style: fontstyle.Bold, Size: 9, Top: 2}),
		)),
		row.New(5).Add(
			col.New(4).Add(text.New("Name: "+orNA(inv.customer[0]), props.Text{Size: 8})),
			col.New(4).Add(text.New("Phone: "+orNA(inv.customer[1]), props.Text{Size: 8})),
			col.New(4).Add(text.New("Email: "+orNA(inv.customer[2]), props.Text{Size: 8})),
		),
	}
	if inv.address != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Ship To: "+inv.address, props.Text{Size: 8}),
		)))
	}
	return rows
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1.5, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		h("Product Type", 3, align.Left),
		h("Size", 1, align.Center),
		h("Style Coat", 2, align.Left),
		h("Quantity", 1, align.Center),
		h("Unit", 1, align.Center),
		h("Price", 2, align.Right),
		h("Total", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorHeader})
}

func tableRows(lines []invoiceLine) []core.Row {
	rows := make([]core.Row, 0, len(lines))
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	for _, l := range lines {
		rows = append(rows, row.New(6).Add(
			cell(orNA(l.productType), 3, align.Left),
			cell(orNA(l.size), 1, align.Center),
			cell(orNA(l.styleCoat), 2, align.Left),
			cell(strconv.Itoa(l.qty), 1, align.Center),
			cell("Pcs", 1, align.Center),
			cell(money.Format(l.unit), 2, align.Right),
			cell(money.Format(l.total), 2, align.Right),
		))
	}
	return rows
}

func totalsRows(t model.InvoiceTotals) []core.Row {
	pair := func(label, value string, bold bool) core.Row {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		return row.New(5).Add(
			col.New(6),
			col.New(4).Add(text.New(label, props.Text{Size: 8, Style: style, Align: align.Right, Right: 2})),
			col.New(2).Add(text.New(value, props.Text{Size: 8, Style: style, Align: align.Right, Right: 1})),
		)
	}
	return []core.Row{
		pair("Total Amount:", rs(t.TotalAmount), false),
		pair(fmt.Sprintf("Discount (%s%%):", t.DiscountPercentage.String()), rs(t.DiscountAmount), false),
		pair("Price After Discount:", rs(t.PriceAfterDiscount), false),
		pair("CGST @ 6%:", rs(t.CGST), false),
		pair("SGST @ 6%:", rs(t.SGST), false),
		pair("Total Tax:", rs(t.TotalTax), false),
		pair("Invoice Total:", rs(t.InvoiceTotal), true),
		row.New(8).Add(col.New(12).Add(
			text.New("Total Amount in Words: "+money.Words(t.TotalAmount), props.Text{
				Size: 8, Style: fontstyle.Italic, Top: 3,
			}),
		)),
	}
}

// rs uses an ASCII prefix; the built-in PDF fonts have no rupee glyph.
func rs(d decimal.Decimal) string { return "Rs. " + money.Format(d) }

// displayDate prints backend timestamps as dd/mm/yyyy; unknown formats pass through.
func displayDate(raw string) string {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return raw
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
