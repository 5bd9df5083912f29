package service

import (
	"fmt"
	"log"
	"math"

	"github.com/joseph2000k/pljscorner-pos-sub000/internal/domain/entity"
	"github.com/joseph2000k/pljscorner-pos-sub000/pkg/printer"
)

// receiptEpsilon is the rounding tolerance for the subtotal/savings/total
// consistency check.
const receiptEpsilon = 1e-6

// ComposeReceipt builds the immutable receipt projection from a committed
// sale, its items and the discount breakdown that applied at checkout time.
// It never consults current catalog state, so re-rendering a historical
// receipt is safe after any rule or price change.
func ComposeReceipt(sale *entity.Sale, items []entity.SaleItem, breakdown []entity.DiscountBreakdown, header entity.ReceiptHeader) *entity.Receipt {
	receipt := &entity.Receipt{
		Header:        header,
		InvoiceNo:     sale.InvoiceNo,
		Date:          sale.CreatedAt.Format("2006-01-02 15:04"),
		PaymentMethod: sale.PaymentMethod.String(),
		Total:         sale.Total,
		Tendered:      sale.AmountTendered,
		Change:        sale.Change,
	}

	for _, item := range items {
		name := item.ProductName
		if name == "" {
			name = item.Product.Name
		}
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.UnitPrice * float64(item.Quantity),
		})
		receipt.SubTotal += item.UnitPrice * float64(item.Quantity)
	}

	for _, b := range breakdown {
		receipt.Savings = append(receipt.Savings, entity.ReceiptSavings{
			Category:         b.Category,
			BulkSets:         b.BulkSets,
			DiscountQuantity: b.DiscountQuantity,
			Savings:          b.Savings,
		})
		receipt.TotalSavings += b.Savings
	}

	// Invariant: subtotal - savings == sale total, up to rounding. A
	// violation means the breakdown and sale rows disagree; log it but
	// still render what was persisted.
	if diff := math.Abs(receipt.SubTotal - receipt.TotalSavings - sale.Total); diff > receiptEpsilon {
		log.Printf("receipt %s: subtotal %.4f - savings %.4f differs from total %.4f by %.6f",
			sale.InvoiceNo, receipt.SubTotal, receipt.TotalSavings, sale.Total, diff)
	}

	return receipt
}

// BreakdownFromSale rebuilds the value-object breakdown from a sale's
// persisted discount rows.
func BreakdownFromSale(discounts []entity.SaleDiscount) []entity.DiscountBreakdown {
	breakdown := make([]entity.DiscountBreakdown, 0, len(discounts))
	for _, d := range discounts {
		breakdown = append(breakdown, entity.DiscountBreakdown{
			Category:         d.Category,
			TotalQuantity:    d.TotalQuantity,
			BulkSets:         d.BulkSets,
			DiscountQuantity: d.DiscountQuantity,
			DiscountPrice:    d.DiscountPrice,
			Savings:          d.Savings,
		})
	}
	return breakdown
}

// FormatReceipt converts a Receipt into ESC/POS bytes for 58mm paper.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(32)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-').
		KeyValue("Invoice", r.InvoiceNo).
		KeyValue("Date", r.Date).
		KeyValue("Payment", r.PaymentMethod).
		Separator('-')

	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, money(item.Total))
	}

	doc.Separator('-').
		KeyValue("Subtotal", money(r.SubTotal))

	for _, s := range r.Savings {
		doc.SavingsLine(s.Category, s.BulkSets, s.DiscountQuantity, money(s.Savings))
	}
	if len(r.Savings) > 0 {
		doc.KeyValue("You saved", money(r.TotalSavings))
	}

	doc.SetBold(true).
		KeyValue("TOTAL", money(r.Total)).
		SetBold(false).
		KeyValue("Tendered", money(r.Tendered)).
		KeyValue("Change", money(r.Change)).
		Separator('-').
		SetAlign(printer.AlignCenter).
		Text("Thank you for shopping!").
		FeedLines(3).
		Cut()

	return doc.Bytes()
}

func money(v float64) string {
	return fmt.Sprintf("P%.2f", v)
}
