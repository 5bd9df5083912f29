package entity

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// ReceiptSavings is one per-category bulk savings line on a receipt.
type ReceiptSavings struct {
	Category         string  `json:"category"`
	BulkSets         int     `json:"bulk_sets"`
	DiscountQuantity int     `json:"discount_quantity"`
	Savings          float64 `json:"savings"`
}

// Receipt is a read-only projection of a committed sale, its items and the
// discount breakdown that applied at checkout time. It is not a database
// entity; it is composed once from persisted data and never mutated.
// Re-rendering a receipt must never consult current catalog state.
type Receipt struct {
	Header        ReceiptHeader    `json:"header"`
	InvoiceNo     string           `json:"invoice_no"`
	Date          string           `json:"date"`
	PaymentMethod string           `json:"payment_method"`
	Items         []ReceiptItem    `json:"items"`
	Savings       []ReceiptSavings `json:"savings,omitempty"`
	SubTotal      float64          `json:"sub_total"`
	TotalSavings  float64          `json:"total_savings"`
	Total         float64          `json:"total"`
	Tendered      float64          `json:"tendered"`
	Change        float64          `json:"change"`
}
