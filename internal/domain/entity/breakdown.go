package entity

// DiscountBreakdown is the per-category result of the bulk discount
// computation for a cart. One entry exists for each category whose rule is
// active and whose total quantity meets the rule's threshold.
type DiscountBreakdown struct {
	Category         string  `json:"category"`
	TotalQuantity    int     `json:"total_quantity"`
	BulkSets         int     `json:"bulk_sets"`
	DiscountQuantity int     `json:"discount_quantity"`
	DiscountPrice    float64 `json:"discount_price"`
	RegularTotal     float64 `json:"regular_total"`
	Savings          float64 `json:"savings"`
}

// CartTotals is the full pricing result for a cart: the grand total after
// discounts plus the per-category breakdown behind it.
type CartTotals struct {
	Total     float64             `json:"total"`
	Breakdown []DiscountBreakdown `json:"breakdown"`
}

// TotalSavings sums the savings across all breakdown entries.
func (t CartTotals) TotalSavings() float64 {
	var sum float64
	for _, b := range t.Breakdown {
		sum += b.Savings
	}
	return sum
}
