package service

import (
	"github.com/joseph2000k/pljscorner-pos-sub000/internal/domain/entity"
)

// UncategorizedName groups cart lines whose product carries no category.
// The group never has an active discount rule.
const UncategorizedName = "Uncategorized"

// CategoryLookup resolves a category name to its current record (with the
// discount rule) or nil when the category is unknown.
type CategoryLookup func(name string) *entity.Category

// ComputeBreakdown prices a set of cart lines: per-category bulk discounts
// plus the grand total. It is a pure function with no hidden state:
// identical lines and rules always produce identical output, so callers
// recompute on demand rather than caching.
//
// A category's rule applies iff discountQuantity > 0, discountPrice > 0 and
// the category's combined quantity reaches discountQuantity. Complete sets
// are charged the flat discountPrice; the remainder is priced at the
// category's average unit price (regularTotal / totalQty), which spreads
// mixed-price remainders smoothly instead of picking one line's price. A
// breakdown entry is emitted whenever the rule applies, even at zero savings.
func ComputeBreakdown(lines []entity.CartLine, lookup CategoryLookup) entity.CartTotals {
	type group struct {
		name         string
		totalQty     int
		regularTotal float64
	}

	// Group lines by category, keeping first-seen order for stable output.
	var order []string
	groups := make(map[string]*group)
	for _, line := range lines {
		name := line.CategoryName
		if name == "" {
			name = UncategorizedName
		}
		g, ok := groups[name]
		if !ok {
			g = &group{name: name}
			groups[name] = g
			order = append(order, name)
		}
		g.totalQty += line.Quantity
		g.regularTotal += line.UnitPrice * float64(line.Quantity)
	}

	var totals entity.CartTotals
	for _, name := range order {
		g := groups[name]

		var category *entity.Category
		if name != UncategorizedName && lookup != nil {
			category = lookup(name)
		}

		if category == nil || !category.RuleActive() || g.totalQty < category.DiscountQuantity {
			totals.Total += g.regularTotal
			continue
		}

		bulkSets := g.totalQty / category.DiscountQuantity
		remainder := g.totalQty % category.DiscountQuantity
		// Safe: a group only exists when totalQty >= 1.
		avgUnitPrice := g.regularTotal / float64(g.totalQty)
		categoryTotal := float64(bulkSets)*category.DiscountPrice + float64(remainder)*avgUnitPrice
		savings := g.regularTotal - categoryTotal

		totals.Total += categoryTotal
		totals.Breakdown = append(totals.Breakdown, entity.DiscountBreakdown{
			Category:         name,
			TotalQuantity:    g.totalQty,
			BulkSets:         bulkSets,
			DiscountQuantity: category.DiscountQuantity,
			DiscountPrice:    category.DiscountPrice,
			RegularTotal:     g.regularTotal,
			Savings:          savings,
		})
	}

	return totals
}
