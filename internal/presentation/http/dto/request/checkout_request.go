package request

// SettleCashRequest represents a cash settlement request
type SettleCashRequest struct {
	AmountTendered float64 `json:"amount_tendered" binding:"required"`
}

// SettleFixedRequest represents a fixed-amount settlement request (card, gcash)
type SettleFixedRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}
