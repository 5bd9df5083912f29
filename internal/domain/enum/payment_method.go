package enum

// PaymentMethod is how a sale was settled.
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentCard  PaymentMethod = "card"
	PaymentGCash PaymentMethod = "gcash"
)

// Valid reports whether the method is one of the supported payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentGCash:
		return true
	}
	return false
}

// Fixed reports whether the method settles at exactly the sale total
// (no cash tendered, no change).
func (m PaymentMethod) Fixed() bool {
	return m == PaymentCard || m == PaymentGCash
}

func (m PaymentMethod) String() string {
	return string(m)
}
