package enum

import "encoding/json"

// CheckoutState is the checkout processor's state machine position.
type CheckoutState int

const (
	CheckoutIdle            CheckoutState = 0
	CheckoutAwaitingPayment CheckoutState = 1
	CheckoutCommitting      CheckoutState = 2
	CheckoutCompleted       CheckoutState = 3
)

func (s CheckoutState) String() string {
	names := [...]string{"Idle", "AwaitingPayment", "Committing", "Completed"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Idle"
	}
	return names[s]
}

func (s CheckoutState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
