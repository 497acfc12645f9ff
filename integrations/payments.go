package integrations

type PaymentIntent struct {
	ID       string `json:"id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// CreatePaymentIntent returns fake payment intent information.
func CreatePaymentIntent(amountCents int, currency string) PaymentIntent {
	if currency == "" {
		currency = "usd"
	}
	return PaymentIntent{
		ID:       "pi_test_123",
		Amount:   amountCents,
		Currency: currency,
		Status:   "requires_confirmation",
	}
}
