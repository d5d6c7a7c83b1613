package payments

// Provider builds a payment link for one registration. The fest collects
// payments out of band (the link is rendered as a QR code); providers
// never verify that payment actually happened.
type Provider interface {
	Name() string
	PaymentLink(eventName, amount string) string
}
