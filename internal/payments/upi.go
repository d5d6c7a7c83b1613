package payments

import (
	"net/url"
)

// UPIProvider encodes upi://pay deep links. Scanning the link in any UPI
// app pre-fills payee, amount and a note tying the payment to the event.
type UPIProvider struct {
	payeeID   string
	payeeName string
	festName  string
}

func NewUPIProvider(payeeID, payeeName, festName string) *UPIProvider {
	return &UPIProvider{payeeID: payeeID, payeeName: payeeName, festName: festName}
}

func (p *UPIProvider) Name() string { return "upi" }

func (p *UPIProvider) PaymentLink(eventName, amount string) string {
	q := url.Values{}
	q.Set("pa", p.payeeID)
	q.Set("pn", p.payeeName)
	q.Set("am", amount)
	q.Set("cu", "INR")
	q.Set("tn", p.festName+" "+eventName)
	return "upi://pay?" + q.Encode()
}
