package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/utsav-fest/utsav-api/internal/models"
)

// SheetNotifier POSTs a copy of each registration to a spreadsheet
// webhook (an Apps Script endpoint) so organizers can eyeball entries
// without touching the database. At-most-once: no retry, response body
// and status are discarded.
type SheetNotifier struct {
	webhookURL string
	client     *http.Client
}

func NewSheetNotifier(webhookURL string) *SheetNotifier {
	return &SheetNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

type sheetRow struct {
	EventID         string          `json:"event_id"`
	EventName       string          `json:"event_name"`
	Category        string          `json:"category"`
	TeamNumber      int             `json:"team_number"`
	CollegeName     string          `json:"college_name"`
	Email           string          `json:"email"`
	Members         []models.Member `json:"members"`
	RegistrationFee string          `json:"registration_fee"`
	TransactionID   string          `json:"transaction_id"`
	PaymentStatus   string          `json:"payment_status"`
	Timestamp       string          `json:"timestamp"`
}

func (n *SheetNotifier) NotifyRegistration(registration models.Registration) error {
	if n.webhookURL == "" {
		return fmt.Errorf("sheet webhook URL is empty")
	}

	row := sheetRow{
		EventID:         registration.EventID,
		EventName:       registration.EventName,
		Category:        registration.Category,
		TeamNumber:      registration.TeamNumber,
		CollegeName:     registration.CollegeName,
		Email:           registration.Email,
		Members:         registration.Members,
		RegistrationFee: registration.RegistrationFee,
		TransactionID:   registration.TransactionID,
		PaymentStatus:   registration.PaymentStatus,
		Timestamp:       registration.RegisteredAt.Format(time.RFC3339),
	}

	body, err := json.Marshal(row)
	if err != nil {
		return err
	}

	resp, err := n.client.Post(n.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
