package notifier

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/utsav-fest/utsav-api/internal/models"
)

func TestSheetNotifier(t *testing.T) {
	received := make(chan sheetRow, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var row sheetRow
		if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
			t.Errorf("bad webhook body: %v", err)
		}
		received <- row
	}))
	defer srv.Close()

	registeredAt := time.Date(2026, 2, 20, 10, 30, 0, 0, time.UTC)
	reg := models.Registration{
		EventID:         "cricket",
		EventName:       "Box Cricket",
		Category:        "sports",
		TeamNumber:      3,
		CollegeName:     "St. Foo College",
		Email:           "captain@example.com",
		Members:         []models.Member{{Position: 1, Name: "A", Phone: "9000000001"}},
		RegistrationFee: "₹1000 per team",
		TransactionID:   "UPI123",
		PaymentStatus:   models.PaymentStatusPending,
		RegisteredAt:    registeredAt,
	}

	n := NewSheetNotifier(srv.URL)
	if err := n.NotifyRegistration(reg); err != nil {
		t.Fatalf("NotifyRegistration returned error: %v", err)
	}

	row := <-received
	if row.EventID != "cricket" || row.TeamNumber != 3 {
		t.Errorf("unexpected row: %+v", row)
	}
	if row.Timestamp != registeredAt.Format(time.RFC3339) {
		t.Errorf("timestamp = %q", row.Timestamp)
	}
}

func TestSheetNotifierUnreachable(t *testing.T) {
	n := NewSheetNotifier("http://127.0.0.1:1/hook")
	if err := n.NotifyRegistration(models.Registration{}); err == nil {
		t.Fatal("expected transport error")
	}
}

func TestSheetNotifierNoURL(t *testing.T) {
	n := NewSheetNotifier("")
	if err := n.NotifyRegistration(models.Registration{}); err == nil {
		t.Fatal("expected error for empty webhook URL")
	}
}
