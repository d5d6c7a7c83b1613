package wizard

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/utsav-fest/utsav-api/internal/catalog"
	"github.com/utsav-fest/utsav-api/internal/event"
	"github.com/utsav-fest/utsav-api/internal/models"
	"github.com/utsav-fest/utsav-api/internal/notifier"
	"github.com/utsav-fest/utsav-api/internal/payments"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	db.AutoMigrate(&models.Registration{}, &models.Member{})
	return db
}

func testDeps(t *testing.T) Deps {
	return Deps{
		DB:       setupDB(t),
		Payments: payments.NewUPIProvider("fest@upi", "Utsav Fest", "Utsav 2026"),
	}
}

func mustEvent(t *testing.T, id string) catalog.Event {
	t.Helper()
	ev, ok := catalog.ByID(id)
	if !ok {
		t.Fatalf("event %s missing from catalog", id)
	}
	return ev
}

func fillMembers(n int) []Member {
	members := make([]Member, n)
	for i := range members {
		members[i] = Member{
			Name:  fmt.Sprintf("Player %d", i+1),
			Phone: fmt.Sprintf("90000000%02d", i+1),
		}
	}
	return members
}

// drive advances a fresh wizard to the given state with valid input.
func drive(t *testing.T, w *Wizard, target State) {
	t.Helper()
	if target == StateAuth {
		return
	}
	if err := w.SignIn(Identity{UserID: 1, Email: "captain@example.com"}); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if target == StateForm {
		return
	}
	if err := w.SubmitForm("St. Foo College", fillMembers(w.RequiredMembers())); err != nil {
		t.Fatalf("SubmitForm: %v", err)
	}
	if target == StatePayment {
		return
	}
	if err := w.ConfirmPayment(); err != nil {
		t.Fatalf("ConfirmPayment: %v", err)
	}
	if target == StateTransaction {
		return
	}
	if _, err := w.SubmitTransaction("UPI123"); err != nil {
		t.Fatalf("SubmitTransaction: %v", err)
	}
}

func TestCricketEndToEnd(t *testing.T) {
	deps := testDeps(t)
	ev := mustEvent(t, "cricket")

	// one team registered before ours
	prior := models.Registration{EventID: "cricket", TeamNumber: 1, PaymentStatus: models.PaymentStatusPending}
	deps.DB.Create(&prior)

	w := New(ev, deps)

	if w.State() != StateAuth {
		t.Fatalf("fresh wizard state = %s", w.State())
	}
	if w.RequiredMembers() != 10 {
		t.Fatalf("cricket should need 10 member slots, got %d", w.RequiredMembers())
	}
	if w.FeeAmount() != "1000" {
		t.Fatalf("cricket fee amount = %s", w.FeeAmount())
	}

	if err := w.SignIn(Identity{UserID: 7, Email: "captain@example.com"}); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if err := w.SubmitForm("St. Foo College", fillMembers(10)); err != nil {
		t.Fatalf("SubmitForm: %v", err)
	}
	if w.State() != StatePayment {
		t.Fatalf("state after form = %s", w.State())
	}

	link := w.PaymentLink()
	if !strings.Contains(link, "am=1000") {
		t.Errorf("payment link missing amount: %s", link)
	}

	if err := w.ConfirmPayment(); err != nil {
		t.Fatalf("ConfirmPayment: %v", err)
	}
	teamNumber, err := w.SubmitTransaction("UPI123")
	if err != nil {
		t.Fatalf("SubmitTransaction: %v", err)
	}
	if teamNumber != 2 {
		t.Errorf("expected team number 2, got %d", teamNumber)
	}
	if w.State() != StateSuccess {
		t.Errorf("state after commit = %s", w.State())
	}

	var saved models.Registration
	if err := deps.DB.Preload("Members").Where("transaction_id = ?", "UPI123").First(&saved).Error; err != nil {
		t.Fatalf("registration not persisted: %v", err)
	}
	if saved.PaymentStatus != models.PaymentStatusPending {
		t.Errorf("payment status = %s", saved.PaymentStatus)
	}
	if saved.TeamNumber != 2 {
		t.Errorf("persisted team number = %d", saved.TeamNumber)
	}
	if len(saved.Members) != 10 {
		t.Errorf("persisted %d members", len(saved.Members))
	}
	if saved.EventName != "Box Cricket" || saved.Category != "sports" {
		t.Errorf("event fields not copied: %s/%s", saved.EventName, saved.Category)
	}
	if saved.Email != "captain@example.com" || saved.UserID != 7 {
		t.Errorf("identity not embedded: %s/%d", saved.Email, saved.UserID)
	}
	if saved.RegisteredAt.IsZero() {
		t.Error("registeredAt not set")
	}
}

func TestFormValidation(t *testing.T) {
	ev := mustEvent(t, "code-sprint") // needs 2 members
	deps := testDeps(t)

	cases := []struct {
		name    string
		college string
		members []Member
		errPart string
	}{
		{"EmptyCollege", "  ", fillMembers(2), "college"},
		{"WrongMemberCount", "St. Foo College", fillMembers(3), "2 members"},
		{"MissingName", "St. Foo College", []Member{{Name: "A", Phone: "9000000001"}, {Name: " ", Phone: "9000000002"}}, "member 2: name"},
		{"ShortPhone", "St. Foo College", []Member{{Name: "A", Phone: "12345"}, {Name: "B", Phone: "9000000002"}}, "member 1: phone"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := New(ev, deps)
			drive(t, w, StateForm)

			err := w.SubmitForm(c.college, c.members)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), c.errPart) {
				t.Errorf("error %q should name %q", err, c.errPart)
			}
			if w.State() != StateForm {
				t.Errorf("state moved to %s on invalid input", w.State())
			}
		})
	}
}

func TestEmptyTransactionID(t *testing.T) {
	w := New(mustEvent(t, "code-sprint"), testDeps(t))
	drive(t, w, StateTransaction)

	if _, err := w.SubmitTransaction("   "); err == nil {
		t.Fatal("expected error for empty transaction id")
	}
	if w.State() != StateTransaction {
		t.Errorf("state = %s, want transaction", w.State())
	}
}

func TestWrongStateActions(t *testing.T) {
	w := New(mustEvent(t, "code-sprint"), testDeps(t))

	if err := w.SubmitForm("St. Foo College", fillMembers(2)); !errors.Is(err, ErrWrongState) {
		t.Errorf("SubmitForm before sign-in: %v", err)
	}
	if err := w.ConfirmPayment(); !errors.Is(err, ErrWrongState) {
		t.Errorf("ConfirmPayment before sign-in: %v", err)
	}
	if err := w.RestartTimer(); !errors.Is(err, ErrWrongState) {
		t.Errorf("RestartTimer before sign-in: %v", err)
	}
	if _, err := w.SubmitTransaction("UPI123"); !errors.Is(err, ErrWrongState) {
		t.Errorf("SubmitTransaction before sign-in: %v", err)
	}

	drive(t, w, StateForm)
	if err := w.SignIn(Identity{}); !errors.Is(err, ErrWrongState) {
		t.Errorf("second SignIn: %v", err)
	}
}

func TestCountdownExpiryAndRestart(t *testing.T) {
	base := time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC)
	now := base
	timeNow = func() time.Time { return now }
	defer func() { timeNow = time.Now }()

	w := New(mustEvent(t, "code-sprint"), testDeps(t))
	drive(t, w, StatePayment)

	if got := w.Remaining(); got != 300 {
		t.Errorf("fresh countdown = %d, want 300", got)
	}

	now = base.Add(100 * time.Second)
	if got := w.Remaining(); got != 200 {
		t.Errorf("countdown after 100s = %d, want 200", got)
	}

	now = base.Add(301 * time.Second)
	if got := w.Remaining(); got != 0 {
		t.Errorf("expired countdown = %d, want 0", got)
	}
	if err := w.ConfirmPayment(); !errors.Is(err, ErrTimerExpired) {
		t.Fatalf("expected ErrTimerExpired, got %v", err)
	}
	if w.State() != StatePayment {
		t.Errorf("expiry moved state to %s", w.State())
	}

	if err := w.RestartTimer(); err != nil {
		t.Fatalf("RestartTimer: %v", err)
	}
	if got := w.Remaining(); got != 300 {
		t.Errorf("restarted countdown = %d, want 300", got)
	}
	if err := w.ConfirmPayment(); err != nil {
		t.Fatalf("ConfirmPayment after restart: %v", err)
	}
}

func TestCloseResets(t *testing.T) {
	deps := testDeps(t)
	ev := mustEvent(t, "code-sprint")

	for _, target := range []State{StateAuth, StateForm, StatePayment, StateTransaction} {
		w := New(ev, deps)
		drive(t, w, target)

		if completed := w.Close(); completed {
			t.Errorf("close from %s reported a completed registration", target)
		}
		if w.State() != StateAuth {
			t.Errorf("close from %s left state %s", target, w.State())
		}
	}

	w := New(ev, deps)
	drive(t, w, StateSuccess)
	if completed := w.Close(); !completed {
		t.Error("close after success should report completion")
	}
	if w.TeamNumber() != 0 {
		t.Error("close should clear the team number")
	}
	if w.State() != StateAuth {
		t.Errorf("state after close = %s", w.State())
	}
}

func TestCommitMirrorsFireAndForget(t *testing.T) {
	received := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received <- struct{}{}
	}))
	defer srv.Close()

	deps := testDeps(t)
	deps.Notifiers = []notifier.Notifier{notifier.NewSheetNotifier(srv.URL)}

	w := New(mustEvent(t, "code-sprint"), deps)
	drive(t, w, StateSuccess)

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("mirror webhook was never called")
	}
}

func TestCommitSurvivesMirrorFailure(t *testing.T) {
	deps := testDeps(t)
	deps.Notifiers = []notifier.Notifier{notifier.NewSheetNotifier("http://127.0.0.1:1/hook")}

	w := New(mustEvent(t, "code-sprint"), deps)
	drive(t, w, StateTransaction)

	teamNumber, err := w.SubmitTransaction("UPI123")
	if err != nil {
		t.Fatalf("commit failed because of the mirror: %v", err)
	}
	if teamNumber != 1 {
		t.Errorf("team number = %d", teamNumber)
	}
	if w.State() != StateSuccess {
		t.Errorf("state = %s", w.State())
	}
}

func TestCommitPublishesEvent(t *testing.T) {
	deps := testDeps(t)
	deps.Bus = event.NewEventBus()

	subId, ch := deps.Bus.Subscribe(event.TypeRegistrationCreated)
	defer deps.Bus.Unsubscribe(event.TypeRegistrationCreated, subId)

	w := New(mustEvent(t, "code-sprint"), deps)
	drive(t, w, StateSuccess)

	select {
	case evt := <-ch:
		reg, ok := evt.Data.(models.Registration)
		if !ok {
			t.Fatalf("unexpected event payload %T", evt.Data)
		}
		if reg.EventID != "code-sprint" || reg.TeamNumber != 1 {
			t.Errorf("unexpected registration event: %+v", reg)
		}
	case <-time.After(time.Second):
		t.Fatal("no registration.created event published")
	}
}

func TestSequentialTeamNumbers(t *testing.T) {
	deps := testDeps(t)
	ev := mustEvent(t, "code-sprint")

	for want := 1; want <= 3; want++ {
		w := New(ev, deps)
		drive(t, w, StateTransaction)
		got, err := w.SubmitTransaction(fmt.Sprintf("UPI%03d", want))
		if err != nil {
			t.Fatalf("commit %d: %v", want, err)
		}
		if got != want {
			t.Errorf("commit %d assigned team number %d", want, got)
		}
	}

	// a different event numbers independently
	w := New(mustEvent(t, "quiz-quest"), deps)
	drive(t, w, StateTransaction)
	got, err := w.SubmitTransaction("UPI999")
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if got != 1 {
		t.Errorf("first quiz-quest team got number %d", got)
	}
}

func TestManagerSessions(t *testing.T) {
	m := NewManager(testDeps(t))
	ev := mustEvent(t, "code-sprint")

	id, w := m.Open(ev)
	if id == "" {
		t.Fatal("empty session id")
	}
	got, ok := m.Get(id)
	if !ok || got != w {
		t.Fatal("Get did not return the opened wizard")
	}

	if _, ok := m.Get("unknown"); ok {
		t.Fatal("Get returned a wizard for an unknown id")
	}

	completed, ok := m.Close(id)
	if !ok {
		t.Fatal("Close did not find the session")
	}
	if completed {
		t.Error("untouched wizard reported completion")
	}
	if _, ok := m.Get(id); ok {
		t.Fatal("session survived Close")
	}

	if _, ok := m.Close(id); ok {
		t.Fatal("second Close found the session")
	}
}
