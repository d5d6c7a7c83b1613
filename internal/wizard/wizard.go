package wizard

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/utsav-fest/utsav-api/internal/catalog"
	"github.com/utsav-fest/utsav-api/internal/event"
	"github.com/utsav-fest/utsav-api/internal/models"
	"github.com/utsav-fest/utsav-api/internal/notifier"
	"github.com/utsav-fest/utsav-api/internal/payments"
	"gorm.io/gorm"
)

type State string

const (
	StateAuth        State = "auth"
	StateForm        State = "form"
	StatePayment     State = "payment"
	StateTransaction State = "transaction"
	StateSuccess     State = "success"
)

// PaymentWindow is how long the payment QR stays valid before the
// confirm action is disabled. Expiry is recoverable via RestartTimer.
const PaymentWindow = 300 * time.Second

var (
	ErrWrongState   = errors.New("action not available in current state")
	ErrTimerExpired = errors.New("payment window has elapsed, restart the timer")
)

// timeNow is a variable for testability.
var timeNow = time.Now

// Identity is what the sign-in step established for this session.
type Identity struct {
	UserID uint
	Email  string
}

// Member is one row of the team form.
type Member struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Deps are the collaborators a wizard commits through.
type Deps struct {
	DB        *gorm.DB
	Payments  payments.Provider
	Notifiers []notifier.Notifier
	Bus       *event.EventBus
}

// Wizard walks one visitor through registering one team for one event:
// auth -> form -> payment -> transaction -> success. There is no way
// back; closing at any point discards everything and returns to auth.
type Wizard struct {
	mu   sync.Mutex
	deps Deps

	event    catalog.Event
	required int
	fee      string

	state         State
	identity      Identity
	college       string
	members       []Member
	deadline      time.Time
	transactionID string
	teamNumber    int
	completed     bool
}

func New(ev catalog.Event, deps Deps) *Wizard {
	return &Wizard{
		deps:     deps,
		event:    ev,
		required: ev.RequiredMembers(),
		fee:      ev.FeeValue(),
		state:    StateAuth,
	}
}

func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *Wizard) Event() catalog.Event { return w.event }

// RequiredMembers is the number of member rows the form must collect,
// derived from the event's team-size descriptor.
func (w *Wizard) RequiredMembers() int { return w.required }

// FeeAmount is the numeric amount the payment step charges.
func (w *Wizard) FeeAmount() string { return w.fee }

// SignIn attaches the authenticated identity and advances auth -> form.
func (w *Wizard) SignIn(identity Identity) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateAuth {
		return ErrWrongState
	}
	w.identity = identity
	w.state = StateForm
	return nil
}

// SubmitForm validates the college name and member rows and advances
// form -> payment, arming the payment countdown. The error names the
// first failing field so the form can point at it.
func (w *Wizard) SubmitForm(college string, members []Member) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateForm {
		return ErrWrongState
	}

	college = strings.TrimSpace(college)
	if college == "" {
		return fmt.Errorf("college name is required")
	}
	if len(members) != w.required {
		return fmt.Errorf("this event needs %d members, got %d", w.required, len(members))
	}

	clean := make([]Member, len(members))
	for i, m := range members {
		name := strings.TrimSpace(m.Name)
		phone := strings.TrimSpace(m.Phone)
		if name == "" {
			return fmt.Errorf("member %d: name is required", i+1)
		}
		if len(phone) < 10 {
			return fmt.Errorf("member %d: phone must be at least 10 digits", i+1)
		}
		clean[i] = Member{Name: name, Phone: phone}
	}

	w.college = college
	w.members = clean
	w.deadline = timeNow().Add(PaymentWindow)
	w.state = StatePayment
	return nil
}

// PaymentLink is the UPI deep link rendered as a QR code.
func (w *Wizard) PaymentLink() string {
	return w.deps.Payments.PaymentLink(w.event.Title, w.fee)
}

// Remaining is the whole seconds left on the payment countdown.
func (w *Wizard) Remaining() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StatePayment {
		return 0
	}
	left := int(w.deadline.Sub(timeNow()).Seconds())
	if left < 0 {
		return 0
	}
	return left
}

// RestartTimer re-arms the payment countdown without changing state.
func (w *Wizard) RestartTimer() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StatePayment {
		return ErrWrongState
	}
	w.deadline = timeNow().Add(PaymentWindow)
	return nil
}

// ConfirmPayment advances payment -> transaction while the countdown is
// still running.
func (w *Wizard) ConfirmPayment() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StatePayment {
		return ErrWrongState
	}
	if timeNow().After(w.deadline) {
		return ErrTimerExpired
	}
	w.state = StateTransaction
	return nil
}

// SubmitTransaction records the user-supplied payment reference and
// commits the registration. On store failure the wizard stays in the
// transaction state so the user can resubmit. The team number is
// count-of-existing-registrations + 1 for the event; two simultaneous
// commits for the same event can observe the same count.
func (w *Wizard) SubmitTransaction(transactionID string) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateTransaction {
		return 0, ErrWrongState
	}

	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return 0, fmt.Errorf("transaction ID is required")
	}

	registration := models.Registration{
		EventID:         w.event.ID,
		EventName:       w.event.Title,
		Category:        w.event.Category,
		CollegeName:     w.college,
		Email:           w.identity.Email,
		UserID:          w.identity.UserID,
		RegistrationFee: w.event.RegistrationFee,
		TransactionID:   transactionID,
		PaymentStatus:   models.PaymentStatusPending,
		RegisteredAt:    timeNow(),
	}
	for i, m := range w.members {
		registration.Members = append(registration.Members, models.Member{
			Position: i + 1,
			Name:     m.Name,
			Phone:    m.Phone,
		})
	}

	err := w.deps.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Registration{}).Where("event_id = ?", w.event.ID).Count(&count).Error; err != nil {
			return err
		}
		registration.TeamNumber = int(count) + 1
		return tx.Create(&registration).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to save registration: %w", err)
	}

	w.transactionID = transactionID
	w.teamNumber = registration.TeamNumber
	w.state = StateSuccess
	w.completed = true

	if w.deps.Bus != nil {
		w.deps.Bus.Publish(event.TypeRegistrationCreated,
			event.NewEvent(event.TypeRegistrationCreated, registration))
	}

	// Mirror copies are fire-and-forget: the registration is already
	// committed and a webhook outage must not surface to the user.
	go w.notify(registration)

	return registration.TeamNumber, nil
}

func (w *Wizard) notify(registration models.Registration) {
	for _, n := range w.deps.Notifiers {
		if err := n.NotifyRegistration(registration); err != nil {
			log.Printf("registration mirror failed: %v", err)
		}
	}
}

// TeamNumber is the number assigned at commit, 0 before success.
func (w *Wizard) TeamNumber() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.teamNumber
}

// Close abandons or finishes the wizard: every field is discarded and
// the state returns to auth. Reports whether a registration was
// committed so the caller knows to refresh its lists.
func (w *Wizard) Close() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	completed := w.completed
	w.state = StateAuth
	w.identity = Identity{}
	w.college = ""
	w.members = nil
	w.deadline = time.Time{}
	w.transactionID = ""
	w.teamNumber = 0
	w.completed = false
	return completed
}
