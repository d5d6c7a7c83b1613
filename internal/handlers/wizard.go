package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/utsav-fest/utsav-api/internal/auth"
	"github.com/utsav-fest/utsav-api/internal/catalog"
	"github.com/utsav-fest/utsav-api/internal/wizard"
)

// WizardHandler exposes the registration wizard over the API. Every step
// addresses the session by the id returned from start; calling a step
// out of order is rejected without moving the wizard.
type WizardHandler struct {
	manager     *wizard.Manager
	authHandler *auth.AuthHandler
}

func NewWizardHandler(manager *wizard.Manager, authHandler *auth.AuthHandler) *WizardHandler {
	return &WizardHandler{manager: manager, authHandler: authHandler}
}

func (h *WizardHandler) get(wizardID string) (*wizard.Wizard, error) {
	w, ok := h.manager.Get(wizardID)
	if !ok {
		return nil, huma.Error404NotFound("Unknown wizard session")
	}
	return w, nil
}

func wizardError(err error) error {
	switch {
	case errors.Is(err, wizard.ErrWrongState):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, wizard.ErrTimerExpired):
		return huma.Error409Conflict(err.Error())
	default:
		return huma.Error400BadRequest(err.Error())
	}
}

type StartWizardInput struct {
	EventID string `path:"id"`
}

type StartWizardOutput struct {
	Body struct {
		WizardID string       `json:"wizard_id"`
		State    wizard.State `json:"state"`
	}
}

func (h *WizardHandler) HandleStart(ctx context.Context, input *StartWizardInput) (*StartWizardOutput, error) {
	ev, ok := catalog.ByID(input.EventID)
	if !ok {
		return nil, huma.Error404NotFound("Unknown event: " + input.EventID)
	}

	id, w := h.manager.Open(ev)

	out := &StartWizardOutput{}
	out.Body.WizardID = id
	out.Body.State = w.State()
	return out, nil
}

type SignInInput struct {
	auth.AuthInput
	WizardID string `path:"wid"`
}

type SignInOutput struct {
	Body struct {
		State           wizard.State `json:"state"`
		Email           string       `json:"email"`
		RequiredMembers int          `json:"required_members"`
		FeeAmount       string       `json:"fee_amount"`
	}
}

func (h *WizardHandler) HandleSignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error) {
	w, err := h.get(input.WizardID)
	if err != nil {
		return nil, err
	}

	user, err := h.authHandler.AuthorizeUser(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	if err := w.SignIn(wizard.Identity{UserID: user.ID, Email: user.Email}); err != nil {
		return nil, wizardError(err)
	}

	out := &SignInOutput{}
	out.Body.State = w.State()
	out.Body.Email = user.Email
	out.Body.RequiredMembers = w.RequiredMembers()
	out.Body.FeeAmount = w.FeeAmount()
	return out, nil
}

type FormInput struct {
	WizardID string `path:"wid"`
	Body     struct {
		CollegeName string          `json:"college_name" doc:"Participating college"`
		Members     []wizard.Member `json:"members" doc:"One row per team member"`
	}
}

type FormOutput struct {
	Body struct {
		State       wizard.State `json:"state"`
		PaymentLink string       `json:"payment_link"`
		Remaining   int          `json:"remaining_seconds"`
	}
}

func (h *WizardHandler) HandleForm(ctx context.Context, input *FormInput) (*FormOutput, error) {
	w, err := h.get(input.WizardID)
	if err != nil {
		return nil, err
	}

	if err := w.SubmitForm(input.Body.CollegeName, input.Body.Members); err != nil {
		return nil, wizardError(err)
	}

	out := &FormOutput{}
	out.Body.State = w.State()
	out.Body.PaymentLink = w.PaymentLink()
	out.Body.Remaining = w.Remaining()
	return out, nil
}

type PaymentActionInput struct {
	WizardID string `path:"wid"`
}

type PaymentActionOutput struct {
	Body struct {
		State     wizard.State `json:"state"`
		Remaining int          `json:"remaining_seconds"`
	}
}

func (h *WizardHandler) HandlePaymentDone(ctx context.Context, input *PaymentActionInput) (*PaymentActionOutput, error) {
	w, err := h.get(input.WizardID)
	if err != nil {
		return nil, err
	}

	if err := w.ConfirmPayment(); err != nil {
		return nil, wizardError(err)
	}

	out := &PaymentActionOutput{}
	out.Body.State = w.State()
	return out, nil
}

func (h *WizardHandler) HandleRestartTimer(ctx context.Context, input *PaymentActionInput) (*PaymentActionOutput, error) {
	w, err := h.get(input.WizardID)
	if err != nil {
		return nil, err
	}

	if err := w.RestartTimer(); err != nil {
		return nil, wizardError(err)
	}

	out := &PaymentActionOutput{}
	out.Body.State = w.State()
	out.Body.Remaining = w.Remaining()
	return out, nil
}

type TransactionInput struct {
	WizardID string `path:"wid"`
	Body     struct {
		TransactionID string `json:"transaction_id" doc:"UPI transaction reference"`
	}
}

type TransactionOutput struct {
	Body struct {
		State      wizard.State `json:"state"`
		TeamNumber int          `json:"team_number"`
	}
}

func (h *WizardHandler) HandleTransaction(ctx context.Context, input *TransactionInput) (*TransactionOutput, error) {
	w, err := h.get(input.WizardID)
	if err != nil {
		return nil, err
	}

	teamNumber, err := w.SubmitTransaction(input.Body.TransactionID)
	if err != nil {
		return nil, wizardError(err)
	}

	out := &TransactionOutput{}
	out.Body.State = w.State()
	out.Body.TeamNumber = teamNumber
	return out, nil
}

type CloseWizardInput struct {
	WizardID string `path:"wid"`
}

type CloseWizardOutput struct {
	// Closing also signs the session out so the next registration can use
	// a different account.
	SetCookie string `header:"Set-Cookie"`
	Body      struct {
		NewRegistration bool `json:"new_registration"`
	}
}

func (h *WizardHandler) HandleClose(ctx context.Context, input *CloseWizardInput) (*CloseWizardOutput, error) {
	completed, ok := h.manager.Close(input.WizardID)
	if !ok {
		return nil, huma.Error404NotFound("Unknown wizard session")
	}

	out := &CloseWizardOutput{}
	out.SetCookie = "auth_token=; Path=/; Expires=Thu, 01 Jan 1970 00:00:00 GMT; HttpOnly"
	out.Body.NewRegistration = completed
	return out, nil
}

type WizardStatusInput struct {
	WizardID string `path:"wid"`
}

type WizardStatusOutput struct {
	Body struct {
		State           wizard.State `json:"state"`
		EventID         string       `json:"event_id"`
		RequiredMembers int          `json:"required_members"`
		FeeAmount       string       `json:"fee_amount"`
		PaymentLink     string       `json:"payment_link"`
		Remaining       int          `json:"remaining_seconds"`
		TeamNumber      int          `json:"team_number"`
	}
}

func (h *WizardHandler) HandleStatus(ctx context.Context, input *WizardStatusInput) (*WizardStatusOutput, error) {
	w, err := h.get(input.WizardID)
	if err != nil {
		return nil, err
	}

	out := &WizardStatusOutput{}
	out.Body.State = w.State()
	out.Body.EventID = w.Event().ID
	out.Body.RequiredMembers = w.RequiredMembers()
	out.Body.FeeAmount = w.FeeAmount()
	out.Body.PaymentLink = w.PaymentLink()
	out.Body.Remaining = w.Remaining()
	out.Body.TeamNumber = w.TeamNumber()
	return out, nil
}
