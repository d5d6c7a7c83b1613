package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	adminpkg "github.com/utsav-fest/utsav-api/internal/admin"
	"github.com/utsav-fest/utsav-api/internal/auth"
	"github.com/utsav-fest/utsav-api/internal/catalog"
	"github.com/utsav-fest/utsav-api/internal/models"
)

// AdminHandler serves the organizer dashboard. Access requires a signed
// session whose email is on the organizer list.
type AdminHandler struct {
	dashboard   *adminpkg.Dashboard
	authHandler *auth.AuthHandler
}

func NewAdminHandler(dashboard *adminpkg.Dashboard, authHandler *auth.AuthHandler) *AdminHandler {
	return &AdminHandler{dashboard: dashboard, authHandler: authHandler}
}

type ListRegistrationsInput struct {
	auth.AuthInput
}

type ListRegistrationsOutput struct {
	Body struct {
		Registrations []models.Registration `json:"registrations"`
		Stats         adminpkg.Stats        `json:"stats"`
	}
}

func (h *AdminHandler) HandleList(ctx context.Context, input *ListRegistrationsInput) (*ListRegistrationsOutput, error) {
	if _, err := h.authHandler.AuthorizeAdmin(ctx, input.Cookie); err != nil {
		return nil, err
	}

	registrations, stats := h.dashboard.LoadAll(catalog.All())

	out := &ListRegistrationsOutput{}
	out.Body.Registrations = registrations
	out.Body.Stats = stats
	return out, nil
}

type SetStatusInput struct {
	auth.AuthInput
	EventID        string `path:"event"`
	RegistrationID uint   `path:"id"`
	Body           struct {
		PaymentStatus string `json:"payment_status" enum:"pending,completed"`
	}
}

type SetStatusOutput struct {
	Body struct {
		PaymentStatus string `json:"payment_status"`
	}
}

func (h *AdminHandler) HandleSetStatus(ctx context.Context, input *SetStatusInput) (*SetStatusOutput, error) {
	if _, err := h.authHandler.AuthorizeAdmin(ctx, input.Cookie); err != nil {
		return nil, err
	}

	err := h.dashboard.SetPaymentStatus(input.EventID, input.RegistrationID, input.Body.PaymentStatus)
	if err != nil {
		if errors.Is(err, adminpkg.ErrNotFound) {
			return nil, huma.Error404NotFound(err.Error())
		}
		return nil, huma.Error500InternalServerError("Failed to update payment status: " + err.Error())
	}

	out := &SetStatusOutput{}
	out.Body.PaymentStatus = input.Body.PaymentStatus
	return out, nil
}
