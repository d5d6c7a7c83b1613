package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/utsav-fest/utsav-api/internal/catalog"
)

type EventsHandler struct{}

func NewEventsHandler() *EventsHandler {
	return &EventsHandler{}
}

type ListEventsInput struct {
	Category string `query:"category" required:"false" doc:"Filter by category (it, management, cultural, sports)"`
}

type ListEventsOutput struct {
	Body []catalog.Event
}

func (h *EventsHandler) HandleList(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error) {
	if input.Category != "" {
		return &ListEventsOutput{Body: catalog.ByCategory(input.Category)}, nil
	}
	return &ListEventsOutput{Body: catalog.All()}, nil
}

type GetEventInput struct {
	ID string `path:"id"`
}

type GetEventOutput struct {
	Body struct {
		catalog.Event
		RequiredMembers int    `json:"required_members"`
		FeeAmount       string `json:"fee_amount"`
	}
}

func (h *EventsHandler) HandleGet(ctx context.Context, input *GetEventInput) (*GetEventOutput, error) {
	ev, ok := catalog.ByID(input.ID)
	if !ok {
		return nil, huma.Error404NotFound("Unknown event: " + input.ID)
	}

	out := &GetEventOutput{}
	out.Body.Event = ev
	out.Body.RequiredMembers = ev.RequiredMembers()
	out.Body.FeeAmount = ev.FeeValue()
	return out, nil
}
