package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/utsav-fest/utsav-api/internal/catalog"
	"github.com/utsav-fest/utsav-api/internal/event"
	"github.com/utsav-fest/utsav-api/internal/models"
	"gorm.io/gorm"
)

// TeamsHandler serves the public registered-teams view: a one-shot
// sorted listing plus a live SSE feed fed by the event bus.
type TeamsHandler struct {
	db  *gorm.DB
	bus *event.EventBus
}

func NewTeamsHandler(db *gorm.DB, bus *event.EventBus) *TeamsHandler {
	return &TeamsHandler{db: db, bus: bus}
}

type ListTeamsInput struct {
	EventID string `path:"id"`
}

type ListTeamsOutput struct {
	Body struct {
		EventID string                `json:"event_id"`
		Teams   []models.Registration `json:"teams"`
	}
}

func (h *TeamsHandler) HandleList(ctx context.Context, input *ListTeamsInput) (*ListTeamsOutput, error) {
	if _, ok := catalog.ByID(input.EventID); !ok {
		return nil, huma.Error404NotFound("Unknown event: " + input.EventID)
	}

	var teams []models.Registration
	err := h.db.Preload("Members").
		Where("event_id = ?", input.EventID).
		Order("team_number asc").
		Find(&teams).Error
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load teams")
	}

	out := &ListTeamsOutput{}
	out.Body.EventID = input.EventID
	out.Body.Teams = teams
	return out, nil
}

// HandleLive streams registration changes for one event as server-sent
// events. The subscription is torn down when the client disconnects.
func (h *TeamsHandler) HandleLive(w http.ResponseWriter, r *http.Request, eventID string) {
	if _, ok := catalog.ByID(eventID); !ok {
		http.Error(w, "Unknown event", http.StatusNotFound)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	createdId, created := h.bus.Subscribe(event.TypeRegistrationCreated)
	defer h.bus.Unsubscribe(event.TypeRegistrationCreated, createdId)
	updatedId, updated := h.bus.Subscribe(event.TypeRegistrationUpdated)
	defer h.bus.Unsubscribe(event.TypeRegistrationUpdated, updatedId)

	// snapshot first, then deltas
	var teams []models.Registration
	if err := h.db.Preload("Members").Where("event_id = ?", eventID).Order("team_number asc").Find(&teams).Error; err == nil {
		for _, team := range teams {
			writeSSE(w, "snapshot", team)
		}
		flusher.Flush()
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case evt, ok := <-created:
			if !ok {
				return
			}
			if reg, ok := evt.Data.(models.Registration); ok && reg.EventID == eventID {
				writeSSE(w, "created", reg)
				flusher.Flush()
			}
		case evt, ok := <-updated:
			if !ok {
				return
			}
			if reg, ok := evt.Data.(models.Registration); ok && reg.EventID == eventID {
				writeSSE(w, "updated", reg)
				flusher.Flush()
			}
		}
	}
}

func writeSSE(w http.ResponseWriter, name string, reg models.Registration) {
	data, err := json.Marshal(reg)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, data)
}
