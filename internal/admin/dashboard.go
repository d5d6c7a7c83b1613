package admin

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/utsav-fest/utsav-api/internal/catalog"
	"github.com/utsav-fest/utsav-api/internal/event"
	"github.com/utsav-fest/utsav-api/internal/models"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("registration not found")

// Stats are the dashboard headline counters. Total == Pending + Verified
// always holds for stats produced here.
type Stats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Verified int `json:"verified"`
}

// Dashboard aggregates registrations across all events for organizers.
// It deliberately uses one-shot loads rather than the live feed: stats
// are computed over a single snapshot and then patched locally as the
// operator toggles statuses.
type Dashboard struct {
	db  *gorm.DB
	bus *event.EventBus

	// fetchEvent is swapped out in tests to simulate per-event failures.
	fetchEvent func(eventID string) ([]models.Registration, error)
}

func NewDashboard(db *gorm.DB, bus *event.EventBus) *Dashboard {
	d := &Dashboard{db: db, bus: bus}
	d.fetchEvent = d.fetchFromStore
	return d
}

func (d *Dashboard) fetchFromStore(eventID string) ([]models.Registration, error) {
	var regs []models.Registration
	err := d.db.Preload("Members").Where("event_id = ?", eventID).Find(&regs).Error
	return regs, err
}

// LoadAll fetches each event's registrations one at a time. An event
// whose fetch fails is logged and skipped; the others still load.
func (d *Dashboard) LoadAll(events []catalog.Event) ([]models.Registration, Stats) {
	var all []models.Registration
	for _, ev := range events {
		regs, err := d.fetchEvent(ev.ID)
		if err != nil {
			log.Printf("Failed to load registrations for %s: %v", ev.ID, err)
			continue
		}
		all = append(all, regs...)
	}
	SortByRegisteredAt(all)
	return all, ComputeStats(all)
}

// SortByRegisteredAt orders newest first. Records without a timestamp
// sink to the bottom.
func SortByRegisteredAt(regs []models.Registration) {
	sort.SliceStable(regs, func(i, j int) bool {
		return regs[i].RegisteredAt.Unix() > regs[j].RegisteredAt.Unix()
	})
}

func ComputeStats(regs []models.Registration) Stats {
	s := Stats{Total: len(regs)}
	for _, r := range regs {
		if r.PaymentStatus == models.PaymentStatusCompleted {
			s.Verified++
		} else {
			s.Pending++
		}
	}
	return s
}

// AdjustStats patches counters for one local status flip without a
// reload. If the remote update behind the flip failed, the caller's
// counters stay patched anyway until the next full load; that mismatch
// is accepted.
func AdjustStats(s Stats, from, to string) Stats {
	if from == to {
		return s
	}
	if from == models.PaymentStatusCompleted {
		s.Verified--
	} else {
		s.Pending--
	}
	if to == models.PaymentStatusCompleted {
		s.Verified++
	} else {
		s.Pending++
	}
	return s
}

// SetPaymentStatus flips one registration between pending and completed.
func (d *Dashboard) SetPaymentStatus(eventID string, registrationID uint, status string) error {
	if status != models.PaymentStatusPending && status != models.PaymentStatusCompleted {
		return fmt.Errorf("invalid payment status %q", status)
	}

	res := d.db.Model(&models.Registration{}).
		Where("id = ? AND event_id = ?", registrationID, eventID).
		Update("payment_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %d for event %s", ErrNotFound, registrationID, eventID)
	}

	if d.bus != nil {
		var reg models.Registration
		if err := d.db.Preload("Members").First(&reg, registrationID).Error; err == nil {
			d.bus.Publish(event.TypeRegistrationUpdated,
				event.NewEvent(event.TypeRegistrationUpdated, reg))
		}
	}
	return nil
}
