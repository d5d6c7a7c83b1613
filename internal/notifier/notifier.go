package notifier

import (
	"github.com/utsav-fest/utsav-api/internal/models"
)

// Notifier mirrors a committed registration to an external audience.
// Callers treat every notifier as best-effort: errors are logged and
// never fail the registration that triggered them.
type Notifier interface {
	NotifyRegistration(registration models.Registration) error
}
