package appointment

import (
	"time"

	"github.com/vitalcare/clinic-api/internal/models"
)

// Cancel deja la cita en estado cancelado. Es idempotente: cancelar una cita
// ya cancelada no cambia nada (mismo estado terminal, mismo cancelled_at).
func Cancel(ap *models.Appointment, now time.Time) {
	if ap.Status == string(StatusCancelled) {
		return
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
}
