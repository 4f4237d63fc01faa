package validators

import (
	"time"

	"github.com/vitalcare/clinic-api/internal/timezone"
)

// AppointmentDateLayout es el formato "DD-MM-YYYY HH:MM" que manda el cliente.
const AppointmentDateLayout = "02-01-2006 15:04"

func ParseAppointmentDate(s string) (time.Time, error) {
	return time.ParseInLocation(AppointmentDateLayout, s, timezone.Default())
}
