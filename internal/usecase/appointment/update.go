package appointment

import (
	"context"

	"github.com/vitalcare/clinic-api/internal/audit"
	domain "github.com/vitalcare/clinic-api/internal/domain/appointment"
	"github.com/vitalcare/clinic-api/internal/httperr"
	"github.com/vitalcare/clinic-api/internal/models"
	"github.com/vitalcare/clinic-api/internal/validators"
)

type UpdateAppointmentInput struct {
	AppointmentID uint

	// Parche parcial: los campos nil se dejan como están.
	AppointmentDate *string
	Status          *string

	RequestID string
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if in.AppointmentDate != nil {
		date, err := validators.ParseAppointmentDate(*in.AppointmentDate)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_appointment_date")
		}
		ap.AppointmentDate = date
	}

	// Cualquier cadena vale como estado; no hay tabla de transiciones.
	if in.Status != nil {
		ap.Status = *in.Status
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorType: audit.ActorPatient,
		ActorID:   ap.PatientID,
		Action:    "appointment_updated",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		RequestID: in.RequestID,
	})

	return ap, nil
}
