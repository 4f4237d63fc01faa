package appointment

import (
	"context"

	"github.com/vitalcare/clinic-api/internal/audit"
	domain "github.com/vitalcare/clinic-api/internal/domain/appointment"
	"github.com/vitalcare/clinic-api/internal/httperr"
	"github.com/vitalcare/clinic-api/internal/models"
	"github.com/vitalcare/clinic-api/internal/validators"
)

type CreateAppointmentInput struct {
	DoctorID uint

	// Se guardan tal cual llegan; no se comprueba que existan.
	PatientID *uint
	CenterID  *uint

	// "DD-MM-YYYY HH:MM"
	AppointmentDate string

	RequestID string
}

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	date, err := validators.ParseAppointmentDate(in.AppointmentDate)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_appointment_date")
	}

	if _, err := uc.repo.GetDoctorByID(ctx, in.DoctorID); err != nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	ap := &models.Appointment{
		DoctorID:        in.DoctorID,
		PatientID:       in.PatientID,
		CenterID:        in.CenterID,
		AppointmentDate: date,
		Status:          string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorType: audit.ActorPatient,
		ActorID:   in.PatientID,
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		RequestID: in.RequestID,
	})

	return ap, nil
}
