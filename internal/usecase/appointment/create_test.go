package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/vitalcare/clinic-api/internal/domain/appointment"
	"github.com/vitalcare/clinic-api/internal/httperr"
	"github.com/vitalcare/clinic-api/internal/models"
	"github.com/vitalcare/clinic-api/internal/validators"
)

func TestCreateAppointment(t *testing.T) {
	repo := &fakeRepository{
		GetDoctorByIDFunc: func(ctx context.Context, id uint) (*models.Doctor, error) {
			return &models.Doctor{ID: id}, nil
		},
		CreateAppointmentFunc: func(ctx context.Context, ap *models.Appointment) error {
			ap.ID = 42
			return nil
		},
	}

	uc := NewCreateAppointment(repo, newTestDispatcher(t))

	patientID := uint(3)
	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		DoctorID:        7,
		PatientID:       &patientID,
		AppointmentDate: "01-01-2030 10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(42), ap.ID)
	assert.Equal(t, uint(7), ap.DoctorID)
	require.NotNil(t, ap.PatientID)
	assert.Equal(t, uint(3), *ap.PatientID)
	assert.Nil(t, ap.CenterID)
	assert.Equal(t, string(domain.StatusScheduled), ap.Status)

	// la fecha guardada vuelve al mismo instante textual
	assert.Equal(t, "01-01-2030 10:00", ap.AppointmentDate.Format(validators.AppointmentDateLayout))
}

func TestCreateAppointment_InvalidDate(t *testing.T) {
	repo := &fakeRepository{}
	uc := NewCreateAppointment(repo, newTestDispatcher(t))

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		DoctorID:        7,
		AppointmentDate: "2030/01/01 10:00",
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_appointment_date"))
	assert.Zero(t, repo.CreateCallCount)
}

func TestCreateAppointment_UnknownDoctor(t *testing.T) {
	repo := &fakeRepository{}
	uc := NewCreateAppointment(repo, newTestDispatcher(t))

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		DoctorID:        99,
		AppointmentDate: "01-01-2030 10:00",
	})

	assert.True(t, httperr.IsBusiness(err, "doctor_not_found"))
	assert.Zero(t, repo.CreateCallCount)
}
