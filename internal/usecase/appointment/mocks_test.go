package appointment

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/vitalcare/clinic-api/internal/audit"
	domain "github.com/vitalcare/clinic-api/internal/domain/appointment"
	"github.com/vitalcare/clinic-api/internal/models"
)

// Compile-time check
var _ domain.Repository = (*fakeRepository)(nil)

// fakeRepository implementa domain.Repository con funciones intercambiables
// por test.
type fakeRepository struct {
	GetDoctorByIDFunc      func(ctx context.Context, id uint) (*models.Doctor, error)
	CreateAppointmentFunc  func(ctx context.Context, ap *models.Appointment) error
	GetAppointmentByIDFunc func(ctx context.Context, id uint) (*models.Appointment, error)
	UpdateAppointmentFunc  func(ctx context.Context, ap *models.Appointment) error

	CreateCallCount int32
	UpdateCallCount int32
}

func (f *fakeRepository) GetDoctorByID(ctx context.Context, id uint) (*models.Doctor, error) {
	if f.GetDoctorByIDFunc != nil {
		return f.GetDoctorByIDFunc(ctx, id)
	}
	return nil, errors.New("GetDoctorByIDFunc not set")
}

func (f *fakeRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	atomic.AddInt32(&f.CreateCallCount, 1)
	if f.CreateAppointmentFunc != nil {
		return f.CreateAppointmentFunc(ctx, ap)
	}
	return nil
}

func (f *fakeRepository) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	if f.GetAppointmentByIDFunc != nil {
		return f.GetAppointmentByIDFunc(ctx, id)
	}
	return nil, errors.New("GetAppointmentByIDFunc not set")
}

func (f *fakeRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	atomic.AddInt32(&f.UpdateCallCount, 1)
	if f.UpdateAppointmentFunc != nil {
		return f.UpdateAppointmentFunc(ctx, ap)
	}
	return nil
}

// newTestDispatcher monta un dispatcher de auditoría contra una base sqlmock;
// los eventos que lleguen fuera de las expectativas solo generan un log.
func newTestDispatcher(t *testing.T) *audit.Dispatcher {
	t.Helper()

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return audit.NewDispatcher(audit.New(gdb))
}
