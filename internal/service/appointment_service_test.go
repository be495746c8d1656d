package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carevault/internal/domain"
	"carevault/internal/repository"
	"carevault/internal/service"
)

func newAppointmentService(t *testing.T) (*service.AppointmentService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := service.NewAppointmentService(
		repository.NewAppointmentRepository(sqlx.NewDb(db, "sqlmock")),
	)
	return svc, mock
}

func TestAppointmentService_Book(t *testing.T) {
	svc, mock := newAppointmentService(t)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO appointments`).
		WithArgs("d1", "u1", "2025-02-01", "10:30", "confirmed", "checkup", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(1), now, now))

	appointment, err := svc.Book(context.Background(), domain.AppointmentRequest{
		DoctorID:        "d1",
		PatientID:       "u1",
		AppointmentDate: "2025-02-01",
		AppointmentTime: "10:30",
		Status:          "confirmed",
		Reason:          "checkup",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), appointment.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentService_Book_DefaultsStatus(t *testing.T) {
	svc, mock := newAppointmentService(t)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO appointments`).
		WithArgs("d1", "u1", "2025-02-01", "10:30", "pending", "", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(1), now, now))

	appointment, err := svc.Book(context.Background(), domain.AppointmentRequest{
		DoctorID:        "d1",
		PatientID:       "u1",
		AppointmentDate: "2025-02-01",
		AppointmentTime: "10:30",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", appointment.Status)
}

func TestAppointmentService_Book_MissingInput(t *testing.T) {
	svc, _ := newAppointmentService(t)

	_, err := svc.Book(context.Background(), domain.AppointmentRequest{
		DoctorID: "d1",
	})
	require.ErrorIs(t, err, service.ErrMissingInput)
}
