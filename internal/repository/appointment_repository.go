package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"carevault/internal/domain"
)

type AppointmentRepository struct {
	db *sqlx.DB
}

func NewAppointmentRepository(db *sqlx.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	query := `
        INSERT INTO appointments (
            doctor_id, patient_id, appointment_date, appointment_time, status, reason, notes
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	err := r.db.QueryRowxContext(
		ctx,
		query,
		appointment.DoctorID,
		appointment.PatientID,
		appointment.AppointmentDate,
		appointment.AppointmentTime,
		appointment.Status,
		appointment.Reason,
		appointment.Notes,
	).Scan(&appointment.ID, &appointment.CreatedAt, &appointment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert appointment: %w", err)
	}

	return nil
}
