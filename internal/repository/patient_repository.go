package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"carevault/internal/domain"
)

type PatientRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

func (r *PatientRepository) Create(ctx context.Context, patient *domain.Patient) error {
	query := `
        INSERT INTO users (
            id, email, password_hash, first_name, last_name, phone, date_of_birth,
            gender, address, emergency_contact_name, emergency_contact_phone,
            blood_group, allergies, medical_history, current_medications
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
        RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(
		ctx,
		query,
		patient.ID,
		patient.Email,
		patient.PasswordHash,
		patient.FirstName,
		patient.LastName,
		patient.Phone,
		patient.DateOfBirth,
		patient.Gender,
		patient.Address,
		patient.EmergencyContactName,
		patient.EmergencyContactPhone,
		patient.BloodGroup,
		patient.Allergies,
		patient.MedicalHistory,
		patient.CurrentMedications,
	).Scan(&patient.CreatedAt, &patient.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert patient: %w", err)
	}

	return nil
}

func (r *PatientRepository) GetByEmail(ctx context.Context, email string) (*domain.Patient, error) {
	var patient domain.Patient
	query := `SELECT * FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &patient, query, email)
	if err != nil {
		return nil, err
	}

	return &patient, nil
}
