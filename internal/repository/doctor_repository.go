package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"carevault/internal/domain"
)

type DoctorRepository struct {
	db *sqlx.DB
}

func NewDoctorRepository(db *sqlx.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

func (r *DoctorRepository) Create(ctx context.Context, doctor *domain.Doctor) error {
	query := `
        INSERT INTO doctors (
            id, email, password_hash, first_name, last_name, phone, date_of_birth,
            gender, address, specialization, license_number, years_of_experience,
            hospital_affiliation, clinic_address, consultation_fee, available_days, available_hours
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
        RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(
		ctx,
		query,
		doctor.ID,
		doctor.Email,
		doctor.PasswordHash,
		doctor.FirstName,
		doctor.LastName,
		doctor.Phone,
		doctor.DateOfBirth,
		doctor.Gender,
		doctor.Address,
		doctor.Specialization,
		doctor.LicenseNumber,
		doctor.YearsOfExperience,
		doctor.HospitalAffiliation,
		doctor.ClinicAddress,
		doctor.ConsultationFee,
		doctor.AvailableDays,
		doctor.AvailableHours,
	).Scan(&doctor.CreatedAt, &doctor.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert doctor: %w", err)
	}

	return nil
}

func (r *DoctorRepository) GetByEmail(ctx context.Context, email string) (*domain.Doctor, error) {
	var doctor domain.Doctor
	query := `SELECT * FROM doctors WHERE email = $1`

	err := r.db.GetContext(ctx, &doctor, query, email)
	if err != nil {
		return nil, err
	}

	return &doctor, nil
}

// Search ищет врачей по специальности и/или локации.
// Пустой фильтр не ограничивает выборку.
func (r *DoctorRepository) Search(ctx context.Context, filter domain.DoctorSearch) ([]domain.Doctor, error) {
	var doctors []domain.Doctor
	query := `
        SELECT * FROM doctors
        WHERE ($1 = '' OR specialization ILIKE '%' || $1 || '%')
          AND ($2 = ''
               OR address ILIKE '%' || $2 || '%'
               OR clinic_address ILIKE '%' || $2 || '%')
        ORDER BY last_name, first_name`

	err := r.db.SelectContext(ctx, &doctors, query, filter.Specialty, filter.Location)
	if err != nil {
		return nil, err
	}

	return doctors, nil
}
