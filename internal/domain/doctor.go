package domain

import "time"

// Doctor представляет профиль врача
type Doctor struct {
	ID                  string    `json:"id" db:"id"`
	Email               string    `json:"email" db:"email"`
	PasswordHash        string    `json:"-" db:"password_hash"`
	FirstName           string    `json:"first_name" db:"first_name"`
	LastName            string    `json:"last_name" db:"last_name"`
	Phone               string    `json:"phone" db:"phone"`
	DateOfBirth         string    `json:"date_of_birth" db:"date_of_birth"`
	Gender              string    `json:"gender" db:"gender"`
	Address             string    `json:"address" db:"address"`
	Specialization      string    `json:"specialization" db:"specialization"`
	LicenseNumber       string    `json:"license_number" db:"license_number"`
	YearsOfExperience   int       `json:"years_of_experience" db:"years_of_experience"`
	HospitalAffiliation *string   `json:"hospital_affiliation,omitempty" db:"hospital_affiliation"`
	ClinicAddress       *string   `json:"clinic_address,omitempty" db:"clinic_address"`
	ConsultationFee     *float64  `json:"consultation_fee,omitempty" db:"consultation_fee"`
	AvailableDays       *string   `json:"available_days,omitempty" db:"available_days"`
	AvailableHours      *string   `json:"available_hours,omitempty" db:"available_hours"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}

// DoctorSearch представляет фильтры поиска врачей.
// Пустое поле означает отсутствие фильтра.
type DoctorSearch struct {
	Specialty string `json:"specialty"`
	Location  string `json:"location"`
}
