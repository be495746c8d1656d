package domain

import "time"

// Patient представляет профиль пациента
type Patient struct {
	ID                    string    `json:"id" db:"id"`
	Email                 string    `json:"email" db:"email"`
	PasswordHash          string    `json:"-" db:"password_hash"`
	FirstName             string    `json:"first_name" db:"first_name"`
	LastName              string    `json:"last_name" db:"last_name"`
	Phone                 string    `json:"phone" db:"phone"`
	DateOfBirth           string    `json:"date_of_birth" db:"date_of_birth"`
	Gender                string    `json:"gender" db:"gender"`
	Address               string    `json:"address" db:"address"`
	EmergencyContactName  string    `json:"emergency_contact_name" db:"emergency_contact_name"`
	EmergencyContactPhone string    `json:"emergency_contact_phone" db:"emergency_contact_phone"`
	BloodGroup            *string   `json:"blood_group,omitempty" db:"blood_group"`
	Allergies             *string   `json:"allergies,omitempty" db:"allergies"`
	MedicalHistory        *string   `json:"medical_history,omitempty" db:"medical_history"`
	CurrentMedications    *string   `json:"current_medications,omitempty" db:"current_medications"`
	CreatedAt             time.Time `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time `json:"updated_at" db:"updated_at"`
}
