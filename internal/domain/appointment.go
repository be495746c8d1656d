package domain

import "time"

// Appointment представляет запись на прием к врачу
type Appointment struct {
	ID              int64     `json:"id" db:"id"`
	DoctorID        string    `json:"doctor_id" db:"doctor_id"`
	PatientID       string    `json:"patient_id" db:"patient_id"`
	AppointmentDate string    `json:"appointment_date" db:"appointment_date"`
	AppointmentTime string    `json:"appointment_time" db:"appointment_time"`
	Status          string    `json:"status" db:"status"`
	Reason          string    `json:"reason" db:"reason"`
	Notes           string    `json:"notes" db:"notes"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// AppointmentRequest представляет тело запроса на бронирование
type AppointmentRequest struct {
	DoctorID        string `json:"doctor_id"`
	PatientID       string `json:"patient_id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Status          string `json:"status"`
	Reason          string `json:"reason"`
	Notes           string `json:"notes"`
}
