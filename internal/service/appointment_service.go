package service

import (
	"context"
	"fmt"

	"carevault/internal/domain"
	"carevault/internal/repository"
)

type AppointmentService struct {
	appointmentRepo *repository.AppointmentRepository
}

func NewAppointmentService(appointmentRepo *repository.AppointmentRepository) *AppointmentService {
	return &AppointmentService{appointmentRepo: appointmentRepo}
}

// Book создает запись на прием
func (s *AppointmentService) Book(ctx context.Context, req domain.AppointmentRequest) (*domain.Appointment, error) {
	if req.DoctorID == "" {
		return nil, fmt.Errorf("%w: doctor_id is required", ErrMissingInput)
	}
	if req.PatientID == "" {
		return nil, fmt.Errorf("%w: patient_id is required", ErrMissingInput)
	}
	if req.AppointmentDate == "" || req.AppointmentTime == "" {
		return nil, fmt.Errorf("%w: appointment date and time are required", ErrMissingInput)
	}

	status := req.Status
	if status == "" {
		status = "pending"
	}

	appointment := &domain.Appointment{
		DoctorID:        req.DoctorID,
		PatientID:       req.PatientID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Status:          status,
		Reason:          req.Reason,
		Notes:           req.Notes,
	}

	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataFailure, err)
	}

	return appointment, nil
}
