package service

import (
	"context"
	"fmt"

	"carevault/internal/domain"
	"carevault/internal/repository"
)

// DoctorService отвечает за поиск врачей. Результат поиска возвращается
// прямо в ответе: процесс не хранит "последнюю выдачу", конкурентные
// поиски разных клиентов независимы.
type DoctorService struct {
	doctorRepo *repository.DoctorRepository
}

func NewDoctorService(doctorRepo *repository.DoctorRepository) *DoctorService {
	return &DoctorService{doctorRepo: doctorRepo}
}

func (s *DoctorService) Search(ctx context.Context, filter domain.DoctorSearch) ([]domain.Doctor, error) {
	doctors, err := s.doctorRepo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataFailure, err)
	}

	if doctors == nil {
		doctors = []domain.Doctor{}
	}

	return doctors, nil
}
