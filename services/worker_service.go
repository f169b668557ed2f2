package services

import (
	"errors"

	"hotel-reservation-backend/models"

	"gorm.io/gorm"
)

// WorkerService is the GORM-backed WorkerStore.
type WorkerService struct {
	DB *gorm.DB
}

func NewWorkerService(db *gorm.DB) *WorkerService {
	return &WorkerService{DB: db}
}

func (s *WorkerService) Create(worker *models.Worker) error {
	return s.DB.Create(worker).Error
}

func (s *WorkerService) ByEmail(email string) (*models.Worker, error) {
	var worker models.Worker
	if err := s.DB.Where("email = ?", email).First(&worker).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}
	return &worker, nil
}

func (s *WorkerService) ByID(workerID string) (*models.Worker, error) {
	var worker models.Worker
	if err := s.DB.Where("worker_id = ?", workerID).First(&worker).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}
	return &worker, nil
}

func (s *WorkerService) Hotels() ([]string, error) {
	var hotels []string
	err := s.DB.Model(&models.Worker{}).Distinct("hotel_name").Pluck("hotel_name", &hotels).Error
	return hotels, err
}
