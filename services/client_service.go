package services

import (
	"errors"

	"hotel-reservation-backend/models"

	"gorm.io/gorm"
)

// ClientService is the GORM-backed ClientStore.
type ClientService struct {
	DB *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{DB: db}
}

func (s *ClientService) Create(client *models.Client) error {
	return s.DB.Create(client).Error
}

func (s *ClientService) ByEmail(email string) (*models.Client, error) {
	var client models.Client
	if err := s.DB.Where("email = ?", email).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) ByID(hotelName, clientID string) (*models.Client, error) {
	var client models.Client
	err := s.DB.Where("hotel_name = ? AND client_id = ?", hotelName, clientID).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) ListByHotel(hotelName string) ([]models.Client, error) {
	var clients []models.Client
	err := s.DB.Where("hotel_name = ?", hotelName).Find(&clients).Error
	return clients, err
}

func (s *ClientService) CountByHotel(hotelName string) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Client{}).Where("hotel_name = ?", hotelName).Count(&count).Error
	return count, err
}
