package services

import (
	"errors"
	"time"

	"hotel-reservation-backend/models"

	"gorm.io/gorm"
)

// ReservationService is the GORM-backed ReservationStore.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

func (s *ReservationService) Create(reservation *models.Reservation) error {
	return s.DB.Create(reservation).Error
}

func (s *ReservationService) ByID(hotelName, reservationID string) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.DB.Where("hotel_name = ? AND reservation_id = ?", hotelName, reservationID).
		First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

func (s *ReservationService) ListByHotel(hotelName string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.DB.Where("hotel_name = ?", hotelName).Find(&reservations).Error
	return reservations, err
}

func (s *ReservationService) MarkCancelled(reservationID string, at time.Time) error {
	return s.DB.Model(&models.Reservation{}).
		Where("reservation_id = ?", reservationID).
		Updates(map[string]interface{}{
			"status":       models.ReservationStatusCancelled,
			"cancelled_at": at,
		}).Error
}

func (s *ReservationService) CountActive(hotelName string) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Reservation{}).
		Where("hotel_name = ? AND status = ?", hotelName, models.ReservationStatusActive).
		Count(&count).Error
	return count, err
}
