package services

import (
	"errors"
	"time"

	"hotel-reservation-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoomService is the GORM-backed RoomStore.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(room *models.Room) error {
	return s.DB.Create(room).Error
}

func (s *RoomService) ByID(hotelName, roomID string) (*models.Room, error) {
	var room models.Room
	err := s.DB.Where("hotel_name = ? AND room_id = ?", hotelName, roomID).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) ListByHotel(hotelName string) ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Where("hotel_name = ?", hotelName).Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) ListAvailable(hotelName string) ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Where("hotel_name = ? AND is_available = ?", hotelName, true).Find(&rooms).Error
	return rooms, err
}

// Hold claims the room with a single conditional update so two concurrent
// reservations cannot both book it.
func (s *RoomService) Hold(hotelName, roomID string) (bool, error) {
	result := s.DB.Model(&models.Room{}).
		Where("hotel_name = ? AND room_id = ? AND is_available = ?", hotelName, roomID, true).
		Update("is_available", false)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (s *RoomService) Release(hotelName, roomID string) error {
	return s.DB.Model(&models.Room{}).
		Where("hotel_name = ? AND room_id = ?", hotelName, roomID).
		Update("is_available", true).Error
}

func (s *RoomService) CountByHotel(hotelName string) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Room{}).Where("hotel_name = ?", hotelName).Count(&count).Error
	return count, err
}

func (s *RoomService) CountAvailable(hotelName string) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Room{}).
		Where("hotel_name = ? AND is_available = ?", hotelName, true).Count(&count).Error
	return count, err
}

// DefaultRooms is the fixed bootstrap inventory every new hotel starts with.
func DefaultRooms(hotelName string) []models.Room {
	now := time.Now()
	return []models.Room{
		{
			RoomID:        uuid.New().String(),
			RoomNumber:    "101",
			RoomType:      "Simple",
			PricePerNight: 50.0,
			Capacity:      2,
			Description:   "Single room with a double bed",
			HotelName:     hotelName,
			IsAvailable:   true,
			CreatedAt:     now,
		},
		{
			RoomID:        uuid.New().String(),
			RoomNumber:    "201",
			RoomType:      "Doble",
			PricePerNight: 80.0,
			Capacity:      4,
			Description:   "Double room with two beds",
			HotelName:     hotelName,
			IsAvailable:   true,
			CreatedAt:     now,
		},
		{
			RoomID:        uuid.New().String(),
			RoomNumber:    "301",
			RoomType:      "Suite",
			PricePerNight: 150.0,
			Capacity:      6,
			Description:   "Luxury suite with jacuzzi",
			HotelName:     hotelName,
			IsAvailable:   true,
			CreatedAt:     now,
		},
	}
}

// SeedDefaultRooms creates the bootstrap inventory for a freshly registered
// hotel.
func SeedDefaultRooms(store RoomStore, hotelName string) error {
	for _, room := range DefaultRooms(hotelName) {
		room := room
		if err := store.Create(&room); err != nil {
			return err
		}
	}
	return nil
}
