package controllers_test

import (
	"time"

	"hotel-reservation-backend/models"
	"hotel-reservation-backend/services"
)

// In-memory stores backing the handler tests.

type fakeWorkerStore struct {
	workers map[string]*models.Worker
}

func newFakeWorkerStore() *fakeWorkerStore {
	return &fakeWorkerStore{workers: map[string]*models.Worker{}}
}

func (s *fakeWorkerStore) Create(worker *models.Worker) error {
	s.workers[worker.WorkerID] = worker
	return nil
}

func (s *fakeWorkerStore) ByEmail(email string) (*models.Worker, error) {
	for _, w := range s.workers {
		if w.Email == email {
			return w, nil
		}
	}
	return nil, services.ErrWorkerNotFound
}

func (s *fakeWorkerStore) ByID(workerID string) (*models.Worker, error) {
	if w, ok := s.workers[workerID]; ok {
		return w, nil
	}
	return nil, services.ErrWorkerNotFound
}

func (s *fakeWorkerStore) Hotels() ([]string, error) {
	seen := map[string]bool{}
	var hotels []string
	for _, w := range s.workers {
		if !seen[w.HotelName] {
			seen[w.HotelName] = true
			hotels = append(hotels, w.HotelName)
		}
	}
	return hotels, nil
}

type fakeClientStore struct {
	clients map[string]*models.Client
}

func newFakeClientStore() *fakeClientStore {
	return &fakeClientStore{clients: map[string]*models.Client{}}
}

func (s *fakeClientStore) Create(client *models.Client) error {
	s.clients[client.ClientID] = client
	return nil
}

func (s *fakeClientStore) ByEmail(email string) (*models.Client, error) {
	for _, c := range s.clients {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, services.ErrClientNotFound
}

func (s *fakeClientStore) ByID(hotelName, clientID string) (*models.Client, error) {
	c, ok := s.clients[clientID]
	if !ok || c.HotelName != hotelName {
		return nil, services.ErrClientNotFound
	}
	return c, nil
}

func (s *fakeClientStore) ListByHotel(hotelName string) ([]models.Client, error) {
	out := []models.Client{}
	for _, c := range s.clients {
		if c.HotelName == hotelName {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (s *fakeClientStore) CountByHotel(hotelName string) (int64, error) {
	list, _ := s.ListByHotel(hotelName)
	return int64(len(list)), nil
}

type fakeRoomStore struct {
	rooms map[string]*models.Room
}

func newFakeRoomStore() *fakeRoomStore {
	return &fakeRoomStore{rooms: map[string]*models.Room{}}
}

func (s *fakeRoomStore) Create(room *models.Room) error {
	s.rooms[room.RoomID] = room
	return nil
}

func (s *fakeRoomStore) ByID(hotelName, roomID string) (*models.Room, error) {
	r, ok := s.rooms[roomID]
	if !ok || r.HotelName != hotelName {
		return nil, services.ErrRoomNotFound
	}
	return r, nil
}

func (s *fakeRoomStore) ListByHotel(hotelName string) ([]models.Room, error) {
	out := []models.Room{}
	for _, r := range s.rooms {
		if r.HotelName == hotelName {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *fakeRoomStore) ListAvailable(hotelName string) ([]models.Room, error) {
	out := []models.Room{}
	for _, r := range s.rooms {
		if r.HotelName == hotelName && r.IsAvailable {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *fakeRoomStore) Hold(hotelName, roomID string) (bool, error) {
	r, ok := s.rooms[roomID]
	if !ok || r.HotelName != hotelName || !r.IsAvailable {
		return false, nil
	}
	r.IsAvailable = false
	return true, nil
}

func (s *fakeRoomStore) Release(hotelName, roomID string) error {
	if r, ok := s.rooms[roomID]; ok && r.HotelName == hotelName {
		r.IsAvailable = true
	}
	return nil
}

func (s *fakeRoomStore) CountByHotel(hotelName string) (int64, error) {
	list, _ := s.ListByHotel(hotelName)
	return int64(len(list)), nil
}

func (s *fakeRoomStore) CountAvailable(hotelName string) (int64, error) {
	list, _ := s.ListAvailable(hotelName)
	return int64(len(list)), nil
}

type fakeReservationStore struct {
	reservations map[string]*models.Reservation
}

func newFakeReservationStore() *fakeReservationStore {
	return &fakeReservationStore{reservations: map[string]*models.Reservation{}}
}

func (s *fakeReservationStore) Create(reservation *models.Reservation) error {
	s.reservations[reservation.ReservationID] = reservation
	return nil
}

func (s *fakeReservationStore) ByID(hotelName, reservationID string) (*models.Reservation, error) {
	r, ok := s.reservations[reservationID]
	if !ok || r.HotelName != hotelName {
		return nil, services.ErrReservationNotFound
	}
	return r, nil
}

func (s *fakeReservationStore) ListByHotel(hotelName string) ([]models.Reservation, error) {
	out := []models.Reservation{}
	for _, r := range s.reservations {
		if r.HotelName == hotelName {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *fakeReservationStore) MarkCancelled(reservationID string, at time.Time) error {
	if r, ok := s.reservations[reservationID]; ok {
		r.Status = models.ReservationStatusCancelled
		r.CancelledAt = &at
	}
	return nil
}

func (s *fakeReservationStore) CountActive(hotelName string) (int64, error) {
	var count int64
	for _, r := range s.reservations {
		if r.HotelName == hotelName && r.Status == models.ReservationStatusActive {
			count++
		}
	}
	return count, nil
}
