package repository

import (
	"sync"
	"time"

	"carebook/pkg/model"

	"github.com/google/uuid"
)

// BookingRepository is an append-only store. Bookings are never updated or
// removed and are listed in the order they were created.
type BookingRepository interface {
	Create(input model.BookingInput) model.Booking
	List() []model.Booking
}

type memoryBookingRepository struct {
	mu       sync.RWMutex
	bookings []model.Booking
	now      func() time.Time
	newID    func() string
}

func NewMemoryBookingRepository() BookingRepository {
	return newMemoryBookingRepository(time.Now, uuid.NewString)
}

func newMemoryBookingRepository(now func() time.Time, newID func() string) *memoryBookingRepository {
	return &memoryBookingRepository{
		bookings: []model.Booking{},
		now:      now,
		newID:    newID,
	}
}

func (r *memoryBookingRepository) Create(input model.BookingInput) model.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	createdAt := r.now().UTC().Truncate(time.Millisecond)
	if n := len(r.bookings); n > 0 && createdAt.Before(r.bookings[n-1].CreatedAt) {
		createdAt = r.bookings[n-1].CreatedAt
	}

	booking := model.Booking{
		ID:              r.newID(),
		ProviderID:      input.ProviderID,
		PatientName:     input.PatientName,
		PatientEmail:    input.PatientEmail,
		AppointmentDate: input.AppointmentDate,
		AppointmentTime: input.AppointmentTime,
		Status:          model.Confirmed,
		CreatedAt:       createdAt,
	}
	r.bookings = append(r.bookings, booking)

	return booking
}

func (r *memoryBookingRepository) List() []model.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}
