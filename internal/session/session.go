// Package session holds the per-visitor state shared by the directory and
// booking screens: the current search query plus access to both stores.
package session

import (
	"fmt"
	"sync"

	"carebook/internal/bookings/repository"
	bookingservice "carebook/internal/bookings/service"
	"carebook/internal/bookings/validator"
	directoryservice "carebook/internal/directory/service"
	"carebook/pkg/logger"
	"carebook/pkg/model"
)

// Listing is the directory page: heading, matching providers and a count.
type Listing struct {
	Heading    string           `json:"heading"`
	Query      string           `json:"query"`
	Providers  []model.Provider `json:"providers"`
	CountLabel string           `json:"count_label"`
}

type Session struct {
	mu        sync.RWMutex
	query     string
	directory directoryservice.DirectoryService
	bookings  repository.BookingRepository
	validator *validator.BookingValidator
	notifier  bookingservice.Notifier
	log       *logger.Logger
}

func New(directory directoryservice.DirectoryService, bookings repository.BookingRepository, log *logger.Logger) *Session {
	return &Session{
		directory: directory,
		bookings:  bookings,
		validator: validator.NewBookingValidator(log),
		notifier: bookingservice.NotifierFunc(func(n bookingservice.Notification) {
			log.Info("Notification", "title", n.Title, "description", n.Description, "destructive", n.Destructive)
		}),
		log: log,
	}
}

func (s *Session) SetSearchQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = q
}

func (s *Session) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

func (s *Session) FilteredProviders() []model.Provider {
	return s.directory.Search(s.SearchQuery())
}

func (s *Session) Provider(id string) (model.Provider, error) {
	return s.directory.GetByID(id)
}

func (s *Session) Bookings() []model.Booking {
	return s.bookings.List()
}

func (s *Session) NewBookingForm(provider model.Provider, onSuccess bookingservice.SuccessFunc) *bookingservice.BookingForm {
	return bookingservice.NewBookingForm(provider, s.bookings, s.validator, s.notifier, onSuccess, s.log)
}

func (s *Session) Listing() Listing {
	query := s.SearchQuery()
	providers := s.directory.Search(query)

	heading := "Available Doctors"
	if query != "" {
		heading = fmt.Sprintf("Search Results for \"%s\"", query)
	}

	return Listing{
		Heading:    heading,
		Query:      query,
		Providers:  providers,
		CountLabel: countLabel(len(providers)),
	}
}

func countLabel(n int) string {
	if n == 1 {
		return "1 doctor found"
	}
	return fmt.Sprintf("%d doctors found", n)
}
