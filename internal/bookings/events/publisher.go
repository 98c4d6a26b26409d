package events

import (
	"context"
	"sync"
	"time"

	"carebook/internal/bookings/service"
	"carebook/pkg/kafka"
	"carebook/pkg/logger"
	"carebook/pkg/model"
)

const (
	EventBookingConfirmed = "booking.confirmed"
	SchemaVersion         = "1"
)

type messagePublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
	Close() error
}

// BookingConfirmed is the payload of a booking.confirmed event.
type BookingConfirmed struct {
	BookingID       string    `json:"booking_id"`
	ProviderID      string    `json:"provider_id"`
	PatientEmail    string    `json:"patient_email"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type Publisher struct {
	producer messagePublisher
	source   string
	timeout  time.Duration
	log      *logger.Logger

	mu       sync.Mutex
	inflight sync.WaitGroup
	closed   bool
}

func NewPublisher(producer messagePublisher, source string, timeout time.Duration, log *logger.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		source:   source,
		timeout:  timeout,
		log:      log,
	}
}

// Publish sends a booking.confirmed event keyed by provider id so all events
// for one provider land on the same partition.
func (p *Publisher) Publish(ctx context.Context, booking model.Booking) error {
	msg, err := kafka.NewMessage().
		WithKey(booking.ProviderID).
		WithValue(BookingConfirmed{
			BookingID:       booking.ID,
			ProviderID:      booking.ProviderID,
			PatientEmail:    booking.PatientEmail,
			AppointmentDate: booking.AppointmentDate,
			AppointmentTime: booking.AppointmentTime,
			Status:          string(booking.Status),
			CreatedAt:       booking.CreatedAt,
		}).
		WithEventType(EventBookingConfirmed).
		WithSchemaVersion(SchemaVersion).
		WithSource(p.source).
		Build()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.producer.Publish(ctx, msg)
}

// OnSuccess adapts the publisher to a booking success callback. The event is
// sent in the background and failures are only logged.
func (p *Publisher) OnSuccess() service.SuccessFunc {
	return func(ctx context.Context, booking model.Booking) {
		p.mu.Lock()
		if p.closed {
			p.mu.Unlock()
			p.log.Warn("Publisher closed, dropping booking event",
				"event", EventBookingConfirmed,
				"id", booking.ID,
			)
			return
		}
		p.inflight.Add(1)
		p.mu.Unlock()

		ctx = context.WithoutCancel(ctx)
		go func() {
			defer p.inflight.Done()
			if err := p.Publish(ctx, booking); err != nil {
				p.log.Error("Failed to publish booking event",
					"event", EventBookingConfirmed,
					"id", booking.ID,
					"provider_id", booking.ProviderID,
					"error", err,
				)
				return
			}
			p.log.Debug("Booking event published",
				"event", EventBookingConfirmed,
				"id", booking.ID,
			)
		}()
	}
}

// Close waits for in-flight events to be sent and then closes the producer.
// Events reported after Close are dropped.
func (p *Publisher) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	p.inflight.Wait()
	return p.producer.Close()
}
