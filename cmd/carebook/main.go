package main

import (
	"context"

	"carebook/internal/bookings/events"
	"carebook/internal/bookings/handler"
	"carebook/internal/bookings/repository"
	"carebook/internal/bookings/service"
	directoryrepo "carebook/internal/directory/repository"
	directoryservice "carebook/internal/directory/service"
	"carebook/internal/session"
	"carebook/pkg/app"
	"carebook/pkg/config"
	"carebook/pkg/kafka"
	"carebook/pkg/model"
)

const ServiceName = "carebook"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Carebook service")
	s := initSession(cfg)
	serverApp := app.NewApplication(cfg)
	onSuccess := initNotifications(cfg, serverApp)

	serverApp.SetApp(
		handler.NewHealthHandler(cfg.Log),
		handler.NewBookingHandler(s, onSuccess, cfg.Log),
	)
	serverApp.Run()
}

func initSession(cfg *config.Config) *session.Session {
	providerRepo, err := directoryrepo.NewMemoryProviderRepository(directoryrepo.SeedProviders())
	if err != nil {
		cfg.Log.Fatal("Invalid provider catalog", "error", err)
	}
	directory := directoryservice.NewDirectoryService(providerRepo, cfg.Log)
	bookingRepo := repository.NewMemoryBookingRepository()

	cfg.Log.Info("Session initialized", "providers", len(providerRepo.List()))
	return session.New(directory, bookingRepo, cfg.Log)
}

// initNotifications builds the booking success callback. Confirmed bookings
// are always logged and also published to Kafka when brokers are configured.
func initNotifications(cfg *config.Config, serverApp *app.Application) service.SuccessFunc {
	logSuccess := func(ctx context.Context, booking model.Booking) {
		cfg.Log.Info("Booking confirmed",
			"id", booking.ID,
			"provider_id", booking.ProviderID,
			"date", booking.AppointmentDate,
			"time", booking.AppointmentTime,
		)
	}

	if cfg.Kafka == nil {
		cfg.Log.Info("Kafka brokers not configured, booking events disabled")
		return logSuccess
	}

	producer, err := kafka.NewProducer(cfg.Kafka, cfg.Kafka.BookingsTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	// The publisher owns the producer so shutdown drains in-flight events first.
	publisher := events.NewPublisher(producer, ServiceName, cfg.Kafka.ProducerWriteTimeout, cfg.Log)
	serverApp.OnShutdown(publisher)
	publish := publisher.OnSuccess()
	cfg.Log.Info("Booking events enabled", "topic", cfg.Kafka.BookingsTopic, "brokers", cfg.Kafka.Brokers)

	return func(ctx context.Context, booking model.Booking) {
		logSuccess(ctx, booking)
		publish(ctx, booking)
	}
}
