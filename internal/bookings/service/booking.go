package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	bookingserrors "carebook/internal/bookings/errors"
	"carebook/internal/bookings/repository"
	"carebook/internal/bookings/validator"
	apperrors "carebook/pkg/errors"
	"carebook/pkg/logger"
	"carebook/pkg/model"
	"carebook/pkg/sanitizer"
)

// Notification is a transient toast shown to the visitor.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Destructive bool   `json:"destructive,omitempty"`
}

type Notifier interface {
	Notify(n Notification)
}

type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

// SuccessFunc is told about a confirmed booking. Its outcome is ignored.
type SuccessFunc func(ctx context.Context, booking model.Booking)

type Confirmation struct {
	BookingID       string  `json:"booking_id"`
	ProviderName    string  `json:"provider_name"`
	AppointmentDate string  `json:"appointment_date"`
	AppointmentTime string  `json:"appointment_time"`
	PatientEmail    string  `json:"patient_email"`
	ConsultationFee float64 `json:"consultation_fee"`
}

type Summary struct {
	ProviderName    string  `json:"provider_name"`
	Specialty       string  `json:"specialty"`
	ConsultationFee float64 `json:"consultation_fee"`
}

// BookingForm is the submission flow for a single provider. It is not
// reused across providers; a confirmed form rejects further submits.
type BookingForm struct {
	mu        sync.Mutex
	provider  model.Provider
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	notifier  Notifier
	onSuccess SuccessFunc
	log       *logger.Logger

	values    model.BookingRequest
	errors    validator.FieldErrors
	submitted bool
	booking   model.Booking
	last      *Notification
}

func NewBookingForm(
	provider model.Provider,
	repo repository.BookingRepository,
	validator *validator.BookingValidator,
	notifier Notifier,
	onSuccess SuccessFunc,
	log *logger.Logger,
) *BookingForm {
	return &BookingForm{
		provider:  provider,
		repo:      repo,
		validator: validator,
		notifier:  notifier,
		onSuccess: onSuccess,
		log:       log,
	}
}

// Set updates one field and drops its error without re-validating.
func (f *BookingForm) Set(field validator.Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case validator.FieldPatientName:
		f.values.PatientName = value
	case validator.FieldPatientEmail:
		f.values.PatientEmail = value
	case validator.FieldAppointmentDate:
		f.values.AppointmentDate = value
	case validator.FieldAppointmentTime:
		f.values.AppointmentTime = value
	default:
		return fmt.Errorf("%w: %s", bookingserrors.ErrUnknownField, field)
	}

	f.errors.Clear(field)
	return nil
}

// Fill sets every field from a request.
func (f *BookingForm) Fill(req model.BookingRequest) {
	_ = f.Set(validator.FieldPatientName, req.PatientName)
	_ = f.Set(validator.FieldPatientEmail, req.PatientEmail)
	_ = f.Set(validator.FieldAppointmentDate, req.AppointmentDate)
	_ = f.Set(validator.FieldAppointmentTime, req.AppointmentTime)
}

func (f *BookingForm) Values() model.BookingRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

func (f *BookingForm) Errors() validator.FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors
}

func (f *BookingForm) Submitted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitted
}

// LastNotification returns the most recent toast emitted by Submit.
func (f *BookingForm) LastNotification() (Notification, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.last == nil {
		return Notification{}, false
	}
	return *f.last, true
}

func (f *BookingForm) Submit(ctx context.Context) (model.Booking, error) {
	f.mu.Lock()

	if f.submitted {
		f.mu.Unlock()
		return model.Booking{}, apperrors.Conflict("Booking already submitted", bookingserrors.ErrAlreadySubmitted)
	}

	if !f.provider.AcceptsBookings() {
		f.mu.Unlock()
		return model.Booking{}, apperrors.Conflict(fmt.Sprintf("%s is not accepting bookings", f.provider.Name), bookingserrors.ErrProviderUnavailable)
	}

	values := f.values
	if err := f.validator.Validate(&values); err != nil {
		var fieldErrs validator.FieldErrors
		if !errors.As(err, &fieldErrs) {
			f.mu.Unlock()
			return model.Booking{}, apperrors.Internal("Failed to validate booking", err)
		}
		f.errors = fieldErrs
		f.mu.Unlock()

		f.log.Debug("Booking form rejected",
			"provider_id", f.provider.ID,
			"errors", fieldErrs.Error(),
		)
		return model.Booking{}, apperrors.Validation("Please correct the highlighted fields", fieldErrs.Details(), fieldErrs)
	}
	f.errors = validator.FieldErrors{}
	clean := sanitizer.SanitizeBookingRequest(values)

	booking, err := f.create(model.BookingInput{
		ProviderID:      f.provider.ID,
		PatientName:     clean.PatientName,
		PatientEmail:    clean.PatientEmail,
		AppointmentDate: clean.AppointmentDate,
		AppointmentTime: clean.AppointmentTime,
		Status:          model.Confirmed,
	})
	if err != nil {
		n := Notification{
			Title:       "Booking Failed",
			Description: "Something went wrong. Please try again.",
			Destructive: true,
		}
		f.last = &n
		f.mu.Unlock()

		f.log.Error("Failed to create booking",
			"provider_id", f.provider.ID,
			"error", err,
		)
		f.notify(n)
		return model.Booking{}, apperrors.UnexpectedFailure("Something went wrong. Please try again.", err)
	}

	f.submitted = true
	f.booking = booking
	n := Notification{
		Title:       "Appointment Booked Successfully!",
		Description: fmt.Sprintf("Your appointment with %s has been confirmed.", f.provider.Name),
	}
	f.last = &n
	f.mu.Unlock()

	f.log.Info("Booking created successfully",
		"id", booking.ID,
		"provider_id", booking.ProviderID,
		"date", booking.AppointmentDate,
		"time", booking.AppointmentTime,
	)
	if !f.provider.HasSlot(booking.AppointmentTime) {
		f.log.Warn("Booking time is not one of the provider's offered slots",
			"id", booking.ID,
			"provider_id", booking.ProviderID,
			"time", booking.AppointmentTime,
		)
	}

	f.notify(n)
	f.succeeded(ctx, booking)
	return booking, nil
}

// create shields the flow from store panics.
func (f *BookingForm) create(input model.BookingInput) (booking model.Booking, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", bookingserrors.ErrStoreFailure, r)
		}
	}()
	return f.repo.Create(input), nil
}

func (f *BookingForm) notify(n Notification) {
	if f.notifier != nil {
		f.notifier.Notify(n)
	}
}

func (f *BookingForm) succeeded(ctx context.Context, booking model.Booking) {
	if f.onSuccess == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			f.log.Error("Booking success callback panicked",
				"id", booking.ID,
				"panic", r,
			)
		}
	}()
	f.onSuccess(ctx, booking)
}

// Confirmation is available once the form has been submitted.
func (f *BookingForm) Confirmation() (Confirmation, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.submitted {
		return Confirmation{}, false
	}
	return Confirmation{
		BookingID:       f.booking.ID,
		ProviderName:    f.provider.Name,
		AppointmentDate: f.booking.AppointmentDate,
		AppointmentTime: f.booking.AppointmentTime,
		PatientEmail:    f.booking.PatientEmail,
		ConsultationFee: f.provider.ConsultationFee,
	}, true
}

func (f *BookingForm) Summary() Summary {
	return Summary{
		ProviderName:    f.provider.Name,
		Specialty:       f.provider.Specialty,
		ConsultationFee: f.provider.ConsultationFee,
	}
}
