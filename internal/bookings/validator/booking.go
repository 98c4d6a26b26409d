package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	apperrors "carebook/pkg/errors"
	"carebook/pkg/logger"
	"carebook/pkg/model"
	"carebook/pkg/sanitizer"

	"github.com/go-playground/validator/v10"
)

// nonBlank is one or more runes outside sanitizer.IsBlank.
const nonBlank = `[^\s\v\p{Z}\x{FEFF}]+`

var (
	// Loose on purpose: anything shaped like a@b.c passes.
	looseEmailRegex = regexp.MustCompile(nonBlank + `@` + nonBlank + `\.` + nonBlank)
)

type Field string

const (
	FieldPatientName     Field = "patient_name"
	FieldPatientEmail    Field = "patient_email"
	FieldAppointmentDate Field = "appointment_date"
	FieldAppointmentTime Field = "appointment_time"
)

type ErrorKind string

const (
	RequiredField ErrorKind = apperrors.CodeRequiredField
	InvalidFormat ErrorKind = apperrors.CodeInvalidFormat
)

type FieldError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// FieldErrors holds at most one error per booking form field. A nil entry
// means the field is valid.
type FieldErrors struct {
	PatientName     *FieldError `json:"patient_name,omitempty"`
	PatientEmail    *FieldError `json:"patient_email,omitempty"`
	AppointmentDate *FieldError `json:"appointment_date,omitempty"`
	AppointmentTime *FieldError `json:"appointment_time,omitempty"`
}

func (f FieldErrors) Empty() bool {
	return f.PatientName == nil && f.PatientEmail == nil && f.AppointmentDate == nil && f.AppointmentTime == nil
}

func (f FieldErrors) Get(field Field) *FieldError {
	switch field {
	case FieldPatientName:
		return f.PatientName
	case FieldPatientEmail:
		return f.PatientEmail
	case FieldAppointmentDate:
		return f.AppointmentDate
	case FieldAppointmentTime:
		return f.AppointmentTime
	}
	return nil
}

func (f *FieldErrors) set(field Field, fe *FieldError) {
	switch field {
	case FieldPatientName:
		f.PatientName = fe
	case FieldPatientEmail:
		f.PatientEmail = fe
	case FieldAppointmentDate:
		f.AppointmentDate = fe
	case FieldAppointmentTime:
		f.AppointmentTime = fe
	}
}

func (f *FieldErrors) Clear(field Field) {
	f.set(field, nil)
}

// Details flattens the record for an AppError payload.
func (f FieldErrors) Details() map[string]any {
	details := make(map[string]any)
	for _, field := range Fields() {
		if fe := f.Get(field); fe != nil {
			details[string(field)] = *fe
		}
	}
	return details
}

func (f FieldErrors) Error() string {
	var messages []string
	for _, field := range Fields() {
		if fe := f.Get(field); fe != nil {
			messages = append(messages, fmt.Sprintf("%s: %s", field, fe.Message))
		}
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(messages), strings.Join(messages, "; "))
}

// Fields lists the booking form fields in display order.
func Fields() []Field {
	return []Field{FieldPatientName, FieldPatientEmail, FieldAppointmentDate, FieldAppointmentTime}
}

var structFields = map[string]Field{
	"PatientName":     FieldPatientName,
	"PatientEmail":    FieldPatientEmail,
	"AppointmentDate": FieldAppointmentDate,
	"AppointmentTime": FieldAppointmentTime,
}

var requiredMessages = map[Field]string{
	FieldPatientName:     "Name is required",
	FieldPatientEmail:    "Email is required",
	FieldAppointmentDate: "Date is required",
	FieldAppointmentTime: "Time is required",
}

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := validator.New()

	if err := v.RegisterValidation("notblank", validateNotBlank); err != nil {
		log.Fatal("Failed to register 'notblank' validator",
			"error", err,
		)
	}
	if err := v.RegisterValidation("loose_email", validateLooseEmail); err != nil {
		log.Fatal("Failed to register 'loose_email' validator",
			"error", err,
		)
	}

	log.Debug("Booking validator initialized successfully")

	return &BookingValidator{
		validate: v,
		logger:   log,
	}
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return sanitizer.TrimBlank(fl.Field().String()) != ""
}

func validateLooseEmail(fl validator.FieldLevel) bool {
	return looseEmailRegex.MatchString(fl.Field().String())
}

// Validate checks every field independently. It returns nil or a
// FieldErrors value.
func (v *BookingValidator) Validate(req *model.BookingRequest) error {
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) FieldErrors {
	var fieldErrors FieldErrors

	for _, err := range errs {
		field, ok := structFields[err.StructField()]
		if !ok {
			v.logger.Warn("Validation error on unmapped field", "field", err.StructField(), "tag", err.Tag())
			continue
		}

		switch err.Tag() {
		case "required", "notblank":
			fieldErrors.set(field, &FieldError{Kind: RequiredField, Message: requiredMessages[field]})
		case "loose_email":
			fieldErrors.set(field, &FieldError{Kind: InvalidFormat, Message: "Please enter a valid email"})
		default:
			fieldErrors.set(field, &FieldError{Kind: InvalidFormat, Message: err.Error()})
		}
	}

	return fieldErrors
}
