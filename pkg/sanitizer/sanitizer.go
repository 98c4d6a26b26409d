package sanitizer

import (
	"carebook/pkg/model"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

func SanitizeName(input string) string {
	return Pipeline{TrimAndNormalize}.Apply(input)
}

// SanitizeEmail trims surrounding whitespace. Case is preserved because the
// local part of an address may be case sensitive.
func SanitizeEmail(input string) string {
	return Pipeline{TrimBlank}.Apply(input)
}

// SanitizeBookingRequest normalizes name and email. Date and time are kept
// exactly as entered; they are only checked for presence.
func SanitizeBookingRequest(req model.BookingRequest) model.BookingRequest {
	return model.BookingRequest{
		PatientName:     SanitizeName(req.PatientName),
		PatientEmail:    SanitizeEmail(req.PatientEmail),
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
	}
}
