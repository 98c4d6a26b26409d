package model

import (
	"time"
)

type BookingStatus string

const (
	Confirmed BookingStatus = "confirmed"
	Pending   BookingStatus = "pending"
	Cancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID              string        `json:"id"`
	ProviderID      string        `json:"provider_id"`
	PatientName     string        `json:"patient_name"`
	PatientEmail    string        `json:"patient_email"`
	AppointmentDate string        `json:"appointment_date"`
	AppointmentTime string        `json:"appointment_time"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
}

// BookingInput is everything a booking carries except the identity and
// creation timestamp assigned by the store.
type BookingInput struct {
	ProviderID      string
	PatientName     string
	PatientEmail    string
	AppointmentDate string
	AppointmentTime string
	Status          BookingStatus
}

// BookingRequest holds the raw form fields submitted by a visitor.
type BookingRequest struct {
	PatientName     string `json:"patient_name" validate:"notblank"`
	PatientEmail    string `json:"patient_email" validate:"notblank,loose_email"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
	AppointmentTime string `json:"appointment_time" validate:"required"`
}
