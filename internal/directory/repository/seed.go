package repository

import "carebook/pkg/model"

// SeedProviders is the catalog every session starts with.
func SeedProviders() []model.Provider {
	return []model.Provider{
		{
			ID:              "1",
			Name:            "Dr. Sarah Johnson",
			Specialty:       "Cardiology",
			ProfileImage:    "/assets/doctor-cardiology.jpg",
			Availability:    model.Available,
			ExperienceYears: 12,
			Rating:          4.8,
			Education:       "MD from Harvard Medical School",
			Bio:             "Dr. Sarah Johnson is a board-certified cardiologist with over 12 years of experience in treating cardiovascular diseases. She specializes in preventive cardiology and heart failure management.",
			AvailableSlots:  []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"},
			ConsultationFee: 250,
		},
		{
			ID:              "2",
			Name:            "Dr. Michael Chen",
			Specialty:       "Dermatology",
			ProfileImage:    "/assets/doctor-dermatology.jpg",
			Availability:    model.Available,
			ExperienceYears: 8,
			Rating:          4.9,
			Education:       "MD from Johns Hopkins University",
			Bio:             "Dr. Michael Chen is a dermatologist specializing in medical and cosmetic dermatology. He has extensive experience in treating skin conditions and performing dermatological procedures.",
			AvailableSlots:  []string{"08:00", "09:00", "10:00", "13:00", "14:00", "15:00"},
			ConsultationFee: 200,
		},
		{
			ID:              "3",
			Name:            "Dr. Robert Williams",
			Specialty:       "Orthopedics",
			ProfileImage:    "/assets/doctor-orthopedics.jpg",
			Availability:    model.Busy,
			ExperienceYears: 15,
			Rating:          4.7,
			Education:       "MD from Mayo Clinic",
			Bio:             "Dr. Robert Williams is an orthopedic surgeon with 15 years of experience in joint replacement surgery and sports medicine. He specializes in minimally invasive procedures.",
			AvailableSlots:  []string{"16:00", "17:00"},
			ConsultationFee: 300,
		},
		{
			ID:              "4",
			Name:            "Dr. Emily Davis",
			Specialty:       "Pediatrics",
			ProfileImage:    "/assets/doctor-pediatrics.jpg",
			Availability:    model.Available,
			ExperienceYears: 10,
			Rating:          4.9,
			Education:       "MD from Stanford University",
			Bio:             "Dr. Emily Davis is a pediatrician who provides comprehensive care for children from infancy through adolescence. She has a special interest in developmental pediatrics.",
			AvailableSlots:  []string{"08:00", "09:00", "10:00", "11:00", "13:00", "14:00"},
			ConsultationFee: 180,
		},
	}
}
