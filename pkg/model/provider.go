package model

type Availability string

const (
	Available   Availability = "available"
	Busy        Availability = "busy"
	Unavailable Availability = "unavailable"
)

// Label is the badge text shown next to a provider.
func (a Availability) Label() string {
	switch a {
	case Available:
		return "Available Today"
	case Busy:
		return "Limited Slots"
	case Unavailable:
		return "Not Available"
	default:
		return string(a)
	}
}

type Provider struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Specialty       string       `json:"specialty"`
	ProfileImage    string       `json:"profile_image"`
	Availability    Availability `json:"availability"`
	ExperienceYears int          `json:"experience_years"`
	Rating          float64      `json:"rating"`
	Education       string       `json:"education"`
	Bio             string       `json:"bio"`
	AvailableSlots  []string     `json:"available_slots"`
	ConsultationFee float64      `json:"consultation_fee"`
}

// AcceptsBookings reports whether a booking form is offered for the provider.
func (p Provider) AcceptsBookings() bool {
	return p.Availability != Unavailable
}

func (p Provider) HasSlot(slot string) bool {
	for _, s := range p.AvailableSlots {
		if s == slot {
			return true
		}
	}
	return false
}
