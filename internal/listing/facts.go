// Package listing holds the facts about the one apartment being marketed.
package listing

import "strconv"

// Campus names, in priority order.
const (
	CampusUCSB = "UCSB"
	CampusSBCC = "SBCC"
)

// Pricing holds pre-formatted currency strings. TotalDueAtSigning is authored
// independently of the other amounts; see Pricing.Check.
type Pricing struct {
	Rent              string `json:"rent"`
	Deposit           string `json:"deposit"`
	FirstMonth        string `json:"first_month"`
	LastMonth         string `json:"last_month"`
	TotalDueAtSigning string `json:"total_due_at_signing"`
}

// Contact is how prospective tenants reach the leasing office.
type Contact struct {
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	VirtualTour string `json:"virtual_tour"`
}

// Facts describes the listing. Treat a *Facts as read-only once built.
type Facts struct {
	Location         string            `json:"location"`
	Address          string            `json:"address"`
	Bedrooms         int               `json:"bedrooms"`
	Bathrooms        int               `json:"bathrooms"`
	Sqft             string            `json:"sqft"`
	RoomAvailability map[string]string `json:"room_availability"`
	Pricing          Pricing           `json:"pricing"`
	TargetAudiences  []string          `json:"target_audience"`
	Features         []string          `json:"features"`
	Amenities        []string          `json:"amenities"`
	PostingFrequency string            `json:"posting_frequency"`
	Tone             string            `json:"tone"`
	Contact          Contact           `json:"contact"`
}

// Default returns the Del Playa listing.
func Default() *Facts {
	return &Facts{
		Location:  "Isla Vista, CA",
		Address:   "6777 Del Playa Dr, Isla Vista, CA 93117",
		Bedrooms:  4,
		Bathrooms: 2,
		Sqft:      "1,493",
		RoomAvailability: map[string]string{
			"triple_room": "1 available immediately",
			"double_room": "1 available immediately",
		},
		Pricing: Pricing{
			Rent:              "$1,500",
			Deposit:           "$1,500",
			FirstMonth:        "$1,500",
			LastMonth:         "$1,500",
			TotalDueAtSigning: "$4,500",
		},
		TargetAudiences: []string{CampusUCSB, CampusSBCC},
		Features: []string{
			"Walking distance to UCSB campus",
			"Close to SBCC",
			"Beachfront location",
			"Great location on the beach",
			"Shared back patio with sea views",
			"High-end stainless steel appliances",
			"On-site laundry facilities",
			"Proximity to local park",
			"Secure 5-unit complex",
			"Elegant coastal living",
			"Virtual tour available",
		},
		Amenities: []string{
			"Utilities included",
			"WiFi included",
			"Furnished",
			"Beach access",
			"Walking distance to UCSB and SBCC",
			"Washer/Dryer in unit",
			"Dishwasher",
			"Balcony with ocean view",
		},
		PostingFrequency: "daily",
		Tone:             "friendly, professional, student-focused",
		Contact: Contact{
			Phone:       "(805) 555-0123",
			Email:       "leasing@playalifeiv.com",
			VirtualTour: "https://playalifeiv.com/virtual-tour",
		},
	}
}

// Vars returns the template placeholder values for the given campus.
func (f *Facts) Vars(campus string) map[string]string {
	return map[string]string{
		"address":              f.Address,
		"bedrooms":             strconv.Itoa(f.Bedrooms),
		"bathrooms":            strconv.Itoa(f.Bathrooms),
		"campus":               campus,
		"virtual_tour":         f.Contact.VirtualTour,
		"rent":                 f.Pricing.Rent,
		"deposit":              f.Pricing.Deposit,
		"first_month":          f.Pricing.FirstMonth,
		"last_month":           f.Pricing.LastMonth,
		"total_due_at_signing": f.Pricing.TotalDueAtSigning,
	}
}
