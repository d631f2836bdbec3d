package models

type FacilityType string

const (
	FacilityHospital FacilityType = "Hospital"
	FacilityShelter  FacilityType = "Shelter"
	FacilityPolice   FacilityType = "Police"
	FacilitySafeZone FacilityType = "Safe Zone"
)

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Facility is a listed safe site (hospital, shelter, police post, safe zone).
// There is no update operation: corrections are delete and recreate.
// CreatedByRole is a snapshot of the creating account's role for audit
// display, not a live reference.
type Facility struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Type          FacilityType `json:"type"`
	Location      Location     `json:"location"`
	Address       string       `json:"address"`
	ContactNumber string       `json:"contactNumber"`
	CreatedByRole Role         `json:"createdByRole"`
}
