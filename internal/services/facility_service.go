package services

import (
	"math"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/communityguardian/core/internal/logger"
	"github.com/communityguardian/core/internal/models"
	"github.com/communityguardian/core/internal/store"
)

// defaultFacilities is written once, the first time the collection is read,
// so the listing is never observably empty on a fresh device.
var defaultFacilities = []models.Facility{
	{
		ID:            "1",
		Name:          "City Central Hospital",
		Type:          models.FacilityHospital,
		Location:      models.Location{Lat: 40.7128, Lng: -74.0060},
		Address:       "123 Medical Plaza",
		ContactNumber: "112",
		CreatedByRole: models.RoleCreator,
	},
	{
		ID:            "2",
		Name:          "Community Center Shelter",
		Type:          models.FacilityShelter,
		Location:      models.Location{Lat: 40.7228, Lng: -74.0160},
		Address:       "456 Public Square",
		ContactNumber: "112",
		CreatedByRole: models.RoleCreator,
	},
	{
		ID:            "3",
		Name:          "Westside Safe Zone",
		Type:          models.FacilitySafeZone,
		Location:      models.Location{Lat: 40.7328, Lng: -73.9960},
		Address:       "789 Safety Blvd",
		ContactNumber: "112",
		CreatedByRole: models.RoleCreator,
	},
}

// FacilityService owns the facility listing. There is no uniqueness check on
// name or location: separate authorities may log the same real-world site
// independently, and both entries stand.
type FacilityService struct {
	mu    sync.Mutex
	store store.Store
	newID func() string
	log   *logrus.Entry
}

func NewFacilityService(s store.Store) *FacilityService {
	return &FacilityService{
		store: s,
		newID: uuid.NewString,
		log:   logger.WithComponent("facility"),
	}
}

// List returns the stored facilities. On first access it seeds the reference
// set; an explicitly emptied collection stays empty.
func (f *FacilityService) List() ([]models.Facility, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listLocked()
}

func (f *FacilityService) listLocked() ([]models.Facility, error) {
	var facilities []models.Facility
	found, err := loadCollection(f.store, store.CollectionFacilities, &facilities)
	if err != nil {
		return nil, err
	}
	if !found {
		seeded := make([]models.Facility, len(defaultFacilities))
		copy(seeded, defaultFacilities)
		if err := saveCollection(f.store, store.CollectionFacilities, seeded); err != nil {
			return nil, err
		}
		f.log.WithField("count", len(seeded)).Info("seeded facility reference set")
		return seeded, nil
	}
	return facilities, nil
}

// Add appends the facility, assigning an id when the caller left it empty.
func (f *FacilityService) Add(facility models.Facility) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	facilities, err := f.listLocked()
	if err != nil {
		return err
	}

	if facility.ID == "" {
		facility.ID = f.newID()
	}
	facilities = append(facilities, facility)
	return saveCollection(f.store, store.CollectionFacilities, facilities)
}

// Remove deletes the facility with the given id. Removing an unknown id is a
// no-op.
func (f *FacilityService) Remove(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	facilities, err := f.listLocked()
	if err != nil {
		return err
	}

	kept := facilities[:0]
	for _, facility := range facilities {
		if facility.ID != id {
			kept = append(kept, facility)
		}
	}
	return saveCollection(f.store, store.CollectionFacilities, kept)
}

const earthRadiusKm = 6371

// DistanceKm calculates the great-circle distance between two coordinates in
// kilometers using the haversine formula.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
