package services

import (
	"math"
	"testing"

	"github.com/communityguardian/core/internal/models"
	"github.com/communityguardian/core/internal/store"
)

func TestListSeedsOnce(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewFacilityService(st)

	first, err := svc.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(first) != len(defaultFacilities) {
		t.Fatalf("seeded count = %d, want %d", len(first), len(defaultFacilities))
	}
	for i, facility := range first {
		if facility.ID != defaultFacilities[i].ID || facility.Name != defaultFacilities[i].Name {
			t.Errorf("seeded facility %d = %+v, want %+v", i, facility, defaultFacilities[i])
		}
	}

	second, err := svc.List()
	if err != nil {
		t.Fatalf("second List failed: %v", err)
	}
	if len(second) != len(first) {
		t.Errorf("second List count = %d, want %d (no re-seed)", len(second), len(first))
	}

	// An emptied collection stays empty: seeding keys off absence, not size.
	for _, facility := range first {
		if err := svc.Remove(facility.ID); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
	}
	emptied, err := svc.List()
	if err != nil {
		t.Fatalf("List after emptying failed: %v", err)
	}
	if len(emptied) != 0 {
		t.Errorf("emptied listing count = %d, want 0", len(emptied))
	}
}

func TestAddAllowsDuplicateSites(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewFacilityService(st)

	base, err := svc.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	site := models.Facility{
		Name:          "Eastside Clinic",
		Type:          models.FacilityHospital,
		Location:      models.Location{Lat: 40.7, Lng: -74.0},
		Address:       "12 East Rd",
		ContactNumber: "112",
		CreatedByRole: models.RoleAuthority,
	}
	for i := 0; i < 3; i++ {
		if err := svc.Add(site); err != nil {
			t.Fatalf("Add %d failed: %v", i, err)
		}
	}

	listed, err := svc.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != len(base)+3 {
		t.Fatalf("count after adds = %d, want %d", len(listed), len(base)+3)
	}

	added := listed[len(base):]
	if added[0].ID == "" || added[0].ID == added[1].ID || added[1].ID == added[2].ID {
		t.Errorf("duplicate sites must get distinct ids: %q %q %q", added[0].ID, added[1].ID, added[2].ID)
	}

	// Removing one duplicate leaves the others with their fields intact.
	if err := svc.Remove(added[1].ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	listed, _ = svc.List()
	if len(listed) != len(base)+2 {
		t.Fatalf("count after remove = %d, want %d", len(listed), len(base)+2)
	}
	for _, facility := range listed[len(base):] {
		if facility.Name != site.Name || facility.Address != site.Address {
			t.Errorf("surviving duplicate mutated: %+v", facility)
		}
	}
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewFacilityService(st)

	before, err := svc.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if err := svc.Remove("no-such-id"); err != nil {
		t.Fatalf("Remove of unknown id: %v", err)
	}
	after, _ := svc.List()
	if len(after) != len(before) {
		t.Errorf("count changed on unknown-id remove: %d -> %d", len(before), len(after))
	}
}

func TestDistanceKm(t *testing.T) {
	if d := DistanceKm(40.7128, -74.0060, 40.7128, -74.0060); d != 0 {
		t.Errorf("distance to self = %v, want 0", d)
	}

	ab := DistanceKm(40.7128, -74.0060, 40.7328, -73.9960)
	ba := DistanceKm(40.7328, -73.9960, 40.7128, -74.0060)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", ab, ba)
	}

	// One degree of longitude along the equator.
	d := DistanceKm(0, 0, 0, 1)
	if math.Abs(d-111.19) > 0.5 {
		t.Errorf("equatorial degree = %v km, want ~111.19", d)
	}
}
