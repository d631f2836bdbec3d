package services

import (
	"errors"
	"testing"
	"time"

	"github.com/communityguardian/core/internal/config"
	"github.com/communityguardian/core/internal/models"
	"github.com/communityguardian/core/internal/store"
)

type stubIdentity struct {
	user *models.UserProfile
	err  error
}

func (s stubIdentity) CurrentUser() (*models.UserProfile, error) {
	return s.user, s.err
}

func testCapture() CaptureData {
	return CaptureData{
		Location:    models.Location{Lat: 40.71, Lng: -74.0},
		Media:       "data:image/jpeg;base64,xxxx",
		MediaType:   "image/jpeg",
		Description: "downed power line across the road",
		Verification: VerificationResult{
			Severity: 8,
			Category: "Accident",
			Summary:  "Live wire blocking both lanes",
		},
	}
}

func TestBuildFromCaptureAnonymousFallback(t *testing.T) {
	tests := []struct {
		name     string
		identity IdentitySource
	}{
		{"no session", stubIdentity{}},
		{"identity lookup failure", stubIdentity{err: errors.New("store unreadable")}},
	}

	for _, tt := range tests {
		svc := NewReportService(store.NewMemoryStore(), tt.identity)
		report := svc.BuildFromCapture(testCapture())

		if report.UserID != anonUserID || report.UserEmail != anonEmail || report.UserDisplayName != anonDisplayName {
			t.Errorf("%s: identity = (%s, %s, %s), want anonymous placeholder",
				tt.name, report.UserID, report.UserEmail, report.UserDisplayName)
		}
		if report.ID == "" {
			t.Errorf("%s: empty report id", tt.name)
		}
	}
}

func TestBuildFromCaptureDenormalizesReporter(t *testing.T) {
	st := store.NewMemoryStore()
	auth := NewAuthService(st, &config.Config{CreatorEmail: testCreatorEmail, SessionSecret: "test-secret"})
	svc := NewReportService(st, auth)

	profile, err := auth.SignUp("alice@example.com", "pw1", "Alice")
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	capture := testCapture()
	report := svc.BuildFromCapture(capture)

	if report.UserID != profile.ID || report.UserEmail != profile.Email || report.UserDisplayName != profile.DisplayName {
		t.Errorf("reporter identity = (%s, %s, %s), want denormalized from %+v",
			report.UserID, report.UserEmail, report.UserDisplayName, profile)
	}
	if report.Status != models.ReportVerified {
		t.Errorf("status = %s, want %s", report.Status, models.ReportVerified)
	}
	if report.Severity != capture.Verification.Severity || report.Category != capture.Verification.Category {
		t.Errorf("verification fields not carried: %+v", report)
	}
	if report.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestListVerifiedFiltersAndKeepsOrder(t *testing.T) {
	svc := NewReportService(store.NewMemoryStore(), stubIdentity{})

	now := time.Now()
	reports := []models.Report{
		{ID: "r1", Status: models.ReportVerified, Timestamp: now},
		{ID: "r2", Status: models.ReportPending, Timestamp: now},
		{ID: "r3", Status: models.ReportVerified, Timestamp: now},
	}
	for _, report := range reports {
		if err := svc.Add(report); err != nil {
			t.Fatalf("Add(%s) failed: %v", report.ID, err)
		}
	}

	all, err := svc.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List count = %d, want 3", len(all))
	}

	verified, err := svc.ListVerified()
	if err != nil {
		t.Fatalf("ListVerified failed: %v", err)
	}
	if len(verified) != 2 || verified[0].ID != "r1" || verified[1].ID != "r3" {
		t.Errorf("ListVerified = %+v, want [r1 r3]", verified)
	}
}

func TestSeverityLevel(t *testing.T) {
	tests := []struct {
		severity int
		want     string
	}{
		{0, "low"},
		{3, "low"},
		{4, "medium"},
		{7, "medium"},
		{8, "high"},
		{10, "high"},
	}
	for _, tt := range tests {
		if got := models.SeverityLevel(tt.severity); got != tt.want {
			t.Errorf("SeverityLevel(%d) = %s, want %s", tt.severity, got, tt.want)
		}
	}
}
