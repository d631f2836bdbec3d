package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/communityguardian/core/internal/logger"
	"github.com/communityguardian/core/internal/models"
	"github.com/communityguardian/core/internal/store"
)

// IdentitySource answers who is acting right now. AuthService satisfies it;
// tests substitute stubs.
type IdentitySource interface {
	CurrentUser() (*models.UserProfile, error)
}

// Placeholder identity used when a report is captured without an active
// session. Reporting must never be blocked by an auth gap.
const (
	anonUserID      = "anon"
	anonEmail       = "anon@guardian.protocol"
	anonDisplayName = "Anonymous Guardian"
)

// CaptureData is the raw input from the capture flow: where, what was
// recorded, and the automated verification verdict.
type CaptureData struct {
	Location     models.Location
	Media        string
	MediaType    string
	Description  string
	Verification VerificationResult
}

// VerificationResult is the automated assessment bundle attached to a
// capture before it becomes a report.
type VerificationResult struct {
	Severity int
	Category string
	Summary  string
}

// ReportService owns the hazard report collection.
type ReportService struct {
	mu       sync.Mutex
	store    store.Store
	identity IdentitySource
	newID    func() string
	now      func() time.Time
	log      *logrus.Entry
}

func NewReportService(s store.Store, identity IdentitySource) *ReportService {
	return &ReportService{
		store:    s,
		identity: identity,
		newID:    uuid.NewString,
		now:      time.Now,
		log:      logger.WithComponent("report"),
	}
}

// List returns every stored report in insertion order.
func (r *ReportService) List() ([]models.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listLocked()
}

func (r *ReportService) listLocked() ([]models.Report, error) {
	var reports []models.Report
	if _, err := loadCollection(r.store, store.CollectionReports, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// Add appends the report. There is no deduplication.
func (r *ReportService) Add(report models.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reports, err := r.listLocked()
	if err != nil {
		return err
	}
	reports = append(reports, report)
	if err := saveCollection(r.store, store.CollectionReports, reports); err != nil {
		return err
	}

	r.log.WithFields(logrus.Fields{
		"report_id": report.ID,
		"category":  report.Category,
		"severity":  report.Severity,
	}).Info("report stored")
	return nil
}

// ListVerified returns the reports whose status is verified, in insertion
// order.
func (r *ReportService) ListVerified() ([]models.Report, error) {
	reports, err := r.List()
	if err != nil {
		return nil, err
	}

	verified := make([]models.Report, 0, len(reports))
	for _, report := range reports {
		if report.Status == models.ReportVerified {
			verified = append(verified, report)
		}
	}
	return verified, nil
}

// BuildFromCapture assembles a report from capture input, denormalizing the
// acting identity into it. With no active session (or a broken identity
// lookup) the anonymous placeholder is used instead of failing.
func (r *ReportService) BuildFromCapture(capture CaptureData) models.Report {
	report := models.Report{
		ID:              r.newID(),
		UserID:          anonUserID,
		UserEmail:       anonEmail,
		UserDisplayName: anonDisplayName,
		Location:        capture.Location,
		ImageURL:        capture.Media,
		MediaType:       capture.MediaType,
		Description:     capture.Description,
		Status:          models.ReportVerified,
		Severity:        capture.Verification.Severity,
		Category:        capture.Verification.Category,
		Summary:         capture.Verification.Summary,
		Timestamp:       r.now(),
	}

	user, err := r.identity.CurrentUser()
	if err != nil {
		r.log.WithField("error", err.Error()).Warn("identity lookup failed, reporting anonymously")
		return report
	}
	if user != nil {
		report.UserID = user.ID
		report.UserEmail = user.Email
		report.UserDisplayName = user.DisplayName
	}
	return report
}
