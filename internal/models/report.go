package models

import "time"

type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportVerified ReportStatus = "verified"
)

// Report is a point-in-time hazard attestation. The reporter identity fields
// are denormalized from the profile at creation and stay frozen even if the
// profile changes later; only Status may transition after creation.
type Report struct {
	ID              string       `json:"id"`
	UserID          string       `json:"userId"`
	UserEmail       string       `json:"userEmail"`
	UserDisplayName string       `json:"userDisplayName"`
	Location        Location     `json:"location"`
	ImageURL        string       `json:"imageUrl"`
	MediaType       string       `json:"mediaType"`
	Description     string       `json:"description"`
	Status          ReportStatus `json:"status"`
	Severity        int          `json:"severity"`
	Category        string       `json:"category"`
	Summary         string       `json:"summary"`
	Timestamp       time.Time    `json:"timestamp"`
}

// SeverityLevel bands a 0-10 severity score for display.
func SeverityLevel(severity int) string {
	switch {
	case severity >= 8:
		return "high"
	case severity >= 4:
		return "medium"
	default:
		return "low"
	}
}
