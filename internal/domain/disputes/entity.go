package disputes

import "time"

// DisputeID identifier type
type DisputeID string

// Dispute is a user challenge against a report. ScamReportID is not
// checked against the report store.
type Dispute struct {
	ID               DisputeID `json:"id"`
	ScamReportID     string    `json:"scamReportId"`
	Description      string    `json:"description"`
	VerificationInfo *string   `json:"verificationInfo"`
	CreatedAt        time.Time `json:"createdAt"`
}

// NewDispute holds the caller supplied fields of a dispute.
type NewDispute struct {
	ScamReportID     string
	Description      string
	VerificationInfo *string
}
