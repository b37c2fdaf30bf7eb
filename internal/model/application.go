package model

import "time"

const (
	// ApplicationStatusPending indicates that the application has not been reviewed yet
	ApplicationStatusPending = "pending"
	// ApplicationStatusReviewed indicates that the employer has seen the application
	ApplicationStatusReviewed = "reviewed"
	// ApplicationStatusRejected indicates that the application has been rejected
	ApplicationStatusRejected = "rejected"
	// ApplicationStatusAccepted indicates that the application has been accepted
	ApplicationStatusAccepted = "accepted"
)

// Application represents a job application record. JobID and SeekerEmail
// are non-owning references; deleting the job leaves the application in
// place.
type Application struct {
	ID          int       `json:"id"`
	JobID       int       `json:"job_id"`
	SeekerEmail string    `json:"seeker_email"`
	CoverLetter *string   `json:"cover_letter"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
}
