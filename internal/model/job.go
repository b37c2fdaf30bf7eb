package model

import "time"

// Job is a posting stored in the job table. PostedBy holds the email of
// the employer that created it and gates every mutation.
type Job struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Skills      []string  `json:"skills"`
	SalaryMin   *int      `json:"salary_min"`
	SalaryMax   *int      `json:"salary_max"`
	PostedBy    string    `json:"posted_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// JobCreate carries the employer-editable fields of a job. The same
// shape is used for creation and for full replacement on update.
type JobCreate struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Company     string   `json:"company" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Skills      []string `json:"skills"`
	SalaryMin   *int     `json:"salary_min"`
	SalaryMax   *int     `json:"salary_max"`
}

// JobFilter holds the optional job listing filters. Provided filters
// are AND-combined.
type JobFilter struct {
	Query    string
	Location string
	Skills   []string
}
