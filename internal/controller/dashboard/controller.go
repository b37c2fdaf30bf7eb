// Package dashboard provides the read-only summary endpoints joining
// applications and jobs for the acting user.
package dashboard

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/model"
	"jobportal-backend/internal/store"
	"jobportal-backend/internal/utilities"
)

// DashboardController handles the per-role dashboard endpoints
type DashboardController struct {
	Store *store.Storage
}

// NewDashboardController creates a new instance of DashboardController
// with the provided storage.
func NewDashboardController(s *store.Storage) *DashboardController {
	return &DashboardController{
		Store: s,
	}
}

type jobSeekerDashboard struct {
	User            model.UserInfo      `json:"user"`
	NumApplications int                 `json:"num_applications"`
	AppliedJobs     []model.Job         `json:"applied_jobs"`
	Applications    []model.Application `json:"applications"`
}

type employerDashboard struct {
	User            model.UserInfo      `json:"user"`
	NumJobsPosted   int                 `json:"num_jobs_posted"`
	Jobs            []model.Job         `json:"jobs"`
	NumApplications int                 `json:"num_applications"`
	Applications    []model.Application `json:"applications"`
}

// JobSeekerDashboardHandler summarises the acting seeker's applications.
// Jobs deleted since the application was made drop out of applied_jobs
// while the application itself stays listed.
// @Summary Job seeker dashboard
// @Tags Dashboard
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} jobSeekerDashboard "Applications and the jobs they target"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not a job seeker"
// @Router /dashboard/jobseeker [get]
func (dc *DashboardController) JobSeekerDashboardHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Detail: err.Error()})
		return
	}

	apps := dc.Store.ApplicationsBySeeker(user.Email)

	appliedJobs := []model.Job{}
	for _, app := range apps {
		if job, ok := dc.Store.GetJob(app.JobID); ok {
			appliedJobs = append(appliedJobs, job)
		}
	}

	c.JSON(http.StatusOK, jobSeekerDashboard{
		User:            user.Info(),
		NumApplications: len(apps),
		AppliedJobs:     appliedJobs,
		Applications:    apps,
	})
}

// EmployerDashboardHandler summarises the acting employer's postings and
// every application made against them.
// @Summary Employer dashboard
// @Tags Dashboard
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} employerDashboard "Posted jobs and their applications"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not an employer"
// @Router /dashboard/employer [get]
func (dc *DashboardController) EmployerDashboardHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Detail: err.Error()})
		return
	}

	jobs := dc.Store.JobsPostedBy(user.Email)

	apps := []model.Application{}
	for _, job := range jobs {
		apps = append(apps, dc.Store.ApplicationsByJob(job.ID)...)
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].ID < apps[j].ID })

	c.JSON(http.StatusOK, employerDashboard{
		User:            user.Info(),
		NumJobsPosted:   len(jobs),
		Jobs:            jobs,
		NumApplications: len(apps),
		Applications:    apps,
	})
}
