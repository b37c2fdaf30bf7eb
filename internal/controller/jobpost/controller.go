// Package jobpost provides HTTP handlers for job posting operations.
package jobpost

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/model"
	"jobportal-backend/internal/store"
	"jobportal-backend/internal/utilities"
)

// JobPostController handles job related endpoints
type JobPostController struct {
	Store *store.Storage
}

// NewJobPostController creates a new instance of JobPostController
func NewJobPostController(s *store.Storage) *JobPostController {
	return &JobPostController{
		Store: s,
	}
}

// CreateJobHandler handles the creation of a new job by an employer.
// The stored company name comes from the employer's registered
// company_name when set, falling back to the payload value otherwise.
// @Summary Post a new job
// @Description Only employers can post jobs
// @Tags Jobs
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Job body model.JobCreate true "Job information"
// @Success 201 {object} model.Job "Successfully created job"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as employer"
// @Router /jobs [post]
func (jc *JobPostController) CreateJobHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Detail: err.Error()})
		return
	}

	var payload model.JobCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Detail: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	company := user.CompanyName
	if company == "" {
		company = payload.Company
	}

	job := jc.Store.CreateJob(model.Job{
		Title:       payload.Title,
		Description: payload.Description,
		Company:     company,
		Location:    payload.Location,
		Skills:      normalizeSkills(payload.Skills),
		SalaryMin:   payload.SalaryMin,
		SalaryMax:   payload.SalaryMax,
		PostedBy:    user.Email,
		CreatedAt:   time.Now().UTC(),
	})

	c.JSON(http.StatusCreated, job)
}

// GetJobs fetches all jobs matching the query from storage and returns
// them as a JSON response. No authentication required.
// @Summary List jobs (with optional filters)
// @Description Filters are AND-combined; query matches title and description, location must match exactly, skills is a case-insensitive subset test
// @Tags Jobs
// @Produce json
// @Param query query string false "Substring match over job title and description, case insensitive"
// @Param location query string false "Location, exact match, case insensitive"
// @Param skills query []string false "Required skills; every one must be present on the job"
// @Success 200 {array} model.Job "Jobs matching the filters"
// @Router /jobs [get]
func (jc *JobPostController) GetJobs(c *gin.Context) {
	filter := model.JobFilter{
		Query:    c.Query("query"),
		Location: c.Query("location"),
		Skills:   c.QueryArray("skills"),
	}

	c.JSON(http.StatusOK, jc.Store.ListJobs(filter))
}

// GetJobByID fetches a job by its ID and returns it as a JSON response.
// @Summary Get job by ID
// @Tags Jobs
// @Produce json
// @Param id path integer true "ID of desired job"
// @Success 200 {object} model.Job "The job with the specified ID"
// @Failure 400 {object} utilities.ErrorResponse "Malformed ID"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Router /jobs/{id} [get]
func (jc *JobPostController) GetJobByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Detail: "Invalid job ID"})
		return
	}

	job, ok := jc.Store.GetJob(id)
	if !ok {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Detail: "Job not found"})
		return
	}

	c.JSON(http.StatusOK, job)
}

// UpdateJobHandler allows the posting employer to replace a job they own.
// Every creatable field is overwritten by the payload; id, owner and
// creation time are preserved.
// @Summary Update job
// @Description Only the employer that posted the job can update it
// @Tags Jobs
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of desired job"
// @Param Job body model.JobCreate true "Replacement job information"
// @Success 200 {object} model.Job "Successfully updated job"
// @Failure 400 {object} utilities.ErrorResponse "Malformed ID or request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not the posting employer"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Router /jobs/{id} [put]
func (jc *JobPostController) UpdateJobHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Detail: err.Error()})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Detail: "Invalid job ID"})
		return
	}

	job, ok := jc.Store.GetJob(id)
	if !ok {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Detail: "Job not found"})
		return
	}

	if job.PostedBy != user.Email {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Detail: "Cannot update job not posted by you",
		})
		return
	}

	var payload model.JobCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Detail: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	job.Title = payload.Title
	job.Description = payload.Description
	job.Company = payload.Company
	job.Location = payload.Location
	job.Skills = normalizeSkills(payload.Skills)
	job.SalaryMin = payload.SalaryMin
	job.SalaryMax = payload.SalaryMax

	if err := jc.Store.ReplaceJob(job); err != nil {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Detail: "Job not found"})
		return
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJobHandler allows the posting employer to delete a job they own.
// Existing applications against the job are kept.
// @Summary Delete job
// @Description Only the employer that posted the job can delete it
// @Tags Jobs
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of desired job"
// @Success 204 "Successfully deleted job"
// @Failure 400 {object} utilities.ErrorResponse "Malformed ID"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not the posting employer"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Router /jobs/{id} [delete]
func (jc *JobPostController) DeleteJobHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Detail: err.Error()})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Detail: "Invalid job ID"})
		return
	}

	job, ok := jc.Store.GetJob(id)
	if !ok {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Detail: "Job not found"})
		return
	}

	if job.PostedBy != user.Email {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Detail: "Cannot delete job not posted by you",
		})
		return
	}

	if err := jc.Store.DeleteJob(id); err != nil {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Detail: "Job not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// normalizeSkills keeps the skills field a JSON array even when the
// payload omits it.
func normalizeSkills(skills []string) []string {
	if skills == nil {
		return []string{}
	}
	return skills
}
