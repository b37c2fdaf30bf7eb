// Package application provides HTTP handlers for job application operations.
package application

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/model"
	"jobportal-backend/internal/store"
	"jobportal-backend/internal/utilities"
)

// ApplicationController handles job application related endpoints
type ApplicationController struct {
	Store *store.Storage
}

// NewApplicationController creates a new instance of ApplicationController
// with the provided storage.
func NewApplicationController(s *store.Storage) *ApplicationController {
	return &ApplicationController{
		Store: s,
	}
}

type applyInfo struct {
	JobID       int     `json:"job_id" binding:"required"`
	SeekerEmail string  `json:"seeker_email" binding:"required,email"`
	CoverLetter *string `json:"cover_letter"`
}

type reviewInfo struct {
	Status string `json:"status" binding:"required,oneof=reviewed rejected accepted"`
}

// ApplyHandler handles the creation of a new application by a job seeker.
// The declared seeker email must match the authenticated user even
// though the actor is already resolved from the token.
// @Summary Apply for a job
// @Description Only job seekers can apply, once per job, and only as themselves
// @Tags Applications
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Application body applyInfo true "Application information"
// @Success 201 {object} model.Application "Successfully applied"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body or already applied"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not a job seeker, or applying as someone else"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Router /applications [post]
func (ac *ApplicationController) ApplyHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Detail: err.Error()})
		return
	}

	var info applyInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Detail: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if info.SeekerEmail != user.Email {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Detail: "You can only apply as yourself",
		})
		return
	}

	if _, ok := ac.Store.GetJob(info.JobID); !ok {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Detail: "Job not found"})
		return
	}

	app, err := ac.Store.CreateApplication(model.Application{
		JobID:       info.JobID,
		SeekerEmail: user.Email,
		CoverLetter: info.CoverLetter,
		Status:      model.ApplicationStatusPending,
		AppliedAt:   time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateApplication) {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Detail: "Already applied to this job",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Detail: fmt.Sprintf("Failed to create application: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, app)
}

// MyApplicationsHandler returns every application the acting job seeker
// has submitted.
// @Summary List applications (jobseeker)
// @Tags Applications
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.Application "Applications submitted by the acting user"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not a job seeker"
// @Router /applications/my [get]
func (ac *ApplicationController) MyApplicationsHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ac.Store.ApplicationsBySeeker(user.Email))
}

// ApplicationsForJobHandler returns every application against a job the
// acting employer posted.
// @Summary List applications for a job (employer)
// @Tags Applications
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of the job"
// @Success 200 {array} model.Application "Applications for the job"
// @Failure 400 {object} utilities.ErrorResponse "Malformed ID"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not the posting employer"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Router /applications/for-job/{id} [get]
func (ac *ApplicationController) ApplicationsForJobHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Detail: err.Error()})
		return
	}

	jobID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Detail: "Invalid job ID"})
		return
	}

	job, ok := ac.Store.GetJob(jobID)
	if !ok {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Detail: "Job not found"})
		return
	}

	if job.PostedBy != user.Email {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Detail: "Only the employer who posted the job can review applications",
		})
		return
	}

	c.JSON(http.StatusOK, ac.Store.ApplicationsByJob(jobID))
}

// ReviewApplicationHandler sets the status of an application. A missing
// job reports the same refusal as not owning it, so applications left
// dangling by a job delete stay unreviewable.
// @Summary Employer reviews application status
// @Description Status can move to reviewed, rejected or accepted; repeated reviews overwrite
// @Tags Applications
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of the application"
// @Param Review body reviewInfo true "New status"
// @Success 200 {object} model.Application "Updated application"
// @Failure 400 {object} utilities.ErrorResponse "Malformed ID or illegal status"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not the employer owning the job"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Router /applications/{id}/review [put]
func (ac *ApplicationController) ReviewApplicationHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Detail: err.Error()})
		return
	}

	appID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Detail: "Invalid application ID"})
		return
	}

	var info reviewInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Detail: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	app, ok := ac.Store.GetApplication(appID)
	if !ok {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Detail: "Application not found"})
		return
	}

	job, ok := ac.Store.GetJob(app.JobID)
	if !ok || job.PostedBy != user.Email {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Detail: "Can only review applications for your jobs",
		})
		return
	}

	app, err = ac.Store.SetApplicationStatus(appID, info.Status)
	if err != nil {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Detail: "Application not found"})
		return
	}

	c.JSON(http.StatusOK, app)
}
