package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/auth"
	"jobportal-backend/internal/controller/application"
	"jobportal-backend/internal/controller/dashboard"
	"jobportal-backend/internal/controller/jobpost"
	"jobportal-backend/internal/middleware"
	"jobportal-backend/internal/model"
)

// RegisterRoutes will register each http endpoint route on the bound
// Server instance.
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	if s.Log != nil {
		r.Use(middleware.RequestLogger(s.Log))
	}

	allowOriginsStr := os.Getenv("ALLOW_ORIGIN")
	if allowOriginsStr == "" {
		allowOriginsStr = "*"
	}
	allowOrigins := strings.Split(allowOriginsStr, ",")

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	authHandler := auth.NewAuthHandler(s.Store)
	jobController := jobpost.NewJobPostController(s.Store)
	appController := application.NewApplicationController(s.Store)
	dashController := dashboard.NewDashboardController(s.Store)

	r.GET("/", s.healthHandler)

	authRoute := r.Group("/auth")
	{
		authRoute.POST("/register/jobseeker", authHandler.RegisterJobSeekerHandler)
		authRoute.POST("/register/employer", authHandler.RegisterEmployerHandler)
		authRoute.POST("/token", authHandler.TokenHandler)
		authRoute.POST("/login", authHandler.LoginHandler)
	}

	jobsRoute := r.Group("/jobs")
	{
		jobsRoute.GET("", jobController.GetJobs)
		jobsRoute.GET("/:id", jobController.GetJobByID)

		jobsRoute.POST("",
			middleware.RequireAuth(s.Store),
			middleware.CheckRole(model.RoleEmployer, "Only employers can post jobs"),
			jobController.CreateJobHandler)
		jobsRoute.PUT("/:id", middleware.RequireAuth(s.Store), jobController.UpdateJobHandler)
		jobsRoute.DELETE("/:id", middleware.RequireAuth(s.Store), jobController.DeleteJobHandler)
	}

	appsRoute := r.Group("/applications")
	{
		appsRoute.Use(middleware.RequireAuth(s.Store))
		appsRoute.POST("",
			middleware.CheckRole(model.RoleJobSeeker, "Only job seekers can apply"),
			appController.ApplyHandler)
		appsRoute.GET("/my",
			middleware.CheckRole(model.RoleJobSeeker, "Only job seekers can view their applications"),
			appController.MyApplicationsHandler)
		appsRoute.GET("/for-job/:id", appController.ApplicationsForJobHandler)
		appsRoute.PUT("/:id/review", appController.ReviewApplicationHandler)
	}

	dashboardRoute := r.Group("/dashboard")
	{
		dashboardRoute.Use(middleware.RequireAuth(s.Store))
		dashboardRoute.GET("/jobseeker",
			middleware.CheckRole(model.RoleJobSeeker, "Job seekers only"),
			dashController.JobSeekerDashboardHandler)
		dashboardRoute.GET("/employer",
			middleware.CheckRole(model.RoleEmployer, "Employers only"),
			dashController.EmployerDashboardHandler)
	}

	return r
}

// healthHandler reports liveness without requiring authentication.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.Store.Health())
}
