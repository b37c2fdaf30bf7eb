// Package auth contains token handling and the registration/login handlers.
package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/model"
	"jobportal-backend/internal/store"
	"jobportal-backend/internal/utilities"
)

// AuthHandler holds the storage reference for the auth endpoints.
type AuthHandler struct {
	Store *store.Storage
}

// NewAuthHandler creates a new instance of AuthHandler with the provided storage.
func NewAuthHandler(s *store.Storage) *AuthHandler {
	return &AuthHandler{
		Store: s,
	}
}

type jobSeekerRegisterInfo struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Resume   string `json:"resume"`
}

type employerRegisterInfo struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Name        string `json:"name" binding:"required"`
	CompanyName string `json:"company_name" binding:"required"`
}

type loginInfo struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=jobseeker employer"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterJobSeekerHandler registers a new job seeker account.
// @Summary Register new job seeker
// @Description Email must be unique and password at least 6 characters long
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body jobSeekerRegisterInfo true "Registration info, resume is optional"
// @Success 200 {object} model.UserInfo "Public projection of the new account"
// @Failure 400 {object} utilities.ErrorResponse "Invalid payload or email already registered"
// @Router /auth/register/jobseeker [post]
func (ah *AuthHandler) RegisterJobSeekerHandler(c *gin.Context) {
	var info jobSeekerRegisterInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Detail: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	user := model.User{
		Email:    info.Email,
		Password: info.Password,
		Name:     info.Name,
		Role:     model.RoleJobSeeker,
		Resume:   info.Resume,
	}
	if err := ah.Store.CreateUser(user); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Detail: "Email already registered",
		})
		return
	}

	c.JSON(http.StatusOK, user.Info())
}

// RegisterEmployerHandler registers a new employer account.
// @Summary Register new employer
// @Description Email must be unique across both roles
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body employerRegisterInfo true "Registration info, company name is required"
// @Success 200 {object} model.UserInfo "Public projection of the new account"
// @Failure 400 {object} utilities.ErrorResponse "Invalid payload or email already registered"
// @Router /auth/register/employer [post]
func (ah *AuthHandler) RegisterEmployerHandler(c *gin.Context) {
	var info employerRegisterInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Detail: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	user := model.User{
		Email:       info.Email,
		Password:    info.Password,
		Name:        info.Name,
		Role:        model.RoleEmployer,
		CompanyName: info.CompanyName,
	}
	if err := ah.Store.CreateUser(user); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Detail: "Email already registered",
		})
		return
	}

	c.JSON(http.StatusOK, user.Info())
}

// LoginHandler exchanges JSON credentials for an access token.
// @Summary Login and get access token
// @Description Email, password and role must all match the stored account
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body loginInfo true "Credentials for login"
// @Success 200 {object} tokenResponse "Bearer token, 60 minute lifetime"
// @Failure 400 {object} utilities.ErrorResponse "Invalid payload"
// @Failure 401 {object} utilities.ErrorResponse "Credentials do not match"
// @Router /auth/login [post]
func (ah *AuthHandler) LoginHandler(c *gin.Context) {
	var info loginInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Detail: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	ah.issueToken(c, info.Email, info.Password, info.Role)
}

// TokenHandler exchanges an OAuth2 password form for an access token.
// The requested role rides in the first scope, defaulting to jobseeker.
// @Summary Get access token (login)
// @Description Accepts an OAuth2 password grant form; role is taken from the first scope
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Account email"
// @Param password formData string true "Account password"
// @Param scope formData string false "Requested role, defaults to jobseeker"
// @Success 200 {object} tokenResponse "Bearer token, 60 minute lifetime"
// @Failure 400 {object} utilities.ErrorResponse "Missing form fields"
// @Failure 401 {object} utilities.ErrorResponse "Credentials do not match"
// @Router /auth/token [post]
func (ah *AuthHandler) TokenHandler(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Detail: "Username and password must be provided",
		})
		return
	}

	role := model.RoleJobSeeker
	if scopes := strings.Fields(c.PostForm("scope")); len(scopes) > 0 {
		role = scopes[0]
	}

	ah.issueToken(c, username, password, role)
}

// issueToken runs the shared authenticate-then-sign tail of both login
// endpoints. The failure message stays generic across every mismatch.
func (ah *AuthHandler) issueToken(c *gin.Context, email, password, role string) {
	user, ok := ah.Store.Authenticate(email, password, role)
	if !ok {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Detail: "Incorrect email, password, or role",
		})
		return
	}

	accessToken, err := GenerateAccessToken(user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Detail: fmt.Sprintf("Failed to generate access token: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	})
}
