// Package model contains the data records and request/response shapes
// shared across the API.
package model

const (
	// RoleJobSeeker marks users that browse and apply to jobs
	RoleJobSeeker = "jobseeker"
	// RoleEmployer marks users that post and manage jobs
	RoleEmployer = "employer"
)

// User is a registered account, keyed by email in the user table.
// Passwords are stored as provided and compared verbatim on login.
type User struct {
	Email       string `json:"email"`
	Password    string `json:"-"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	CompanyName string `json:"company_name,omitempty"`
	Resume      string `json:"resume,omitempty"`
}

// UserInfo is the public projection of a user returned by registration
// and dashboard endpoints.
type UserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Info strips a user down to its public projection.
func (u User) Info() UserInfo {
	return UserInfo{
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}
