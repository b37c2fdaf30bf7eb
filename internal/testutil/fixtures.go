package testutil

import (
	"testing"
	"time"

	"jobportal-backend/internal/model"
	"jobportal-backend/internal/store"
)

// SeedPassword is the password every seeded account logs in with.
const SeedPassword = "secret123"

// SeedJobSeeker registers a job seeker account directly in storage.
func SeedJobSeeker(t *testing.T, s *store.Storage, email string, name string) model.User {
	t.Helper()
	user := model.User{
		Email:    email,
		Password: SeedPassword,
		Name:     name,
		Role:     model.RoleJobSeeker,
	}
	if err := s.CreateUser(user); err != nil {
		t.Fatalf("failed to seed job seeker %s: %s", email, err)
	}
	return user
}

// SeedEmployer registers an employer account directly in storage. An
// empty company is stored as is, which lets tests exercise the
// payload-company fallback on job creation.
func SeedEmployer(t *testing.T, s *store.Storage, email string, name string, company string) model.User {
	t.Helper()
	user := model.User{
		Email:       email,
		Password:    SeedPassword,
		Name:        name,
		Role:        model.RoleEmployer,
		CompanyName: company,
	}
	if err := s.CreateUser(user); err != nil {
		t.Fatalf("failed to seed employer %s: %s", email, err)
	}
	return user
}

// SeedJob stores a job posting directly in storage.
func SeedJob(t *testing.T, s *store.Storage, title string, description string, location string, skills []string, postedBy string) model.Job {
	t.Helper()
	return s.CreateJob(model.Job{
		Title:       title,
		Description: description,
		Company:     "Seed Co",
		Location:    location,
		Skills:      skills,
		PostedBy:    postedBy,
		CreatedAt:   time.Now().UTC(),
	})
}
