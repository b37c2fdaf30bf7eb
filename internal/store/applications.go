package store

import (
	"sort"

	"jobportal-backend/internal/model"
)

// CreateApplication assigns the next application id and inserts the
// record, unless the seeker already applied to the job. The duplicate
// scan and the insert run under the same lock, so two concurrent
// applies for one (job, seeker) pair cannot both succeed.
func (s *Storage) CreateApplication(app model.Application) (model.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.applications {
		if existing.JobID == app.JobID && existing.SeekerEmail == app.SeekerEmail {
			return model.Application{}, ErrDuplicateApplication
		}
	}

	s.lastAppID++
	app.ID = s.lastAppID
	s.applications[app.ID] = app
	return app, nil
}

// GetApplication looks up an application by id.
func (s *Storage) GetApplication(id int) (model.Application, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	app, ok := s.applications[id]
	return app, ok
}

// ApplicationsBySeeker returns every application submitted by the given
// email, ordered by id.
func (s *Storage) ApplicationsBySeeker(email string) []model.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()

	apps := []model.Application{}
	for _, app := range s.applications {
		if app.SeekerEmail == email {
			apps = append(apps, app)
		}
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].ID < apps[j].ID })
	return apps
}

// ApplicationsByJob returns every application against the given job,
// ordered by id.
func (s *Storage) ApplicationsByJob(jobID int) []model.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()

	apps := []model.Application{}
	for _, app := range s.applications {
		if app.JobID == jobID {
			apps = append(apps, app)
		}
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].ID < apps[j].ID })
	return apps
}

// SetApplicationStatus overwrites the status unconditionally and
// returns the updated record.
func (s *Storage) SetApplicationStatus(id int, status string) (model.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	app, ok := s.applications[id]
	if !ok {
		return model.Application{}, ErrApplicationNotFound
	}
	app.Status = status
	s.applications[id] = app
	return app, nil
}
