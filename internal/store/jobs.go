package store

import (
	"sort"
	"strings"

	"jobportal-backend/internal/model"
)

// CreateJob assigns the next job id and stores the posting. Ids are
// monotonic and never reused, even after deletes.
func (s *Storage) CreateJob(job model.Job) model.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastJobID++
	job.ID = s.lastJobID
	s.jobs[job.ID] = job
	return job
}

// GetJob looks up a job by id.
func (s *Storage) GetJob(id int) (model.Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	return job, ok
}

// ListJobs returns all jobs matching the filter, ordered by id.
func (s *Storage) ListJobs(filter model.JobFilter) []model.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []model.Job{}
	for _, job := range s.jobs {
		if matchesFilter(job, filter) {
			matched = append(matched, job)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched
}

// ReplaceJob overwrites the stored record for job.ID.
func (s *Storage) ReplaceJob(job model.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[job.ID]; !ok {
		return ErrJobNotFound
	}
	s.jobs[job.ID] = job
	return nil
}

// DeleteJob removes the record. Applications referencing the job are
// left untouched.
func (s *Storage) DeleteJob(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; !ok {
		return ErrJobNotFound
	}
	delete(s.jobs, id)
	return nil
}

// JobsPostedBy returns every job posted by the given email, ordered by id.
func (s *Storage) JobsPostedBy(email string) []model.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posted := []model.Job{}
	for _, job := range s.jobs {
		if job.PostedBy == email {
			posted = append(posted, job)
		}
	}
	sort.Slice(posted, func(i, j int) bool { return posted[i].ID < posted[j].ID })
	return posted
}

// matchesFilter applies the AND-combined listing filters. The query
// filter matches against title and description concatenated with no
// separator, so a query straddling the boundary can match; callers
// depend on the current responses, so this stays as is.
func matchesFilter(job model.Job, filter model.JobFilter) bool {
	if filter.Query != "" {
		haystack := strings.ToLower(job.Title) + strings.ToLower(job.Description)
		if !strings.Contains(haystack, strings.ToLower(filter.Query)) {
			return false
		}
	}
	if filter.Location != "" && !strings.EqualFold(filter.Location, job.Location) {
		return false
	}
	for _, skill := range filter.Skills {
		if !containsFold(job.Skills, skill) {
			return false
		}
	}
	return true
}

func containsFold(slice []string, s string) bool {
	for _, v := range slice {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
