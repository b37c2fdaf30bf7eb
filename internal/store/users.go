package store

import "jobportal-backend/internal/model"

// CreateUser inserts a user keyed by email. Emails are unique across
// both roles.
func (s *Storage) CreateUser(user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Email]; exists {
		return ErrDuplicateEmail
	}
	s.users[user.Email] = user
	return nil
}

// GetUser looks up a user by email.
func (s *Storage) GetUser(email string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	return user, ok
}

// Authenticate returns the user only when the email exists, the
// password matches exactly and the role matches. Callers must not leak
// which check failed.
func (s *Storage) Authenticate(email, password, role string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok || user.Password != password || user.Role != role {
		return model.User{}, false
	}
	return user, true
}
