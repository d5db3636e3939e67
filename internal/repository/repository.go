package repository

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"auth-service/internal/entity"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")
)

// UserStore persists the full user list as one JSON array on disk. Every
// write rewrites the whole file. The mutex serializes read-modify-write
// sequences across handlers; concurrent writers from other processes are
// not protected against.
type UserStore struct {
	mu   sync.Mutex
	path string
}

func NewUserStore(path string) *UserStore {
	return &UserStore{path: path}
}

// Load returns the persisted user list. A missing file is created empty,
// and empty or corrupt content yields an empty list. Read failures are
// logged and masked as empty data.
func (s *UserStore) Load() []entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// Save overwrites the store file with the full list. Write failures are
// logged; the caller proceeds as if the write succeeded.
func (s *UserStore) Save(users []entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveLocked(users)
}

// CreateUser appends a new user unless the email is already registered.
// Email comparison is exact and case-sensitive.
func (s *UserStore) CreateUser(user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.loadLocked()
	for _, u := range users {
		if u.Email == user.Email {
			return ErrEmailTaken
		}
	}
	s.saveLocked(append(users, *user))
	return nil
}

// GetUserByEmail returns the user with the exact given email, or
// ErrUserNotFound.
func (s *UserStore) GetUserByEmail(email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.loadLocked() {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *UserStore) loadLocked() []entity.User {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.saveLocked([]entity.User{})
			return []entity.User{}
		}
		logger.Error().Err(err).Str("path", s.path).Msg("Error reading user store")
		return []entity.User{}
	}
	if len(b) == 0 {
		logger.Warn().Str("path", s.path).Msg("User store is empty")
		return []entity.User{}
	}

	var users []entity.User
	if err := json.Unmarshal(b, &users); err != nil {
		logger.Error().Err(err).Str("path", s.path).Msg("Error parsing user store")
		return []entity.User{}
	}
	return users
}

func (s *UserStore) saveLocked(users []entity.User) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		logger.Error().Err(err).Str("path", s.path).Msg("Error creating store directory")
		return
	}

	b, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		logger.Error().Err(err).Msg("Error serializing user store")
		return
	}
	b = append(b, '\n')

	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		logger.Error().Err(err).Str("path", s.path).Msg("Error writing user store")
	}
}
