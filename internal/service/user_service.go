package service

import (
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"

	"auth-service/internal/entity"
	"auth-service/internal/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrPasswordIncorrect = errors.New("password incorrect")
)

type UserService struct {
	repo *repository.UserStore
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo *repository.UserStore) *UserService {
	return &UserService{repo: repo}
}

// Signup registers a new user with the signup time stamped on the record.
// Returns repository.ErrEmailTaken if the email is already registered.
func (s *UserService) Signup(email, password string) (*entity.User, error) {
	user := &entity.User{
		Email:     email,
		Password:  password,
		CreatedAt: time.Now().Format(time.RFC3339),
	}

	if err := s.repo.CreateUser(user); err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error creating user")
		return nil, err
	}

	logger.Info().Str("email", email).Msg("User registered")
	return user, nil
}

// Login verifies the email and password against the store. Passwords are
// compared as plain strings.
func (s *UserService) Login(email, password string) error {
	user, err := s.repo.GetUserByEmail(email)
	if err != nil {
		return ErrUserNotFound
	}

	if user.Password != password {
		return ErrPasswordIncorrect
	}

	logger.Info().Str("email", email).Msg("User logged in")
	return nil
}
