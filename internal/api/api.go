package api

import (
	"errors"

	"github.com/labstack/echo/v4"

	"auth-service/internal/repository"
	"auth-service/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new instance of UserHandler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers a new user --> /signup
func (h *UserHandler) Signup(c echo.Context) error {
	creds := credentials{}
	if err := c.Bind(&creds); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}
	if creds.Email == "" || creds.Password == "" {
		return c.JSON(400, map[string]string{"error": "email and password are required"})
	}

	if _, err := h.userService.Signup(creds.Email, creds.Password); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return c.JSON(409, map[string]string{"error": err.Error()})
		}
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(201, map[string]string{"message": "user created"})
}

// Login logs in a user --> /login
func (h *UserHandler) Login(c echo.Context) error {
	creds := credentials{}
	if err := c.Bind(&creds); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}
	if creds.Email == "" || creds.Password == "" {
		return c.JSON(400, map[string]string{"error": "email and password are required"})
	}

	if err := h.userService.Login(creds.Email, creds.Password); err != nil {
		return c.JSON(401, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, map[string]string{"message": "login successful"})
}
