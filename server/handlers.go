package server

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"

	"github.com/goliatone/go-tasks/auth"
)

// SignupRequest payload
type SignupRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	UserType string `json:"userType" form:"userType"`
}

func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
		validation.Field(&r.UserType, validation.In(auth.UserTypeNormal, auth.UserTypePremium)),
	)
}

// LoginRequest payload
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// AuthResponse is the success body for signup and login
type AuthResponse struct {
	Token string          `json:"token"`
	User  auth.PublicUser `json:"user"`
}

func (s *Server) Signup(c *fiber.Ctx) error {
	payload := SignupRequest{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
		})
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	token, user, err := s.auther.Signup(c.Context(), auth.RegisterUserMessage{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
		UserType: payload.UserType,
	})
	if err != nil {
		return err
	}

	return c.JSON(AuthResponse{Token: token, User: user.Public()})
}

func (s *Server) Login(c *fiber.Ctx) error {
	payload := LoginRequest{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
		})
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	token, user, err := s.auther.Login(c.Context(), payload.Email, payload.Password)
	if err != nil {
		return err
	}

	return c.JSON(AuthResponse{Token: token, User: user.Public()})
}

// AddTodo is the protected stub endpoint. Nothing is persisted; the claims
// are only read to attribute the request.
func (s *Server) AddTodo(c *fiber.Ctx) error {
	claims, ok := auth.GetClaims(c.UserContext())
	if !ok {
		return errors.New("no session claims on protected route", errors.CategoryInternal)
	}

	s.logger.Debug().
		Str("user_id", claims.UserID()).
		Str("email", claims.Email()).
		Msg("add todo requested")

	return c.JSON(fiber.Map{
		"message": "Hello from add todo",
	})
}
