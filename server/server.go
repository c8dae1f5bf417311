// Package server exposes the task-tracking HTTP surface: signup, login, and
// the token-protected todo stub.
package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-tasks/auth"
	"github.com/goliatone/go-tasks/config"
	"github.com/goliatone/go-tasks/internal/logutil"
	"github.com/goliatone/go-tasks/middleware/jwtware"
)

type Server struct {
	app    *fiber.App
	cfg    *config.Config
	auther *auth.Auther
	logger zerolog.Logger
}

func New(cfg *config.Config, repo auth.RepositoryManager, logger zerolog.Logger) *Server {
	repo.MustValidate()

	s := &Server{
		cfg:    cfg,
		logger: logger.With().Str("component", "server").Logger(),
	}

	s.auther = auth.NewAuthenticator(repo, cfg).
		WithLogger(logutil.NewAdapter(logger, "auth"))

	s.app = fiber.New(fiber.Config{
		AppName:               "go-tasks",
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})

	s.app.Use(recover.New())
	s.app.Use(cors.New())
	s.app.Use(s.requestLogger())

	s.registerRoutes()

	return s
}

// App exposes the fiber app, mostly for tests driving app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Auther exposes the authenticator backing the HTTP surface.
func (s *Server) Auther() *auth.Auther {
	return s.auther
}

func (s *Server) Listen() error {
	s.logger.Info().Str("addr", s.cfg.ServerAddr).Msg("starting HTTP server")
	return s.app.Listen(s.cfg.ServerAddr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) registerRoutes() {
	s.app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("go-tasks API")
	})

	protected := jwtware.New(jwtware.Config{
		TokenValidator: tokenValidator{s.auther.TokenService()},
		ContextKey:     s.cfg.GetContextKey(),
		AuthScheme:     s.cfg.GetAuthScheme(),
		SuccessHandler: claimsToUserContext(s.cfg.GetContextKey()),
	})

	api := s.app.Group("/api")
	api.Post("/signup", s.Signup)
	api.Post("/login", s.Login)
	api.Post("/add-todo", protected, s.AddTodo)
}

// tokenValidator adapts auth.TokenService to the middleware contract.
type tokenValidator struct {
	ts auth.TokenService
}

func (v tokenValidator) Validate(raw string) (jwtware.AuthClaims, error) {
	claims, err := v.ts.Validate(raw)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// claimsToUserContext copies validated claims out of fiber locals into the
// request's user context, so handlers and anything they call read the session
// through auth.GetClaims.
func claimsToUserContext(contextKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if claims, ok := jwtware.ClaimsFromContext(c, contextKey); ok {
			if session, ok := claims.(auth.AuthClaims); ok {
				c.SetUserContext(auth.WithClaimsContext(c.UserContext(), session))
			}
		}
		return c.Next()
	}
}

func (s *Server) requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		s.logger.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")

		return err
	}
}

// errorHandler is the single place expected failures become 4xx payloads and
// everything else collapses into a generic 500. No internals reach clients.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	var richErr *errors.Error
	if errors.As(err, &richErr) {
		if len(richErr.Metadata) > 0 {
			s.logger.Debug().
				Str("details", print.MaybePrettyJSON(richErr.Metadata)).
				Msg("error metadata")
		}

		switch richErr.Category {
		case errors.CategoryAuth, errors.CategoryConflict, errors.CategoryValidation, errors.CategoryBadInput:
			return c.Status(richErr.Code).JSON(fiber.Map{
				"message": richErr.Message,
			})
		}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"message": fiberErr.Message,
		})
	}

	s.logger.Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("unexpected server error")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Something went wrong",
	})
}
