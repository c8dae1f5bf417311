// Package jwtware gates fiber routes behind bearer-token validation.
package jwtware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ErrJWTMissing is returned when the request carries no bearer token at all.
// A present-but-bad token surfaces as the validator's own error instead.
var ErrJWTMissing = errors.New("missing or malformed JWT")

// TokenValidator interface for validating tokens without import cycles.
// This mirrors the TokenService.Validate method from the auth package.
type TokenValidator interface {
	Validate(tokenString string) (AuthClaims, error)
}

// AuthClaims interface for structured claims without import cycles.
// This mirrors the AuthClaims interface from the auth package.
type AuthClaims interface {
	Subject() string
	UserID() string
	Email() string
	Name() string
	UserType() string
}

type Config struct {
	// Filter skips the middleware when it returns true
	Filter func(*fiber.Ctx) bool
	// SuccessHandler runs after claims are stored; defaults to ctx.Next()
	SuccessHandler fiber.Handler
	// ErrorHandler decides the response for missing or invalid tokens
	ErrorHandler func(*fiber.Ctx, error) error
	// ContextKey is where validated claims land in ctx.Locals
	ContextKey string
	// AuthScheme is the expected Authorization scheme prefix
	AuthScheme string
	// TokenValidator is required for token validation
	TokenValidator TokenValidator
}

// New returns a fiber handler that extracts a bearer token from the
// Authorization header, validates it, and stores the claims in the request
// locals. Claims are trusted verbatim for the token's lifetime; no user
// lookup happens here.
func New(config ...Config) fiber.Handler {
	cfg := GetDefaultConfig(config...)

	return func(ctx *fiber.Ctx) error {
		if cfg.Filter != nil && cfg.Filter(ctx) {
			return ctx.Next()
		}

		raw, err := ExtractRawToken(ctx, cfg.AuthScheme)
		if err != nil {
			return cfg.ErrorHandler(ctx, err)
		}

		claims, err := cfg.TokenValidator.Validate(raw)
		if err != nil {
			return cfg.ErrorHandler(ctx, err)
		}

		ctx.Locals(cfg.ContextKey, claims)

		return cfg.SuccessHandler(ctx)
	}
}

// ExtractRawToken pulls the raw token out of the Authorization header
func ExtractRawToken(ctx *fiber.Ctx, authScheme string) (string, error) {
	header := ctx.Get(fiber.HeaderAuthorization)
	if header == "" {
		return "", ErrJWTMissing
	}

	if authScheme == "" {
		return header, nil
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], authScheme) || parts[1] == "" {
		return "", ErrJWTMissing
	}

	return parts[1], nil
}

func GetDefaultConfig(config ...Config) (cfg Config) {
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.TokenValidator == nil {
		panic("AUTH: JWT middleware configuration: TokenValidator is required.")
	}

	if cfg.SuccessHandler == nil {
		cfg.SuccessHandler = func(ctx *fiber.Ctx) error {
			return ctx.Next()
		}
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
			if errors.Is(err, ErrJWTMissing) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"message": "Access Denied",
				})
			}
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid Token",
			})
		}
	}

	if cfg.ContextKey == "" {
		cfg.ContextKey = "user"
	}

	if cfg.AuthScheme == "" {
		cfg.AuthScheme = "Bearer"
	}

	return cfg
}

// ClaimsFromContext returns the validated claims a successful middleware
// pass stored under key
func ClaimsFromContext(ctx *fiber.Ctx, key string) (AuthClaims, bool) {
	if key == "" {
		key = "user"
	}
	raw := ctx.Locals(key)
	if raw == nil {
		return nil, false
	}
	claims, ok := raw.(AuthClaims)
	return claims, ok
}
