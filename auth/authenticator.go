package auth

import (
	"context"

	"github.com/goliatone/go-errors"
)

// Auther orchestrates signup and login against the credential store,
// password hasher, and token service
type Auther struct {
	provider     IdentityProvider
	register     *RegisterUserHandler
	tokenService TokenService
	logger       Logger
}

var _ Authenticator = (*Auther)(nil)

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(repo RepositoryManager, cfg Config) *Auther {
	tokenService := NewTokenService(
		[]byte(cfg.GetSigningKey()),
		cfg.GetTokenExpiration(),
		cfg.GetIssuer(),
		cfg.GetAudience(),
		defLogger{},
	)

	return &Auther{
		provider:     NewUserProvider(repo.Users()),
		register:     NewRegisterUserHandler(repo),
		tokenService: tokenService,
		logger:       defLogger{},
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	s.logger = logger
	return s
}

// WithIdentityProvider swaps the credential lookup used for login
func (s *Auther) WithIdentityProvider(provider IdentityProvider) *Auther {
	s.provider = provider
	return s
}

// TokenService returns the TokenService instance used by this Authenticator
func (s *Auther) TokenService() TokenService {
	return s.tokenService
}

// Login verifies credentials and issues a session token. Unknown emails and
// wrong passwords surface as the same ErrInvalidCredentials.
func (s *Auther) Login(ctx context.Context, identifier, password string) (string, *User, error) {
	user, err := s.provider.VerifyIdentity(ctx, identifier, password)
	if err != nil {
		if errors.Is(err, ErrMismatchedHashAndPassword) {
			s.logger.Info("Login rejected", "identifier", identifier)
			return "", nil, ErrInvalidCredentials
		}
		s.logger.Error("Login verify identity error", "error", err)
		return "", nil, err
	}

	token, err := s.tokenService.Generate(user.AsIdentity())
	if err != nil {
		s.logger.Error("Login token generation error", "error", err)
		return "", nil, err
	}

	return token, user, nil
}

// Signup registers a new user and issues their first session token
func (s *Auther) Signup(ctx context.Context, msg RegisterUserMessage) (string, *User, error) {
	user, err := s.register.Execute(ctx, msg)
	if err != nil {
		if errors.Is(err, ErrDuplicateUser) {
			s.logger.Info("Signup rejected, email taken", "email", msg.Email)
			return "", nil, err
		}
		s.logger.Error("Signup registration error", "error", err)
		return "", nil, err
	}

	token, err := s.tokenService.Generate(user.AsIdentity())
	if err != nil {
		s.logger.Error("Signup token generation error", "error", err)
		return "", nil, err
	}

	return token, user, nil
}

// SessionFromToken validates a raw token and returns its claims
func (s *Auther) SessionFromToken(raw string) (AuthClaims, error) {
	claims, err := s.tokenService.Validate(raw)
	if err != nil {
		s.logger.Debug("SessionFromToken validation failed", "error", err)
		return nil, err
	}

	return claims, nil
}
