package auth

import (
	"log/slog"

	"stellarforge/internal/shared/config"
	"stellarforge/internal/shared/errors"

	"golang.org/x/crypto/bcrypt"
)

// Service authenticates the single static operator account against the
// configured username and bcrypt password hash; there is no player
// registry or OAuth provider in this deployment.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	logger.Debug("Initializing auth service")
	return &Service{logger: logger}
}

// Login validates credentials and, on success, mints an operator JWT.
func (s *Service) Login(username, password string) (*LoginResponse, error) {
	logger := s.logger.With("component", "auth_service", "operation", "login", "username", username)

	cfg := config.GlobalConfig
	if cfg.Operator.PasswordHash == "" {
		logger.Error("Operator login attempted but OPERATOR_PASSWORD_HASH is unset")
		return nil, errors.WrapInternal("operator account is not configured", nil)
	}

	if username != cfg.Operator.Username {
		logger.Warn("Login attempt with unknown username")
		return nil, errors.Unauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cfg.Operator.PasswordHash), []byte(password)); err != nil {
		logger.Warn("Login attempt with incorrect password")
		return nil, errors.Unauthorized("invalid credentials")
	}

	token, expiresAt, err := GenerateJWT(username)
	if err != nil {
		logger.Error("Failed to generate token", "error", err)
		return nil, errors.WrapInternal("failed to generate token", err)
	}

	logger.Info("Operator login successful")
	return &LoginResponse{Token: token, Username: username, ExpiresAt: expiresAt}, nil
}
