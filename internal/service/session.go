package service

import (
	"context"
	"fmt"
	"strings"

	"essentia-backend/internal/identity"
	"essentia-backend/internal/logger"
	"essentia-backend/internal/security"
)

type sessionService struct {
	verifier identity.Verifier
	tokens   security.TokenManager
}

func NewSessionService(verifier identity.Verifier, tokens security.TokenManager) SessionService {
	return &sessionService{
		verifier: verifier,
		tokens:   tokens,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, idToken string) (*Session, error) {
	idToken = strings.TrimSpace(idToken)
	if idToken == "" {
		return nil, ErrMissingFields
	}

	email, err := s.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		logger.WarnContext(ctx, "Identity token rejected", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidIDToken, err)
	}

	token, expiresAt, err := s.tokens.GenerateAccessToken(email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	logger.InfoContext(ctx, "Session created", "email", email)
	return &Session{AccessToken: token, Email: email, ExpiresAt: expiresAt}, nil
}
