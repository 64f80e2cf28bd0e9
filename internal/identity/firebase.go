package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"essentia-backend/internal/logger"
)

var (
	ErrInvalidIDToken = errors.New("invalid identity token")
	ErrMissingEmail   = errors.New("identity token has no email")
)

// Verifier turns an identity provider token into the caller's email.
type Verifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (string, error)
}

// tokenVerifier is the subset of *auth.Client used here.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type firebaseVerifier struct {
	client tokenVerifier
}

// NewFirebaseApp initializes the Firebase app shared by auth and storage.
// An empty credentialsFile falls back to application default credentials.
func NewFirebaseApp(ctx context.Context, projectID, credentialsFile, storageBucket string) (*firebase.App, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	cfg := &firebase.Config{ProjectID: projectID, StorageBucket: storageBucket}
	app, err := firebase.NewApp(ctx, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	return app, nil
}

func NewFirebaseVerifier(ctx context.Context, app *firebase.App) (Verifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firebase auth client: %w", err)
	}
	return &firebaseVerifier{client: client}, nil
}

func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	logger.ExternalServiceCall("FirebaseAuth", "VerifyIDToken")

	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		logger.ExternalServiceResult("FirebaseAuth", "VerifyIDToken", err)
		return "", fmt.Errorf("%w: %v", ErrInvalidIDToken, err)
	}

	email, _ := token.Claims["email"].(string)
	email = strings.TrimSpace(email)
	if email == "" {
		logger.ExternalServiceResult("FirebaseAuth", "VerifyIDToken", ErrMissingEmail, "uid", token.UID)
		return "", ErrMissingEmail
	}

	logger.ExternalServiceResult("FirebaseAuth", "VerifyIDToken", nil, "uid", token.UID)
	return email, nil
}
