package storage

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
)

// Config holds storage configuration
type Config struct {
	Type      string // "mock" or "firebase"
	UploadDir string // Directory for mock storage
	BaseURL   string // Server base URL for generating mock URLs
}

// Open builds the backend selected by cfg.Type. app is only used for "firebase".
func Open(ctx context.Context, cfg Config, app *firebase.App) (StorageInterface, error) {
	switch cfg.Type {
	case "", "mock":
		return NewMockStorageService(cfg.BaseURL, cfg.UploadDir)
	case "firebase":
		if app == nil {
			return nil, fmt.Errorf("firebase storage requires a firebase app")
		}
		client, err := app.Storage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create firebase storage client: %w", err)
		}
		return NewFirebaseStorage(client), nil
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
