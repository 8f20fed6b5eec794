// Package identity wraps the Firebase Admin SDK used to verify client ID tokens.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// ErrUnavailable is returned when the SDK was not initialised at start-up.
var ErrUnavailable = errors.New("identity provider unavailable")

// Firebase is the process-wide identity handle. The zero value is a
// disabled handle.
type Firebase struct {
	client *auth.Client
	logger *zap.Logger
}

// NewFirebase initialises the Admin SDK from a service account file.
// Start-up never fails on bad credentials: the problem is logged and the
// returned handle reports Available() == false.
func NewFirebase(ctx context.Context, credentialsPath string, logger *zap.Logger) *Firebase {
	if logger == nil {
		logger = zap.NewNop()
	}
	f := &Firebase{logger: logger.Named("firebase")}

	if credentialsPath == "" {
		f.logger.Warn("Firebase credentials path not set, identity features disabled")
		return f
	}
	if _, err := os.Stat(credentialsPath); err != nil {
		f.logger.Warn("Firebase credentials file not accessible, identity features disabled",
			zap.String("credentials_path", credentialsPath), zap.Error(err))
		return f
	}

	if err := checkServiceAccount(credentialsPath); err != nil {
		f.logger.Warn("Firebase credentials are not a usable service account, identity features disabled",
			zap.String("credentials_path", credentialsPath), zap.Error(err))
		return f
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		f.logger.Warn("Failed to initialise Firebase app, identity features disabled",
			zap.String("credentials_path", credentialsPath), zap.Error(err))
		return f
	}
	client, err := app.Auth(ctx)
	if err != nil {
		f.logger.Warn("Failed to get Firebase Auth client, identity features disabled", zap.Error(err))
		return f
	}

	f.client = client
	f.logger.Info("Firebase Admin SDK initialised", zap.String("credentials_path", credentialsPath))
	return f
}

// Available reports whether tokens can be verified.
func (f *Firebase) Available() bool {
	return f != nil && f.client != nil
}

// VerifyIDToken checks a client ID token and returns its uid.
func (f *Firebase) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	if !f.Available() {
		return "", ErrUnavailable
	}
	token, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("verify id token: %w", err)
	}
	return token.UID, nil
}

// checkServiceAccount rejects files the SDK would accept but cannot verify
// tokens with, such as user credentials or a key without a project.
func checkServiceAccount(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var key struct {
		Type      string `json:"type"`
		ProjectID string `json:"project_id"`
	}
	if err := json.Unmarshal(data, &key); err != nil {
		return fmt.Errorf("malformed credentials file: %w", err)
	}
	if key.Type != "service_account" {
		return fmt.Errorf("credentials type is %q, want \"service_account\"", key.Type)
	}
	if key.ProjectID == "" {
		return errors.New("credentials have no project_id")
	}
	return nil
}
