package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// secretsDir is where Docker mounts secrets.
var secretsDir = "/run/secrets"

// ReadSecret reads a Docker secret by name. Empty files are an error.
func ReadSecret(secretName string) (string, error) {
	filePath := filepath.Join(secretsDir, secretName)
	secretBytes, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read secret file %s: %w", filePath, err)
	}
	secret := strings.TrimSpace(string(secretBytes))
	if secret == "" {
		return "", fmt.Errorf("secret file %s is empty", filePath)
	}
	return secret, nil
}
