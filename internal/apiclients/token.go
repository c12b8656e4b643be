package apiclients

import (
	"fmt"
	"os"
	"strings"
)

// ReadBearerToken reads the keymanager API token the validating client writes
// to disk. Surrounding whitespace is ignored; an empty file is an error.
func ReadBearerToken(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", fmt.Errorf("token file %s is empty", path)
	}
	return token, nil
}
