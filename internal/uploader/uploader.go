// Package uploader pushes finished report artifacts to cloud object storage.
package uploader

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// Uploader stores a local artifact under a destination key.
type Uploader interface {
	Upload(ctx context.Context, localPath, key string) error
}

// UploadReports copies every local file to the uploader, keyed under the run
// prefix. It stops at the first failure.
func UploadReports(ctx context.Context, up Uploader, runID string, localPaths []string) error {
	for _, p := range localPaths {
		key := path.Join("reports", runID, filepath.Base(p))
		if err := up.Upload(ctx, p, key); err != nil {
			return fmt.Errorf("failed to upload %s: %w", filepath.Base(p), err)
		}
	}
	return nil
}

func readFile(p string) ([]byte, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}
	return data, nil
}
