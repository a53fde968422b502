// Package storage stores uploaded media either on the local filesystem or in
// an S3 bucket and hands back the public URL.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Uploader persists one uploaded file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}

// objectName prefixes the original filename with a nanosecond timestamp.
// Concurrent uploads rely on this naming alone to avoid collisions.
func objectName(name string) string {
	base := filepath.Base(name)
	base = strings.ReplaceAll(base, " ", "-")
	return fmt.Sprintf("%d-%s", time.Now().UnixNano(), base)
}

// LocalStore writes uploads to a shared directory served as static files.
type LocalStore struct {
	Dir     string
	BaseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{Dir: dir, BaseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (s *LocalStore) Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	obj := objectName(name)
	f, err := os.Create(filepath.Join(s.Dir, obj))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return s.BaseURL + "/" + obj, nil
}
