package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// allowedExtensions is the fixed set of résumé file types accepted from
// volunteer applications.
var allowedExtensions = map[string]struct{}{
	"pdf":  {},
	"doc":  {},
	"docx": {},
}

// ResumeStore persists volunteer résumés onto the local filesystem under a
// single upload directory.
type ResumeStore struct {
	baseDir string
}

// NewResumeStore initializes a ResumeStore rooted at baseDir, creating the
// directory when missing.
func NewResumeStore(baseDir string) (*ResumeStore, error) {
	baseDir = strings.TrimSpace(baseDir)
	if baseDir == "" {
		return nil, errors.New("storage: base dir is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure base dir: %w", err)
	}
	return &ResumeStore{baseDir: baseDir}, nil
}

// BaseDir returns the configured upload directory.
func (s *ResumeStore) BaseDir() string {
	if s == nil {
		return ""
	}
	return s.baseDir
}

// Save writes a résumé for the named applicant and returns the stored path.
// Files whose extension is outside the allow-set are skipped without error;
// attached reports whether anything was written. Stored names carry the
// applicant and a second-resolution timestamp; an exclusive create with a
// random-suffix retry keeps same-second resubmissions from overwriting each
// other.
func (s *ResumeStore) Save(ctx context.Context, applicant, filename string, data []byte) (path string, attached bool, err error) {
	if s == nil {
		return "", false, errors.New("storage: no store configured")
	}
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if !Allowed(filename) {
		return "", false, nil
	}

	stamp := time.Now().Format("20060102150405")
	base := sanitizeName(filepath.Base(filename))
	prefix := sanitizeName(applicant) + "_" + stamp
	candidate := prefix + "_" + base

	for attempt := 0; attempt < 5; attempt++ {
		full := filepath.Join(s.baseDir, candidate)
		f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			if os.IsExist(err) {
				candidate = prefix + "_" + uuid.NewString()[:8] + "_" + base
				continue
			}
			return "", false, fmt.Errorf("storage: create resume: %w", err)
		}
		if _, err := f.Write(data); err != nil {
			_ = f.Close()
			return "", false, fmt.Errorf("storage: write resume: %w", err)
		}
		if err := f.Close(); err != nil {
			return "", false, fmt.Errorf("storage: close resume: %w", err)
		}
		return full, true, nil
	}
	return "", false, errors.New("storage: could not allocate a unique resume name")
}

// Allowed reports whether the filename carries an accepted résumé extension.
func Allowed(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	ext := strings.ToLower(filename[idx+1:])
	_, ok := allowedExtensions[ext]
	return ok
}

// sanitizeName strips path separators and any rune outside the safe
// filename alphabet, mapping spaces to underscores.
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	out := b.String()
	out = strings.TrimLeft(out, ".")
	if out == "" {
		out = "file"
	}
	return out
}
