// Package storage persists uploaded profile and product images on local
// disk. Rows only ever hold the public-relative path (for example
// "/Images/<uuid>.png"); absolute URLs are produced at read time and
// normalized back to relative form before writes.
package storage

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/kisansetu/kisansetu-server/pkg/config"
)

const dataURIPrefix = "data:image"

// ImageStore writes decoded uploads under a single directory and maps
// between stored relative paths and public URLs.
type ImageStore struct {
	dir        string
	publicPath string
	baseURL    string
	maxBytes   int64
}

// NewImageStore ensures the media directory exists and returns a store bound
// to it.
func NewImageStore(cfg config.MediaConfig) (*ImageStore, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("media dir is required")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}

	publicPath := cfg.PublicPath
	if publicPath == "" {
		publicPath = "/Images"
	}
	if !strings.HasPrefix(publicPath, "/") {
		publicPath = "/" + publicPath
	}

	maxBytes := int64(cfg.MaxUploadMB) * 1024 * 1024
	if maxBytes <= 0 {
		maxBytes = 10 * 1024 * 1024
	}

	return &ImageStore{
		dir:        cfg.Dir,
		publicPath: strings.TrimSuffix(publicPath, "/"),
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		maxBytes:   maxBytes,
	}, nil
}

// IsDataURI reports whether the value is an inline base64 image upload.
func IsDataURI(value string) bool {
	return strings.HasPrefix(value, dataURIPrefix)
}

// Ingest converts an incoming image value to the relative path stored in the
// database. Inline data URIs are decoded and written to disk; absolute URLs
// pointing at this store are reduced to their relative path; anything else
// passes through unchanged.
func (s *ImageStore) Ingest(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if IsDataURI(value) {
		return s.saveDataURI(value)
	}
	return s.ToRelative(value), nil
}

func (s *ImageStore) saveDataURI(value string) (string, error) {
	comma := strings.Index(value, ",")
	if comma < 0 {
		return "", fmt.Errorf("malformed image data uri")
	}

	payload := value[comma+1:]
	if int64(base64.StdEncoding.DecodedLen(len(payload))) > s.maxBytes {
		return "", fmt.Errorf("image exceeds %d byte upload limit", s.maxBytes)
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("decode image payload: %w", err)
	}

	name := uuid.NewString() + ".png"
	if err := os.WriteFile(filepath.Join(s.dir, name), raw, 0o644); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}

	return path.Join(s.publicPath, name), nil
}

// ToRelative strips the scheme and host from URLs that point into this
// store, so the stored value stays host independent.
func (s *ImageStore) ToRelative(value string) string {
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		if parsed, err := url.Parse(value); err == nil && parsed.Path != "" {
			return parsed.Path
		}
	}
	return value
}

// PublicURL joins the configured base URL with a stored relative path. With
// no base URL configured the relative path is returned as is.
func (s *ImageStore) PublicURL(relative string) string {
	if relative == "" || s.baseURL == "" {
		return relative
	}
	if !strings.HasPrefix(relative, "/") {
		relative = "/" + relative
	}
	return s.baseURL + relative
}

// ReadDataURI loads the file behind a stored relative path and re-encodes
// it as an inline data URI. Missing files yield an empty string so read
// paths degrade instead of failing.
func (s *ImageStore) ReadDataURI(relative string) (string, error) {
	name := path.Base(relative)
	if name == "" || name == "." || name == "/" {
		return "", nil
	}
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read image file: %w", err)
	}
	return dataURIPrefix + "/png;base64," + base64.StdEncoding.EncodeToString(raw), nil
}

// Remove deletes the file behind a stored relative path. Missing files are
// not an error.
func (s *ImageStore) Remove(relative string) error {
	name := path.Base(relative)
	if name == "" || name == "." || name == "/" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image file: %w", err)
	}
	return nil
}
