package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"triptogether/internal/storage"
)

var (
	ErrMediaDisabled = errors.New("media storage is not configured")
	ErrNotFound      = errors.New("media not found")
	ErrInvalidKey    = errors.New("invalid media key")
)

// MediaPrefix is the route under which stored images are served.
const MediaPrefix = "/media/"

const presignExpiry = 15 * time.Minute

// MediaService maps image references in the content table to URLs and serves stored images.
type MediaService interface {
	// Resolve returns the URL the page should use for ref.
	Resolve(ref string) string
	// Open streams a stored image.
	Open(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error)
	// Presign returns a short-lived direct URL for a stored image.
	Presign(ctx context.Context, key string) (string, error)
	// Ping reports whether the backing store is reachable. Nil when storage is disabled.
	Ping(ctx context.Context) error
}

type mediaService struct {
	store   storage.Storage
	baseURL string
}

// NewMediaService constructs a MediaService. store may be nil, in which case references
// resolve against baseURL and Open reports ErrMediaDisabled.
func NewMediaService(store storage.Storage, baseURL string) MediaService {
	return &mediaService{store: store, baseURL: baseURL}
}

func (s *mediaService) Resolve(ref string) string {
	if ref == "" {
		return ""
	}
	if u, err := url.Parse(ref); err == nil && u.IsAbs() {
		return ref
	}
	key := strings.TrimPrefix(ref, "/")
	if s.store != nil {
		return MediaPrefix + key
	}
	return s.baseURL + key
}

func (s *mediaService) Open(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	if s.store == nil {
		return nil, storage.ObjectInfo{}, ErrMediaDisabled
	}
	key, err := cleanKey(key)
	if err != nil {
		return nil, storage.ObjectInfo{}, err
	}
	rc, info, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, storage.ObjectInfo{}, ErrNotFound
		}
		return nil, storage.ObjectInfo{}, fmt.Errorf("get media: %w", err)
	}
	return rc, info, nil
}

func (s *mediaService) Presign(ctx context.Context, key string) (string, error) {
	if s.store == nil {
		return "", ErrMediaDisabled
	}
	key, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	u, err := s.store.PresignGet(ctx, key, presignExpiry)
	if err != nil {
		return "", fmt.Errorf("presign media: %w", err)
	}
	return u, nil
}

func (s *mediaService) Ping(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	return s.store.Ping(ctx)
}

// cleanKey rejects keys that would escape the bucket namespace.
func cleanKey(key string) (string, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" {
		return "", ErrInvalidKey
	}
	for _, seg := range strings.Split(key, "/") {
		if seg == ".." {
			return "", ErrInvalidKey
		}
	}
	return path.Clean(key), nil
}
