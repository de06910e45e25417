package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"triptogether/internal/storage"
	storeMocks "triptogether/internal/storage/mocks"
)

const cdn = "https://cdn.example.com/files/"

func TestMediaService_Resolve(t *testing.T) {
	tests := []struct {
		name      string
		withStore bool
		ref       string
		want      string
	}{
		{"absolute passthrough", false, "https://img.example.com/a.jpg", "https://img.example.com/a.jpg"},
		{"absolute passthrough with store", true, "https://img.example.com/a.jpg", "https://img.example.com/a.jpg"},
		{"key against base url", false, "oxford.jpg", cdn + "oxford.jpg"},
		{"key against media route", true, "oxford.jpg", "/media/oxford.jpg"},
		{"leading slash trimmed", true, "/gallery/spain.jpg", "/media/gallery/spain.jpg"},
		{"empty", true, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var store storage.Storage
			if tt.withStore {
				store = new(storeMocks.MockStorage)
			}
			svc := NewMediaService(store, cdn)

			assert.Equal(t, tt.want, svc.Resolve(tt.ref))
		})
	}
}

func TestMediaService_Open(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		svc := NewMediaService(nil, cdn)

		_, _, err := svc.Open(ctx, "a.jpg")
		assert.ErrorIs(t, err, ErrMediaDisabled)
		_, err = svc.Presign(ctx, "a.jpg")
		assert.ErrorIs(t, err, ErrMediaDisabled)
		assert.NoError(t, svc.Ping(ctx))
	})

	t.Run("streams object", func(t *testing.T) {
		store := new(storeMocks.MockStorage)
		body := io.NopCloser(strings.NewReader("jpeg-bytes"))
		store.On("Get", ctx, "gallery/a.jpg").Return(body, storage.ObjectInfo{Key: "gallery/a.jpg", Size: 10, ContentType: "image/jpeg"}, nil).Once()
		svc := NewMediaService(store, cdn)

		rc, info, err := svc.Open(ctx, "/gallery/a.jpg")

		require.NoError(t, err)
		defer rc.Close()
		b, _ := io.ReadAll(rc)
		assert.Equal(t, "jpeg-bytes", string(b))
		assert.Equal(t, "image/jpeg", info.ContentType)
		store.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		store := new(storeMocks.MockStorage)
		store.On("Get", ctx, "missing.jpg").Return(nil, storage.ObjectInfo{}, storage.ErrObjectNotFound).Once()
		svc := NewMediaService(store, cdn)

		_, _, err := svc.Open(ctx, "missing.jpg")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("backend error wrapped", func(t *testing.T) {
		store := new(storeMocks.MockStorage)
		boom := errors.New("connection reset")
		store.On("Get", ctx, "a.jpg").Return(nil, storage.ObjectInfo{}, boom).Once()
		svc := NewMediaService(store, cdn)

		_, _, err := svc.Open(ctx, "a.jpg")
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects traversal", func(t *testing.T) {
		store := new(storeMocks.MockStorage)
		svc := NewMediaService(store, cdn)

		_, _, err := svc.Open(ctx, "../secrets.txt")
		assert.ErrorIs(t, err, ErrInvalidKey)
		_, _, err = svc.Open(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidKey)
		store.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestMediaService_Presign(t *testing.T) {
	ctx := context.Background()
	store := new(storeMocks.MockStorage)
	store.On("PresignGet", ctx, "a.jpg", presignExpiry).Return("https://minio/a.jpg?sig", nil).Once()
	svc := NewMediaService(store, cdn)

	u, err := svc.Presign(ctx, "a.jpg")

	require.NoError(t, err)
	assert.Equal(t, "https://minio/a.jpg?sig", u)
	store.AssertExpectations(t)
}

func TestMediaService_Ping(t *testing.T) {
	ctx := context.Background()
	store := new(storeMocks.MockStorage)
	store.On("Ping", ctx).Return(errors.New("bucket gone")).Once()
	svc := NewMediaService(store, cdn)

	assert.EqualError(t, svc.Ping(ctx), "bucket gone")
}
