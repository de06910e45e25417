package mocks

import (
	"context"
	"io"

	"triptogether/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Resolve(ref string) string {
	args := m.Called(ref)
	return args.String(0)
}

func (m *MockMediaService) Open(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Get(1).(storage.ObjectInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}

func (m *MockMediaService) Presign(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockMediaService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
