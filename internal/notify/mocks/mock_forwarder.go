package mocks

import (
	"context"

	"triptogether/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockForwarder struct {
	mock.Mock
}

func (m *MockForwarder) Forward(ctx context.Context, msg model.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockForwarder) Name() string {
	return "mock"
}
