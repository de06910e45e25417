package mocks

import (
	"context"

	"triptogether/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, msg model.ContactMessage) (*model.ContactReceipt, error) {
	args := m.Called(ctx, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactReceipt), args.Error(1)
}
