package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"triptogether/internal/logger"
	"triptogether/internal/model"
	notifyMocks "triptogether/internal/notify/mocks"
)

func TestContactService_Submit(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("MSK", 3*3600))

	tests := []struct {
		name          string
		msg           model.ContactMessage
		setupMocks    func(f *notifyMocks.MockForwarder)
		wantForwarded bool
	}{
		{
			name: "forwarded and trimmed",
			msg:  model.ContactMessage{Name: "  Anna ", Email: " anna@example.com ", Message: " Hi \n", Locale: "en"},
			setupMocks: func(f *notifyMocks.MockForwarder) {
				f.On("Forward", mock.Anything, model.ContactMessage{
					Name: "Anna", Email: "anna@example.com", Message: "Hi", Locale: "en",
				}).Return(nil).Once()
			},
			wantForwarded: true,
		},
		{
			name: "forwarder failure still succeeds",
			msg:  model.ContactMessage{Name: "Maria", Message: "visa?"},
			setupMocks: func(f *notifyMocks.MockForwarder) {
				f.On("Forward", mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()
			},
			wantForwarded: false,
		},
		{
			name: "empty form is accepted",
			msg:  model.ContactMessage{},
			setupMocks: func(f *notifyMocks.MockForwarder) {
				f.On("Forward", mock.Anything, model.ContactMessage{}).Return(nil).Once()
			},
			wantForwarded: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fwd := new(notifyMocks.MockForwarder)
			tt.setupMocks(fwd)

			svc := NewContactService(fwd, logger.New(&bytes.Buffer{}, "debug", nil)).(*contactService)
			svc.now = func() time.Time { return fixed }

			receipt, err := svc.Submit(context.Background(), tt.msg)

			require.NoError(t, err)
			require.NotNil(t, receipt)
			_, parseErr := uuid.Parse(receipt.ID)
			assert.NoError(t, parseErr)
			assert.Equal(t, tt.wantForwarded, receipt.Forwarded)
			assert.Equal(t, fixed.UTC(), receipt.ReceivedAt)
			fwd.AssertExpectations(t)
		})
	}
}

func TestContactService_DefaultIsNoop(t *testing.T) {
	var buf bytes.Buffer
	svc := NewContactService(nil, logger.New(&buf, "info", nil))

	receipt, err := svc.Submit(context.Background(), model.ContactMessage{Name: "Dmitry", Message: "hello"})

	require.NoError(t, err)
	assert.False(t, receipt.Forwarded)
	assert.Contains(t, buf.String(), "contact message received")
}
