package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"quoteparse/internal/domain"
)

// MockDocumentLoader is a mock implementation of port.DocumentLoader.
type MockDocumentLoader struct {
	mock.Mock
}

func (m *MockDocumentLoader) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockDocumentLoader) Load(ctx context.Context, data []byte) ([]domain.Page, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Page), args.Error(1)
}
