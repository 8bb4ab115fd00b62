package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"quoteparse/internal/domain"
	"quoteparse/internal/service"
)

// MockExtractionService is a mock implementation of service.ExtractionService.
type MockExtractionService struct {
	mock.Mock
}

func (m *MockExtractionService) Process(ctx context.Context, input service.ProcessInput) (*domain.ExtractionResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractionResult), args.Error(1)
}

func (m *MockExtractionService) DetectAndExtract(ctx context.Context, data []byte) (*domain.ExtractionResult, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractionResult), args.Error(1)
}

func (m *MockExtractionService) ManualExtract(ctx context.Context, data []byte, startMarker, endMarker string) (*domain.ExtractionResult, error) {
	args := m.Called(ctx, data, startMarker, endMarker)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractionResult), args.Error(1)
}

func (m *MockExtractionService) DumpPages(ctx context.Context, data []byte) ([]domain.PageDump, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PageDump), args.Error(1)
}

func (m *MockExtractionService) Vendors() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}
