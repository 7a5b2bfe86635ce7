package services_test

import (
	"context"
	"io"

	"github.com/SscSPs/statement_ingestion/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// MockCardRepository is a mock type for the CardReader interface
type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) FindCardsByLastFour(ctx context.Context, lastFour string, accountID string) ([]domain.Card, error) {
	args := m.Called(ctx, lastFour, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Card), args.Error(1)
}

// MockMappingRepository is a mock type for the MappingRepositoryFacade interface
type MockMappingRepository struct {
	mock.Mock
}

func (m *MockMappingRepository) ListMappingsByAccount(ctx context.Context, accountID string) ([]domain.DescriptionMapping, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DescriptionMapping), args.Error(1)
}

func (m *MockMappingRepository) FindMappingByID(ctx context.Context, mappingID string) (*domain.DescriptionMapping, error) {
	args := m.Called(ctx, mappingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DescriptionMapping), args.Error(1)
}

func (m *MockMappingRepository) FindMappingByNormalizedDescription(ctx context.Context, accountID, normalizedDescription string) (*domain.DescriptionMapping, error) {
	args := m.Called(ctx, accountID, normalizedDescription)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DescriptionMapping), args.Error(1)
}

func (m *MockMappingRepository) SaveMappingsInTx(ctx context.Context, tx pgx.Tx, mappings []domain.DescriptionMapping) ([]string, error) {
	args := m.Called(ctx, tx, mappings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockMappingRepository) UpdateMappingInTx(ctx context.Context, tx pgx.Tx, mapping domain.DescriptionMapping) error {
	args := m.Called(ctx, tx, mapping)
	return args.Error(0)
}

// MockReversalService is a mock type for the ReversalSvc interface
type MockReversalService struct {
	mock.Mock
}

func (m *MockReversalService) Detect(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockReversalService) DetectForAccount(ctx context.Context, accountID, transactionID, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, accountID, transactionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// MockTextExtractor is a mock type for the TextExtractor interface
type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) ExtractText(ctx context.Context, document io.Reader) (io.Reader, error) {
	args := m.Called(ctx, document)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.Reader), args.Error(1)
}
