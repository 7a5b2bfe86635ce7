package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/statement_ingestion/internal/apperrors"
	"github.com/SscSPs/statement_ingestion/internal/core/domain"
	portsrepo "github.com/SscSPs/statement_ingestion/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/statement_ingestion/internal/core/ports/services"
	"github.com/SscSPs/statement_ingestion/internal/dto"
)

// mappingService lets users rename and categorize learned descriptions.
type mappingService struct {
	BaseService
	mappingRepo portsrepo.MappingRepositoryWithTx
	txnRepo     portsrepo.TransactionWriter
}

// NewMappingService creates a new mapping service.
func NewMappingService(mappingRepo portsrepo.MappingRepositoryWithTx, txnRepo portsrepo.TransactionWriter) portssvc.MappingSvcFacade {
	return &mappingService{
		mappingRepo: mappingRepo,
		txnRepo:     txnRepo,
	}
}

var _ portssvc.MappingSvcFacade = (*mappingService)(nil)

func (s *mappingService) ListMappings(ctx context.Context, accountID string) ([]domain.DescriptionMapping, error) {
	mappings, err := s.mappingRepo.ListMappingsByAccount(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list mappings", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list mappings: %w", err)
	}
	if mappings == nil {
		return []domain.DescriptionMapping{}, nil
	}
	return mappings, nil
}

// UpdateMapping stores the new fields and cascades them to the account's
// transactions in the same database transaction. It returns the number of
// transactions that were updated.
func (s *mappingService) UpdateMapping(ctx context.Context, accountID, mappingID string, req dto.UpdateMappingRequest, userID string) (*domain.DescriptionMapping, int64, error) {
	mapping, err := s.mappingRepo.FindMappingByID(ctx, mappingID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find mapping", slog.String("mapping_id", mappingID))
		}
		return nil, 0, err
	}
	if mapping.AccountID != accountID {
		return nil, 0, fmt.Errorf("mapping %s does not belong to account %s: %w", mappingID, accountID, apperrors.ErrNotFound)
	}

	mapping.SimplifiedDescription = req.SimplifiedDescription
	mapping.Category = req.Category
	mapping.Touch(userID, time.Now())

	tx, err := s.mappingRepo.Begin(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer s.mappingRepo.Rollback(ctx, tx) // no-op once committed

	if err := s.mappingRepo.UpdateMappingInTx(ctx, tx, *mapping); err != nil {
		s.LogError(ctx, err, "Failed to update mapping", slog.String("mapping_id", mappingID))
		return nil, 0, err
	}
	updated, err := s.txnRepo.CascadeMappingInTx(ctx, tx, *mapping)
	if err != nil {
		s.LogError(ctx, err, "Failed to cascade mapping to transactions", slog.String("mapping_id", mappingID))
		return nil, 0, err
	}
	if err := s.mappingRepo.Commit(ctx, tx); err != nil {
		return nil, 0, err
	}

	s.LogInfo(ctx, "Mapping updated",
		slog.String("mapping_id", mappingID),
		slog.Int64("transactions_updated", updated))
	return mapping, updated, nil
}
