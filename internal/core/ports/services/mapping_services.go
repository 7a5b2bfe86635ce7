package services

import (
	"context"

	"github.com/SscSPs/statement_ingestion/internal/core/domain"
	"github.com/SscSPs/statement_ingestion/internal/dto"
)

// MappingReaderSvc defines read operations for description mappings
type MappingReaderSvc interface {
	// ListMappings returns every description mapping of the account.
	ListMappings(ctx context.Context, accountID string) ([]domain.DescriptionMapping, error)
}

// MappingWriterSvc defines write operations for description mappings
type MappingWriterSvc interface {
	// UpdateMapping changes the simplified description and category of a mapping and
	// applies them to every transaction of the account with the same normalized description.
	UpdateMapping(ctx context.Context, accountID, mappingID string, req dto.UpdateMappingRequest, userID string) (*domain.DescriptionMapping, int64, error)
}

// MappingSvcFacade combines all mapping-related service interfaces
type MappingSvcFacade interface {
	MappingReaderSvc
	MappingWriterSvc
}
