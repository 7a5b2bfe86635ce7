package repositories

import (
	"context"

	"github.com/SscSPs/statement_ingestion/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// MappingReader defines read operations for description mappings
type MappingReader interface {
	// ListMappingsByAccount returns every mapping of the account.
	ListMappingsByAccount(ctx context.Context, accountID string) ([]domain.DescriptionMapping, error)

	// FindMappingByID retrieves a mapping by its unique identifier.
	FindMappingByID(ctx context.Context, mappingID string) (*domain.DescriptionMapping, error)

	// FindMappingByNormalizedDescription retrieves the account's mapping for a
	// normalized description.
	FindMappingByNormalizedDescription(ctx context.Context, accountID, normalizedDescription string) (*domain.DescriptionMapping, error)
}

// MappingWriter defines write operations for description mappings
type MappingWriter interface {
	// SaveMappingsInTx bulk-inserts new mappings within the given transaction.
	// Mappings whose normalized description the account already maps are left
	// out, and their normalized descriptions are returned.
	SaveMappingsInTx(ctx context.Context, tx pgx.Tx, mappings []domain.DescriptionMapping) ([]string, error)

	// UpdateMappingInTx stores the simplified description and category of a mapping.
	UpdateMappingInTx(ctx context.Context, tx pgx.Tx, mapping domain.DescriptionMapping) error
}

// MappingRepositoryFacade combines all mapping-related repository interfaces
type MappingRepositoryFacade interface {
	MappingReader
	MappingWriter
}

// MappingRepositoryWithTx extends MappingRepositoryFacade with transaction capabilities
type MappingRepositoryWithTx interface {
	MappingRepositoryFacade
	TransactionManager
}
