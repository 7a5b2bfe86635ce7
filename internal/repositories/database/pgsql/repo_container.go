package pgsql

import (
	portsrepo "github.com/SscSPs/statement_ingestion/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	cardRepo := newPgxCardRepository(dbPool)
	mappingRepo := newPgxMappingRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	importRepo := newPgxImportRecordRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:     accountRepo,
		CardRepo:        cardRepo,
		MappingRepo:     mappingRepo,
		TransactionRepo: transactionRepo,
		ImportRepo:      importRepo,
	}
}
