package services

import (
	portsrepo "github.com/SscSPs/statement_ingestion/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/statement_ingestion/internal/core/ports/services"
	"github.com/SscSPs/statement_ingestion/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, extractor portssvc.TextExtractor) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The import pipeline runs reversal detection after every commit, so the
	// detector is shared with the on-demand endpoint.
	container.Reversal = NewReversalDetector(repos.TransactionRepo, ReversalOptions{
		WindowDays:          cfg.ReversalWindowDays,
		SimilarityThreshold: cfg.ReversalSimilarityThreshold,
	})
	container.Duplicate = NewDuplicateService(repos.TransactionRepo, cfg.DuplicateWindowDays)
	container.Mapping = NewMappingService(repos.MappingRepo, repos.TransactionRepo)
	container.Import = NewImportService(repos, container.Reversal, extractor, ImportOptions{
		MaxUploadBytes: cfg.MaxUploadBytes,
	})

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ImportSvc        = (*importService)(nil)
	_ portssvc.MappingSvcFacade = (*mappingService)(nil)
	_ portssvc.ReversalSvc      = (*ReversalDetector)(nil)
	_ portssvc.DuplicateSvc     = (*DuplicateService)(nil)
)
