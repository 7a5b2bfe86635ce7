package services

// ServiceContainer holds all the services and manages their dependencies
type ServiceContainer struct {
	Import    ImportSvc
	Mapping   MappingSvcFacade
	Reversal  ReversalSvc
	Duplicate DuplicateSvc
}
