package mapping

import (
	"github.com/SscSPs/statement_ingestion/internal/core/domain"
	"github.com/SscSPs/statement_ingestion/internal/models"
)

// ToModelDescriptionMapping converts a domain DescriptionMapping to a model DescriptionMapping
func ToModelDescriptionMapping(d domain.DescriptionMapping) models.DescriptionMapping {
	return models.DescriptionMapping{
		MappingID:             d.MappingID,
		AccountID:             d.AccountID,
		OriginalDescription:   d.OriginalDescription,
		NormalizedDescription: d.NormalizedDescription,
		SimplifiedDescription: ToNullString(d.SimplifiedDescription),
		Category:              ToNullString(d.Category),
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDescriptionMapping converts a model DescriptionMapping to a domain DescriptionMapping
func ToDomainDescriptionMapping(m models.DescriptionMapping) domain.DescriptionMapping {
	return domain.DescriptionMapping{
		MappingID:             m.MappingID,
		AccountID:             m.AccountID,
		OriginalDescription:   m.OriginalDescription,
		NormalizedDescription: m.NormalizedDescription,
		SimplifiedDescription: FromNullString(m.SimplifiedDescription),
		Category:              FromNullString(m.Category),
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDescriptionMappingSlice converts a slice of model mappings to domain mappings
func ToDomainDescriptionMappingSlice(ms []models.DescriptionMapping) []domain.DescriptionMapping {
	ds := make([]domain.DescriptionMapping, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDescriptionMapping(m)
	}
	return ds
}
