package mapping

import (
	"github.com/SscSPs/statement_ingestion/internal/core/domain"
	"github.com/SscSPs/statement_ingestion/internal/models"
)

// ToModelImportRecord converts a domain ImportRecord to a model ImportRecord
func ToModelImportRecord(d domain.ImportRecord) models.ImportRecord {
	return models.ImportRecord{
		ImportID:     d.ImportID,
		AccountID:    d.AccountID,
		FileName:     d.FileName,
		Format:       string(d.Format),
		TotalRows:    d.TotalRows,
		ImportedRows: d.ImportedRows,
		SkippedRows:  d.SkippedRows,
		ErrorMessage: ToNullString(d.ErrorMessage),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainImportRecord converts a model ImportRecord to a domain ImportRecord
func ToDomainImportRecord(m models.ImportRecord) domain.ImportRecord {
	return domain.ImportRecord{
		ImportID:     m.ImportID,
		AccountID:    m.AccountID,
		FileName:     m.FileName,
		Format:       domain.StatementFormat(m.Format),
		TotalRows:    m.TotalRows,
		ImportedRows: m.ImportedRows,
		SkippedRows:  m.SkippedRows,
		ErrorMessage: FromNullString(m.ErrorMessage),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainImportRecordSlice converts a slice of model ImportRecords to domain ImportRecords
func ToDomainImportRecordSlice(ms []models.ImportRecord) []domain.ImportRecord {
	ds := make([]domain.ImportRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainImportRecord(m)
	}
	return ds
}
