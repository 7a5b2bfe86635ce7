package models

import "database/sql"

// ImportRecord represents a row of import_records.
type ImportRecord struct {
	ImportID     string         `db:"import_id"`
	AccountID    string         `db:"account_id"`
	FileName     string         `db:"file_name"`
	Format       string         `db:"format"`
	TotalRows    int            `db:"total_rows"`
	ImportedRows int            `db:"imported_rows"`
	SkippedRows  int            `db:"skipped_rows"`
	ErrorMessage sql.NullString `db:"error_message"`
	AuditFields
}
