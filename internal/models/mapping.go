package models

import "database/sql"

// DescriptionMapping represents a row of description_mappings.
// Unique on (account_id, normalized_description).
type DescriptionMapping struct {
	MappingID             string         `db:"mapping_id"`
	AccountID             string         `db:"account_id"`
	OriginalDescription   string         `db:"original_description"`
	NormalizedDescription string         `db:"normalized_description"`
	SimplifiedDescription sql.NullString `db:"simplified_description"`
	Category              sql.NullString `db:"category"`
	AuditFields
}
