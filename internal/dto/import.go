package dto

import (
	"time"

	"github.com/SscSPs/statement_ingestion/internal/core/domain"
)

// ImportStatementParams holds the form fields sent along with an uploaded statement.
type ImportStatementParams struct {
	StatementYear int `form:"statementYear" binding:"omitempty,min=2000,max=2100"`
}

// ImportRecordResponse defines the data returned for an import history entry.
type ImportRecordResponse struct {
	ImportID     string                 `json:"importID"`
	AccountID    string                 `json:"accountID"`
	FileName     string                 `json:"fileName"`
	Format       domain.StatementFormat `json:"format"`
	TotalRows    int                    `json:"totalRows"`
	ImportedRows int                    `json:"importedRows"`
	SkippedRows  int                    `json:"skippedRows"`
	ErrorMessage *string                `json:"errorMessage,omitempty"`
	CreatedAt    time.Time              `json:"createdAt"`
	CreatedBy    string                 `json:"createdBy"`
}

// ImportResultResponse is returned after a statement was imported.
type ImportResultResponse struct {
	Import           ImportRecordResponse  `json:"import"`
	Transactions     []TransactionResponse `json:"transactions"`
	ReversalsLinked  int                   `json:"reversalsLinked"`
	ReversalFailures int                   `json:"reversalFailures"`
}

// ListImportsParams defines query parameters for listing the import history.
type ListImportsParams struct {
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ListImportsResponse wraps a page of the import history.
type ListImportsResponse struct {
	Imports   []ImportRecordResponse `json:"imports"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToImportRecordResponse converts a domain.ImportRecord to ImportRecordResponse DTO.
func ToImportRecordResponse(r *domain.ImportRecord) ImportRecordResponse {
	return ImportRecordResponse{
		ImportID:     r.ImportID,
		AccountID:    r.AccountID,
		FileName:     r.FileName,
		Format:       r.Format,
		TotalRows:    r.TotalRows,
		ImportedRows: r.ImportedRows,
		SkippedRows:  r.SkippedRows,
		ErrorMessage: r.ErrorMessage,
		CreatedAt:    r.CreatedAt,
		CreatedBy:    r.CreatedBy,
	}
}

// ToImportRecordResponses converts a slice of domain.ImportRecord to DTOs.
func ToImportRecordResponses(records []domain.ImportRecord) []ImportRecordResponse {
	res := make([]ImportRecordResponse, len(records))
	for i := range records {
		res[i] = ToImportRecordResponse(&records[i])
	}
	return res
}

// ToImportResultResponse converts a domain.ImportResult to ImportResultResponse DTO.
func ToImportResultResponse(r *domain.ImportResult) ImportResultResponse {
	return ImportResultResponse{
		Import:           ToImportRecordResponse(&r.Record),
		Transactions:     ToTransactionResponses(r.Transactions),
		ReversalsLinked:  r.ReversalsLinked,
		ReversalFailures: r.ReversalFailures,
	}
}
