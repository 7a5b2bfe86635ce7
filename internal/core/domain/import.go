package domain

import (
	"io"
	"time"
)

// StatementFormat identifies the shape of an uploaded statement.
type StatementFormat string

const (
	FormatDelimited     StatementFormat = "DELIMITED"      // date;description;amount;padding lines
	FormatCardStatement StatementFormat = "CARD_STATEMENT" // text extracted from a multi-card PDF statement
)

// ImportRequest is everything the import pipeline needs about one uploaded file.
type ImportRequest struct {
	AccountID     string
	UserID        string
	FileName      string
	ContentType   string
	Content       io.Reader
	StatementYear int // Year for card statement dates printed as DD/MM; zero means current year
}

// ImportRecord is the history entry kept for every import attempt.
type ImportRecord struct {
	ImportID     string          `json:"importID"`
	AccountID    string          `json:"accountID"`
	FileName     string          `json:"fileName"`
	Format       StatementFormat `json:"format"`
	TotalRows    int             `json:"totalRows"`
	ImportedRows int             `json:"importedRows"`
	SkippedRows  int             `json:"skippedRows"`
	ErrorMessage *string         `json:"errorMessage,omitempty"`
	AuditFields
}

// ImportCursor names the last record of a history page. Records are ordered
// by creation time and then import ID, both descending.
type ImportCursor struct {
	CreatedAt time.Time
	ImportID  string
}

// ImportResult is returned to the caller of an import.
type ImportResult struct {
	Record           ImportRecord
	Transactions     []Transaction
	ReversalsLinked  int
	ReversalFailures int
}
