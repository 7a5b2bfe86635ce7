package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SscSPs/statement_ingestion/internal/apperrors"
	"github.com/SscSPs/statement_ingestion/internal/core/domain"
	portsrepo "github.com/SscSPs/statement_ingestion/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/statement_ingestion/internal/core/ports/services"
	"github.com/SscSPs/statement_ingestion/internal/parsers/delimited"
	"github.com/SscSPs/statement_ingestion/internal/parsers/sections"
	"github.com/SscSPs/statement_ingestion/internal/utils/fingerprint"
	"github.com/SscSPs/statement_ingestion/internal/utils/normalize"
	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
)

const (
	DefaultMaxUploadBytes = 10 << 20
	defaultImportPageSize = 20
	maxImportPageSize     = 100
)

// acceptedContentTypes lists, per file extension, the media types an upload may declare.
var acceptedContentTypes = map[string][]string{
	".csv": {"text/csv", "text/plain", "application/vnd.ms-excel", "application/octet-stream"},
	".txt": {"text/plain", "application/octet-stream"},
	".pdf": {"application/pdf", "application/octet-stream"},
}

// ImportOptions configures the import pipeline.
type ImportOptions struct {
	MaxUploadBytes int64
}

// importService drives a statement from upload to persisted, reconciled rows.
type importService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	txnRepo     portsrepo.TransactionRepositoryWithTx
	importRepo  portsrepo.ImportRecordRepositoryFacade
	cards       *CardResolver
	mappings    *MappingResolver
	reversals   portssvc.ReversalSvc
	extractor   portssvc.TextExtractor
	maxBytes    int64
	now         func() time.Time
}

// NewImportService creates the import pipeline.
func NewImportService(
	repos portsrepo.RepositoryProvider,
	reversals portssvc.ReversalSvc,
	extractor portssvc.TextExtractor,
	opts ImportOptions,
) portssvc.ImportSvc {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = DefaultMaxUploadBytes
	}
	return &importService{
		accountRepo: repos.AccountRepo,
		txnRepo:     repos.TransactionRepo,
		importRepo:  repos.ImportRepo,
		cards:       NewCardResolver(repos.CardRepo),
		mappings:    NewMappingResolver(repos.MappingRepo),
		reversals:   reversals,
		extractor:   extractor,
		maxBytes:    opts.MaxUploadBytes,
		now:         time.Now,
	}
}

var _ portssvc.ImportSvc = (*importService)(nil)

// parsedRow is a candidate together with the card its section resolved to.
type parsedRow struct {
	candidate domain.Candidate
	card      *domain.Card
}

// parsedStatement is the parser output reduced to what the pipeline needs.
type parsedStatement struct {
	rows    []parsedRow
	total   int
	skipped int
}

func (s *importService) ImportStatement(ctx context.Context, req domain.ImportRequest) (*domain.ImportResult, error) {
	logger := s.GetLogger(ctx).With(
		slog.String("account_id", req.AccountID),
		slog.String("file_name", req.FileName))

	if req.AccountID == "" || req.UserID == "" {
		return nil, fmt.Errorf("account and user are required: %w", apperrors.ErrValidation)
	}
	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive {
		return nil, fmt.Errorf("account %s is inactive: %w", req.AccountID, apperrors.ErrValidation)
	}

	format, extract, err := detectFormat(req.FileName, req.ContentType)
	if err != nil {
		logger.Warn("Statement file rejected", slog.String("error", err.Error()))
		return nil, err
	}
	content, err := s.readContent(req.Content)
	if err != nil {
		logger.Warn("Statement file rejected", slog.String("error", err.Error()))
		return nil, err
	}

	record := domain.ImportRecord{
		ImportID:    uuid.NewString(),
		AccountID:   req.AccountID,
		FileName:    req.FileName,
		Format:      format,
		AuditFields: domain.NewAuditFields(req.UserID, s.now()),
	}

	var text io.Reader = decodeText(content)
	if extract {
		if s.extractor == nil {
			return nil, s.fail(ctx, record, fmt.Errorf("no text extractor configured: %w", apperrors.ErrExtraction))
		}
		text, err = s.extractor.ExtractText(ctx, bytes.NewReader(content))
		if err != nil {
			if !errors.Is(err, apperrors.ErrExtraction) {
				err = fmt.Errorf("%w: %w", apperrors.ErrExtraction, err)
			}
			return nil, s.fail(ctx, record, err)
		}
	}

	parsed, err := s.parse(ctx, format, text, req)
	if err != nil {
		return nil, s.fail(ctx, record, err)
	}

	batch, err := s.mappings.NewBatch(ctx, req.AccountID, req.UserID)
	if err != nil {
		return nil, s.fail(ctx, record, err)
	}
	gate := NewDedupGate(s.txnRepo)

	txns := make([]domain.Transaction, 0, len(parsed.rows))
	for _, row := range parsed.rows {
		// Rows the gate rejects still get a mapping.
		batch.Resolve(row.candidate.Description)
		txn, admitted, err := s.admit(ctx, gate, record, row)
		if err != nil {
			logger.Warn("Skipping candidate after dedup check failure",
				slog.String("error", err.Error()), slog.String("line", row.candidate.RawLine))
			continue
		}
		if admitted {
			txns = append(txns, txn)
		}
	}

	record.TotalRows = parsed.total
	stored, err := s.persist(ctx, &record, batch, txns)
	if err != nil {
		logger.Error("Failed to persist import", slog.String("error", err.Error()))
		record.ImportedRows = 0
		record.SkippedRows = parsed.total
		return nil, s.fail(ctx, record, err)
	}
	if raced := len(txns) - len(stored); raced > 0 {
		logger.Info("Skipped rows stored by a concurrent import", slog.Int("rows", raced))
	}

	result := &domain.ImportResult{Record: record, Transactions: stored}
	s.detectReversals(ctx, req.UserID, result)

	logger.Info("Statement imported",
		slog.String("import_id", record.ImportID),
		slog.String("format", string(format)),
		slog.Int("total_rows", record.TotalRows),
		slog.Int("imported_rows", record.ImportedRows),
		slog.Int("skipped_rows", record.SkippedRows),
		slog.Int("unparsable_rows", parsed.skipped),
		slog.Int("reversals_linked", result.ReversalsLinked))
	return result, nil
}

// detectFormat picks the parser from the file extension and checks the declared
// content type against it. The second result tells whether the bytes still need
// text extraction.
func detectFormat(fileName, contentType string) (domain.StatementFormat, bool, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	accepted, ok := acceptedContentTypes[ext]
	if !ok {
		return "", false, fmt.Errorf("unsupported file extension %q: %w", ext, apperrors.ErrFileRejected)
	}

	if contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return "", false, fmt.Errorf("invalid content type %q: %w", contentType, apperrors.ErrFileRejected)
		}
		allowed := false
		for _, t := range accepted {
			if mediaType == t {
				allowed = true
				break
			}
		}
		if !allowed {
			return "", false, fmt.Errorf("content type %q does not match %s file: %w", mediaType, ext, apperrors.ErrFileRejected)
		}
	}

	switch ext {
	case ".csv":
		return domain.FormatDelimited, false, nil
	case ".pdf":
		return domain.FormatCardStatement, true, nil
	default:
		return domain.FormatCardStatement, false, nil
	}
}

func (s *importService) readContent(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("file is empty: %w", apperrors.ErrFileRejected)
	}
	content, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, fmt.Errorf("file is empty: %w", apperrors.ErrFileRejected)
	}
	if int64(len(content)) > s.maxBytes {
		return nil, fmt.Errorf("file exceeds %d bytes: %w", s.maxBytes, apperrors.ErrFileRejected)
	}
	return content, nil
}

// decodeText passes UTF-8 through and reads anything else as Windows-1252,
// the encoding bank exports commonly use.
func decodeText(content []byte) io.Reader {
	if utf8.Valid(content) {
		return bytes.NewReader(content)
	}
	return charmap.Windows1252.NewDecoder().Reader(bytes.NewReader(content))
}

func (s *importService) parse(ctx context.Context, format domain.StatementFormat, text io.Reader, req domain.ImportRequest) (*parsedStatement, error) {
	switch format {
	case domain.FormatDelimited:
		res, err := delimited.NewParser().Parse(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse delimited statement: %w", err)
		}
		out := &parsedStatement{total: res.TotalRows(), skipped: len(res.Errors)}
		for _, c := range res.Candidates {
			out.rows = append(out.rows, parsedRow{candidate: c})
		}
		return out, nil

	case domain.FormatCardStatement:
		res, err := sections.NewParser(sections.Options{StatementYear: req.StatementYear}).Parse(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse card statement: %w", err)
		}
		out := &parsedStatement{total: res.TotalRows(), skipped: res.Skipped}
		for _, section := range res.Sections {
			card := s.cards.Resolve(ctx, req.AccountID, section)
			for _, c := range section.Candidates {
				// Charges are printed positive and credits negative; the ledger stores expenses negative.
				c.Amount = c.Amount.Neg()
				out.rows = append(out.rows, parsedRow{candidate: c, card: card})
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown statement format %q: %w", format, apperrors.ErrValidation)
}

// admit fingerprints a row, runs it through the gate and, when admitted, builds
// the transaction. Mapping fields are applied once the batch is flushed.
func (s *importService) admit(ctx context.Context, gate *DedupGate, record domain.ImportRecord, row parsedRow) (domain.Transaction, bool, error) {
	c := row.candidate
	rawFP := fingerprint.Raw(c.RawLine)
	normFP := fingerprint.Normalized(c.Date, c.Description, c.Amount, record.AccountID)

	ok, err := gate.Admit(ctx, rawFP, normFP)
	if err != nil || !ok {
		return domain.Transaction{}, false, err
	}

	importID := record.ImportID
	txn := domain.Transaction{
		TransactionID:         uuid.NewString(),
		AccountID:             record.AccountID,
		ImportID:              &importID,
		Date:                  c.Date,
		Description:           c.Description,
		NormalizedDescription: normalize.Description(c.Description),
		Amount:                c.Amount,
		ResponsibleUsers:      []string{record.CreatedBy},
		Source:                domain.SourceImported,
		RawFingerprint:        rawFP,
		NormalizedFingerprint: &normFP,
		InstallmentCurrent:    c.InstallmentCurrent,
		InstallmentTotal:      c.InstallmentTotal,
		AuditFields:           record.AuditFields,
	}
	if row.card != nil {
		cardID := row.card.CardID
		txn.CardID = &cardID
	}
	return txn, true, nil
}

// persist writes the new mappings, the transactions and the record in one
// database transaction. Rows another import stored after the gate ran are left
// out of the result and counted as skipped.
func (s *importService) persist(ctx context.Context, record *domain.ImportRecord, batch *MappingBatch, txns []domain.Transaction) ([]domain.Transaction, error) {
	tx, err := s.txnRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txnRepo.Rollback(ctx, tx) // no-op once committed

	if err := batch.Flush(ctx, tx); err != nil {
		return nil, err
	}
	for i := range txns {
		batch.Apply(&txns[i])
	}

	stored := []domain.Transaction{}
	if len(txns) > 0 {
		stored, err = s.txnRepo.SaveTransactionsInTx(ctx, tx, txns)
		if err != nil {
			return nil, fmt.Errorf("failed to save transactions: %w", err)
		}
	}
	record.ImportedRows = len(stored)
	record.SkippedRows = record.TotalRows - len(stored)

	if err := s.importRepo.SaveImportRecordInTx(ctx, tx, *record); err != nil {
		return nil, fmt.Errorf("failed to save import record: %w", err)
	}
	if err := s.txnRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return stored, nil
}

// fail stores a history entry for an import that did not go through and returns err.
func (s *importService) fail(ctx context.Context, record domain.ImportRecord, err error) error {
	msg := err.Error()
	record.ErrorMessage = &msg
	if saveErr := s.importRepo.SaveImportRecord(ctx, record); saveErr != nil {
		s.LogError(ctx, saveErr, "Failed to save failed import record", slog.String("import_id", record.ImportID))
	}
	return err
}

// detectReversals runs the detector on every imported expense. Failures are
// counted and logged; the import itself is already committed.
func (s *importService) detectReversals(ctx context.Context, userID string, result *domain.ImportResult) {
	if s.reversals == nil {
		return
	}
	index := make(map[string]int, len(result.Transactions))
	for i, t := range result.Transactions {
		index[t.TransactionID] = i
	}

	for i := range result.Transactions {
		txn := &result.Transactions[i]
		if !txn.IsExpense() || txn.IsReversal {
			continue
		}
		partner, err := s.reversals.Detect(ctx, txn.TransactionID, userID)
		if err != nil {
			result.ReversalFailures++
			s.LogError(ctx, err, "Reversal detection failed", slog.String("transaction_id", txn.TransactionID))
			continue
		}
		if partner == nil {
			continue
		}
		result.ReversalsLinked++
		partnerID := partner.TransactionID
		txnID := txn.TransactionID
		txn.IsReversal = true
		txn.RelatedTransactionID = &partnerID
		if j, ok := index[partnerID]; ok {
			result.Transactions[j].IsReversal = true
			result.Transactions[j].RelatedTransactionID = &txnID
		}
	}
}

func (s *importService) RollbackImport(ctx context.Context, accountID, importID, userID string) error {
	record, err := s.importRepo.FindImportRecordByID(ctx, importID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load import record", slog.String("import_id", importID))
		}
		return err
	}
	if record.AccountID != accountID {
		return fmt.Errorf("import %s does not belong to account %s: %w", importID, accountID, apperrors.ErrNotFound)
	}

	tx, err := s.txnRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer s.txnRepo.Rollback(ctx, tx) // no-op once committed

	deleted, err := s.txnRepo.DeleteTransactionsByImportInTx(ctx, tx, importID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete imported transactions", slog.String("import_id", importID))
		return err
	}
	if err := s.importRepo.DeleteImportRecordInTx(ctx, tx, importID); err != nil {
		s.LogError(ctx, err, "Failed to delete import record", slog.String("import_id", importID))
		return err
	}
	if err := s.txnRepo.Commit(ctx, tx); err != nil {
		return err
	}

	s.LogInfo(ctx, "Import rolled back",
		slog.String("import_id", importID),
		slog.String("user_id", userID),
		slog.Int64("transactions_deleted", deleted))
	return nil
}

func (s *importService) ListImports(ctx context.Context, accountID string, limit int, after *domain.ImportCursor) ([]domain.ImportRecord, error) {
	if limit <= 0 {
		limit = defaultImportPageSize
	}
	if limit > maxImportPageSize {
		limit = maxImportPageSize
	}
	records, err := s.importRepo.ListImportRecordsByAccount(ctx, accountID, limit, after)
	if err != nil {
		s.LogError(ctx, err, "Failed to list imports", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list imports: %w", err)
	}
	if records == nil {
		return []domain.ImportRecord{}, nil
	}
	return records, nil
}
