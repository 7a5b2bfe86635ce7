// Package extract turns uploaded statement documents into plain text for the
// section parser.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/SscSPs/statement_ingestion/internal/apperrors"
	portssvc "github.com/SscSPs/statement_ingestion/internal/core/ports/services"
	"github.com/SscSPs/statement_ingestion/internal/middleware"
)

var pdfMagic = []byte("%PDF-")

// Extractor passes text documents through and hands binary PDFs to the
// pdftotext command line tool.
type Extractor struct {
	pdfToTextPath string
}

// NewExtractor creates an Extractor. An empty pdfToTextPath disables binary
// PDF support, so only documents that already carry text are accepted.
func NewExtractor(pdfToTextPath string) *Extractor {
	return &Extractor{pdfToTextPath: pdfToTextPath}
}

var _ portssvc.TextExtractor = (*Extractor)(nil)

// ExtractText implements portssvc.TextExtractor.
func (e *Extractor) ExtractText(ctx context.Context, document io.Reader) (io.Reader, error) {
	data, err := io.ReadAll(document)
	if err != nil {
		return nil, fmt.Errorf("%w: reading document: %w", apperrors.ErrExtraction, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: document is empty", apperrors.ErrExtraction)
	}

	if bytes.HasPrefix(data, pdfMagic) {
		data, err = e.runPDFToText(ctx, data)
		if err != nil {
			return nil, err
		}
	} else if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: document is neither a PDF nor UTF-8 text", apperrors.ErrExtraction)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: document has no text layer", apperrors.ErrExtraction)
	}
	return bytes.NewReader(data), nil
}

func (e *Extractor) runPDFToText(ctx context.Context, pdf []byte) ([]byte, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if e.pdfToTextPath == "" {
		return nil, fmt.Errorf("%w: binary PDF received but no pdftotext binary is configured", apperrors.ErrExtraction)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.pdfToTextPath, "-layout", "-enc", "UTF-8", "-", "-")
	cmd.Stdin = bytes.NewReader(pdf)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		logger.Error("pdftotext failed",
			slog.String("binary", e.pdfToTextPath),
			slog.String("stderr", strings.TrimSpace(stderr.String())),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: pdftotext: %w", apperrors.ErrExtraction, err)
	}

	logger.Debug("Extracted PDF text", slog.Int("pdf_bytes", len(pdf)), slog.Int("text_bytes", stdout.Len()))
	// pdftotext separates pages with form feeds
	return bytes.ReplaceAll(stdout.Bytes(), []byte("\f"), []byte("\n")), nil
}
