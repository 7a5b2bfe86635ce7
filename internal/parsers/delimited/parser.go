// Package delimited parses semicolon separated bank exports laid out as
// "date;description;amount;padding".
package delimited

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/SscSPs/statement_ingestion/internal/core/domain"
	"github.com/SscSPs/statement_ingestion/internal/middleware"
	"github.com/SscSPs/statement_ingestion/internal/parsers"
)

const (
	// Delimiter separates the fields of a line.
	Delimiter  = ';'
	fieldCount = 4
	dateLayout = "02/01/2006"
	maxLineLen = 1024 * 1024
)

// firstDataLine matches the first transaction line; everything before it is
// a bank header block.
var firstDataLine = regexp.MustCompile(`^\s*"?\d{2}/\d{2}/\d{4}`)

// LineError describes a line that was skipped.
type LineError struct {
	LineNumber int
	Line       string
	Err        error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.LineNumber, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Result holds the candidates in file order and the lines that were skipped.
type Result struct {
	Candidates []domain.Candidate
	Errors     []*LineError
}

// TotalRows counts every data line seen after the header block.
func (r *Result) TotalRows() int {
	return len(r.Candidates) + len(r.Errors)
}

// Parser is stateless and safe for concurrent use.
type Parser struct{}

var parserInstance = &Parser{}

// NewParser returns the shared parser instance.
func NewParser() *Parser {
	return parserInstance
}

// Parse reads the statement line by line. A line that cannot be parsed is
// logged and reported in Result.Errors; it never aborts the file. The only
// error returned is a failure to read r itself.
func (p *Parser) Parse(ctx context.Context, r io.Reader) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := middleware.GetLoggerFromCtx(ctx)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)

	result := &Result{}
	started := false
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimRight(scanner.Text(), "\r")
		if lineNumber == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		if !started {
			if !firstDataLine.MatchString(line) {
				continue
			}
			started = true
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		candidate, err := parseLine(line)
		if err != nil {
			logger.Warn("Skipping unparseable statement line",
				slog.Int("line", lineNumber),
				slog.String("error", err.Error()))
			result.Errors = append(result.Errors, &LineError{LineNumber: lineNumber, Line: line, Err: err})
			continue
		}
		result.Candidates = append(result.Candidates, candidate)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read statement lines: %w", err)
	}

	logger.Debug("Delimited statement parsed",
		slog.Int("candidates", len(result.Candidates)),
		slog.Int("skipped", len(result.Errors)))
	return result, nil
}

func parseLine(line string) (domain.Candidate, error) {
	reader := csv.NewReader(strings.NewReader(line))
	reader.Comma = Delimiter
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	fields, err := reader.Read()
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("failed to split line: %w", err)
	}
	if len(fields) != fieldCount {
		return domain.Candidate{}, fmt.Errorf("expected %d fields, got %d", fieldCount, len(fields))
	}

	date, err := time.Parse(dateLayout, unquote(fields[0]))
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("could not parse date %q: %w", fields[0], err)
	}

	amount, err := parsers.ParseAmount(unquote(fields[2]))
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("could not parse amount: %w", err)
	}

	return domain.Candidate{
		Date:        date,
		Description: unquote(fields[1]),
		Amount:      amount,
		RawLine:     line,
	}, nil
}

func unquote(field string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(field), `"`))
}
