// Package sections parses the plain text of multi-card credit card statements.
// Each card block starts with a "NNNN - HOLDER NAME" header followed by lines
// of "date description amount amount".
package sections

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/SscSPs/statement_ingestion/internal/core/domain"
	"github.com/SscSPs/statement_ingestion/internal/middleware"
)

var (
	headerPattern      = regexp.MustCompile(`^(\d{4})\s*[-–]\s*(\p{L}[\p{L} .'-]*?)\s*$`)
	transactionPattern = regexp.MustCompile(`^(\d{2}/\d{2}(?:/\d{2}(?:\d{2})?)?)\s+(.+?)\s+(-?[\d.]*\d,\d{2})\s+(-?[\d.]*\d,\d{2})$`)
	installmentPattern = regexp.MustCompile(`\b(\d{2})/(\d{2})\b`)
)

// Options configures a Parser.
type Options struct {
	// StatementYear completes dates printed as DD/MM. Zero means the current year.
	StatementYear int
}

// Result holds the non-empty sections in statement order.
type Result struct {
	Sections []domain.Section
	// Skipped counts transaction lines inside a section that failed to parse.
	Skipped int
}

// TotalRows counts every transaction line seen inside a section.
func (r *Result) TotalRows() int {
	total := r.Skipped
	for _, s := range r.Sections {
		total += len(s.Candidates)
	}
	return total
}

// Parser turns extracted statement text into card sections.
type Parser struct {
	opts Options
	now  func() time.Time
}

// NewParser creates a Parser with the given options.
func NewParser(opts Options) *Parser {
	return &Parser{opts: opts, now: time.Now}
}

// Parse never fails on content: lines that match nothing are ignored and
// malformed transaction lines are counted in Result.Skipped.
func (p *Parser) Parse(ctx context.Context, r io.Reader) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := middleware.GetLoggerFromCtx(ctx)

	year := p.opts.StatementYear
	if year == 0 {
		year = p.now().Year()
	}
	m := newMachine(year, logger)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		m.step(classify(lineNumber, scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read statement text: %w", err)
	}
	m.step(event{kind: eventEnd, lineNumber: lineNumber})

	logger.Debug("Card statement parsed",
		slog.Int("sections", len(m.sections)),
		slog.Int("skipped", m.skipped))
	return &Result{Sections: m.sections, Skipped: m.skipped}, nil
}

func classify(lineNumber int, raw string) event {
	line := strings.TrimSpace(raw)
	ev := event{kind: eventOther, lineNumber: lineNumber, line: line}
	if match := headerPattern.FindStringSubmatch(line); match != nil {
		ev.kind = eventHeader
		ev.match = match
		return ev
	}
	if match := transactionPattern.FindStringSubmatch(line); match != nil {
		ev.kind = eventTransaction
		ev.match = match
	}
	return ev
}
