package sections

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/statement_ingestion/internal/core/domain"
	"github.com/SscSPs/statement_ingestion/internal/parsers"
)

type state int

const (
	stateNoSection state = iota
	stateInSection
)

func (s state) String() string {
	switch s {
	case stateNoSection:
		return "NO_SECTION"
	case stateInSection:
		return "IN_SECTION"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type eventKind int

const (
	eventOther eventKind = iota
	eventHeader
	eventTransaction
	eventEnd
)

type event struct {
	kind       eventKind
	lineNumber int
	line       string
	match      []string // submatches of the header or transaction pattern
}

type effect uint8

const effectNone effect = 0

const (
	effectFlush effect = 1 << iota
	effectOpen
	effectAccept
)

func (e effect) has(f effect) bool {
	return e&f != 0
}

// transition is the whole state table of the parser. Flushing on a new header
// and flushing at end of input go through the same effect.
func transition(s state, kind eventKind) (state, effect) {
	switch s {
	case stateNoSection:
		if kind == eventHeader {
			return stateInSection, effectOpen
		}
		return stateNoSection, effectNone
	case stateInSection:
		switch kind {
		case eventHeader:
			return stateInSection, effectFlush | effectOpen
		case eventTransaction:
			return stateInSection, effectAccept
		case eventEnd:
			return stateNoSection, effectFlush
		}
		return stateInSection, effectNone
	}
	return s, effectNone
}

type machine struct {
	state    state
	current  *domain.Section
	sections []domain.Section
	skipped  int
	year     int
	logger   *slog.Logger
}

func newMachine(year int, logger *slog.Logger) *machine {
	return &machine{state: stateNoSection, year: year, logger: logger}
}

func (m *machine) step(ev event) {
	next, eff := transition(m.state, ev.kind)
	if eff.has(effectFlush) {
		m.flush()
	}
	if eff.has(effectOpen) {
		m.open(ev)
	}
	if eff.has(effectAccept) {
		m.accept(ev)
	}
	m.state = next
}

// flush keeps the open section only when it accumulated at least one candidate.
func (m *machine) flush() {
	if m.current != nil && len(m.current.Candidates) > 0 {
		m.sections = append(m.sections, *m.current)
	}
	m.current = nil
}

func (m *machine) open(ev event) {
	m.current = &domain.Section{
		CardSuffix: ev.match[1],
		HolderName: collapseSpaces(ev.match[2]),
	}
}

func (m *machine) accept(ev event) {
	candidate, err := m.candidate(ev)
	if err != nil {
		m.skipped++
		m.logger.Warn("Skipping unparseable card statement line",
			slog.Int("line", ev.lineNumber),
			slog.String("card_suffix", m.current.CardSuffix),
			slog.String("error", err.Error()))
		return
	}
	m.current.Candidates = append(m.current.Candidates, candidate)
}

func (m *machine) candidate(ev event) (domain.Candidate, error) {
	date, err := m.parseDate(ev.match[1])
	if err != nil {
		return domain.Candidate{}, err
	}
	amount, err := parsers.ParseAmount(ev.match[3])
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("could not parse amount: %w", err)
	}

	description := collapseSpaces(ev.match[2])
	c := domain.Candidate{
		Date:        date,
		Description: description,
		Amount:      amount,
		CardSuffix:  m.current.CardSuffix,
		HolderName:  m.current.HolderName,
		RawLine:     ev.line,
	}
	if inst := installmentPattern.FindStringSubmatch(description); inst != nil {
		current, _ := strconv.Atoi(inst[1])
		total, _ := strconv.Atoi(inst[2])
		c.InstallmentCurrent = &current
		c.InstallmentTotal = &total
	}
	return c, nil
}

func (m *machine) parseDate(raw string) (time.Time, error) {
	var (
		date time.Time
		err  error
	)
	switch len(raw) {
	case len("02/01/2006"):
		date, err = time.Parse("02/01/2006", raw)
	case len("02/01/06"):
		date, err = time.Parse("02/01/06", raw)
	default:
		date, err = time.Parse("02/01/2006", raw+"/"+strconv.Itoa(m.year))
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse date %q: %w", raw, err)
	}
	return date, nil
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
