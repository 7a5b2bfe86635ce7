package sections_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/statement_ingestion/internal/parsers/sections"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, text string, opts sections.Options) *sections.Result {
	t.Helper()
	result, err := sections.NewParser(opts).Parse(context.Background(), strings.NewReader(text))
	require.NoError(t, err)
	return result
}

func TestParse_SingleLine(t *testing.T) {
	result := parse(t, "1234 - JOHN SMITH\n12/11/2024 NETFLIX.COM 39,90 7,50\n", sections.Options{})

	require.Len(t, result.Sections, 1)
	section := result.Sections[0]
	assert.Equal(t, "1234", section.CardSuffix)
	assert.Equal(t, "JOHN SMITH", section.HolderName)

	require.Len(t, section.Candidates, 1)
	c := section.Candidates[0]
	assert.True(t, decimal.RequireFromString("39.90").Equal(c.Amount))
	assert.Equal(t, "NETFLIX.COM", c.Description)
	assert.Equal(t, time.Date(2024, 11, 12, 0, 0, 0, 0, time.UTC), c.Date)
	assert.Nil(t, c.InstallmentCurrent)
	assert.Nil(t, c.InstallmentTotal)
	assert.False(t, c.HasInstallment())
	assert.Equal(t, "1234", c.CardSuffix)
	assert.Equal(t, "JOHN SMITH", c.HolderName)
	assert.Equal(t, "12/11/2024 NETFLIX.COM 39,90 7,50", c.RawLine)
}

func TestParse_MultipleSectionsAndInstallments(t *testing.T) {
	text := `FATURA DO CARTAO
Vencimento 10/12/2024
1234 - JOHN SMITH
Data Descricao Valor US$
12/11/2024 NETFLIX.COM 39,90 0,00
15/11/2024 LOJA DE MOVEIS 03/10 1.250,00 0,00
Subtotal 1.289,90
5678 – MARY  ANN SMITH
20/11/2024 AMAZON 01/02 02/03 99,99 0,00
21/11/2024 ESTORNO NETFLIX.COM -39,90 0,00
`
	result := parse(t, text, sections.Options{})

	require.Len(t, result.Sections, 2)
	assert.Equal(t, 4, result.TotalRows())
	assert.Zero(t, result.Skipped)

	first := result.Sections[0]
	require.Len(t, first.Candidates, 2)
	furniture := first.Candidates[1]
	assert.Equal(t, "LOJA DE MOVEIS 03/10", furniture.Description)
	require.True(t, furniture.HasInstallment())
	assert.Equal(t, 3, *furniture.InstallmentCurrent)
	assert.Equal(t, 10, *furniture.InstallmentTotal)
	assert.True(t, decimal.RequireFromString("1250").Equal(furniture.Amount))

	second := result.Sections[1]
	assert.Equal(t, "5678", second.CardSuffix)
	assert.Equal(t, "MARY ANN SMITH", second.HolderName)
	require.Len(t, second.Candidates, 2)

	// only the first NN/NN token is used
	amazon := second.Candidates[0]
	assert.Equal(t, 1, *amazon.InstallmentCurrent)
	assert.Equal(t, 2, *amazon.InstallmentTotal)

	refund := second.Candidates[1]
	assert.True(t, decimal.RequireFromString("-39.90").Equal(refund.Amount))
	assert.Equal(t, "5678", refund.CardSuffix)
}

func TestParse_EmptySectionsAreDropped(t *testing.T) {
	text := `1111 - EMPTY HOLDER
2222 - ALSO EMPTY
nothing here
3333 - REAL HOLDER
01/11/2024 PADARIA 5,00 0,00
4444 - TRAILING EMPTY
`
	result := parse(t, text, sections.Options{})

	require.Len(t, result.Sections, 1)
	assert.Equal(t, "3333", result.Sections[0].CardSuffix)
}

func TestParse_LinesOutsideSectionsAreIgnored(t *testing.T) {
	text := "01/11/2024 BEFORE ANY HEADER 5,00 0,00\n"
	result := parse(t, text, sections.Options{})

	assert.Empty(t, result.Sections)
	assert.Zero(t, result.TotalRows())
}

func TestParse_MalformedLinesAreSkipped(t *testing.T) {
	text := `1234 - JOHN SMITH
31/02/2024 IMPOSSIBLE DATE 10,00 0,00
random footer text
01/03/2024 GOOD 10,00 0,00
`
	result := parse(t, text, sections.Options{})

	require.Len(t, result.Sections, 1)
	assert.Len(t, result.Sections[0].Candidates, 1)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 2, result.TotalRows())
}

func TestParse_DatesWithoutYear(t *testing.T) {
	text := "1234 - JOHN SMITH\n05/01 UBER TRIP 23,10 0,00\n06/01/24 UBER TRIP 12,00 0,00\n"
	result := parse(t, text, sections.Options{StatementYear: 2025})

	require.Len(t, result.Sections, 1)
	candidates := result.Sections[0].Candidates
	require.Len(t, candidates, 2)
	assert.Equal(t, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), candidates[0].Date)
	assert.Equal(t, time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), candidates[1].Date)
}
