package extract

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/SscSPs/statement_ingestion/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PassesTextThrough(t *testing.T) {
	text := "1234 - MARIA SILVA\n05/01 PADARIA 12,50 0,00\n"

	out, err := NewExtractor("").ExtractText(context.Background(), strings.NewReader(text))
	require.NoError(t, err)

	got, err := io.ReadAll(out)
	require.NoError(t, err)
	assert.Equal(t, text, string(got))
}

func TestExtractText_Failures(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		document []byte
	}{
		{name: "empty", document: nil},
		{name: "whitespace only", document: []byte(" \n\t\n")},
		{name: "binary garbage", document: []byte{0xff, 0xfe, 0x00, 0x81}},
		{name: "pdf without binary configured", document: []byte("%PDF-1.7\n...")},
		{name: "pdf with missing binary", path: "/nonexistent/pdftotext", document: []byte("%PDF-1.7\n...")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := NewExtractor(tt.path).ExtractText(context.Background(), bytes.NewReader(tt.document))

			assert.Nil(t, out)
			assert.ErrorIs(t, err, apperrors.ErrExtraction)
		})
	}
}
