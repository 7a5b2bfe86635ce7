package sections

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name      string
		from      state
		kind      eventKind
		wantState state
		wantEff   effect
	}{
		{"header opens", stateNoSection, eventHeader, stateInSection, effectOpen},
		{"transaction outside section ignored", stateNoSection, eventTransaction, stateNoSection, effectNone},
		{"other outside section ignored", stateNoSection, eventOther, stateNoSection, effectNone},
		{"end outside section", stateNoSection, eventEnd, stateNoSection, effectNone},
		{"header flushes then opens", stateInSection, eventHeader, stateInSection, effectFlush | effectOpen},
		{"transaction accepted", stateInSection, eventTransaction, stateInSection, effectAccept},
		{"other inside section ignored", stateInSection, eventOther, stateInSection, effectNone},
		{"end flushes", stateInSection, eventEnd, stateNoSection, effectFlush},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, eff := transition(tt.from, tt.kind)
			assert.Equal(t, tt.wantState, next)
			assert.Equal(t, tt.wantEff, eff)
		})
	}
}

func TestMachine_FlushOnHeaderAndEndAreSymmetric(t *testing.T) {
	headerA := classify(1, "1234 - JOHN SMITH")
	line := classify(2, "12/11/2024 NETFLIX.COM 39,90 7,50")
	headerB := classify(3, "5678 - MARY SMITH")

	viaHeader := newMachine(2024, slog.Default())
	viaHeader.step(headerA)
	viaHeader.step(line)
	viaHeader.step(headerB)

	viaEnd := newMachine(2024, slog.Default())
	viaEnd.step(headerA)
	viaEnd.step(line)
	viaEnd.step(event{kind: eventEnd})

	assert.Equal(t, viaHeader.sections, viaEnd.sections)
	assert.Equal(t, stateInSection, viaHeader.state)
	assert.Equal(t, stateNoSection, viaEnd.state)
	assert.Nil(t, viaEnd.current)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, eventHeader, classify(1, "  1234 - JOHN SMITH  ").kind)
	assert.Equal(t, eventHeader, classify(1, "1234 – JOSÉ D'ÁVILA").kind)
	assert.Equal(t, eventTransaction, classify(1, "12/11/2024 NETFLIX.COM 39,90 7,50").kind)
	assert.Equal(t, eventTransaction, classify(1, "12/11 NETFLIX.COM -39,90 0,00").kind)
	assert.Equal(t, eventOther, classify(1, "12/11/2024 NETFLIX.COM 39,90").kind)
	assert.Equal(t, eventOther, classify(1, "Total da fatura 1.289,90").kind)
	assert.Equal(t, eventOther, classify(1, "").kind)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "NO_SECTION", stateNoSection.String())
	assert.Equal(t, "IN_SECTION", stateInSection.String())
}
